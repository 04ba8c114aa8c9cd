package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CommentID uint
}

type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	if cmd.CommentID == 0 {
		return errors.NewValidationError("comment ID is required")
	}

	if _, err := uc.commentRepo.GetByID(ctx, cmd.CommentID); err != nil {
		return err
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "error", err, "comment_id", cmd.CommentID)
		return err
	}

	uc.logger.Infow("comment deleted", "comment_id", cmd.CommentID)
	return nil
}
