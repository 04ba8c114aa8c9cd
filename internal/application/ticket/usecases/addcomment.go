package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketCode string
	UserID     uint
	Content    string
	IsInternal bool
}

type AddCommentResult struct {
	CommentID  uint
	TicketCode string
	CreatedAt  time.Time
}

// AddCommentUseCase appends a comment to a ticket. Commenting never touches
// firstResponseAt; that timestamp belongs to the in_progress transition.
type AddCommentUseCase struct {
	ticketRepo     ticket.Repository
	commentRepo    ticket.CommentRepository
	eventPublisher events.EventPublisher
	logger         logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	eventPublisher events.EventPublisher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "code", cmd.TicketCode, "user_id", cmd.UserID)

	if len(cmd.TicketCode) == 0 {
		return nil, errors.NewValidationError("ticket code is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.ticketRepo.GetByCode(ctx, cmd.TicketCode)
	if err != nil {
		return nil, err
	}

	comment, err := ticket.NewComment(cmd.TicketCode, cmd.UserID, cmd.Content, cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "code", cmd.TicketCode)
		return nil, err
	}

	if uc.eventPublisher != nil {
		event := ticket.NewTicketCommentAddedEvent(existing, comment)
		if err := uc.eventPublisher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish comment added event", "error", err, "code", cmd.TicketCode)
		}
	}

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "code", cmd.TicketCode)

	return &AddCommentResult{
		CommentID:  comment.ID(),
		TicketCode: cmd.TicketCode,
		CreatedAt:  comment.CreatedAt(),
	}, nil
}
