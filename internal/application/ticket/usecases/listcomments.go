package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListCommentsQuery struct {
	TicketCode      string
	IncludeInternal bool
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	if len(query.TicketCode) == 0 {
		return nil, errors.NewValidationError("ticket code is required")
	}

	if _, err := uc.ticketRepo.GetByCode(ctx, query.TicketCode); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicketCode(ctx, query.TicketCode)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "code", query.TicketCode)
		return nil, err
	}

	if !query.IncludeInternal {
		visible := make([]*ticket.Comment, 0, len(comments))
		for _, c := range comments {
			if !c.IsInternal() {
				visible = append(visible, c)
			}
		}
		comments = visible
	}

	return dto.ToCommentDTOs(comments), nil
}
