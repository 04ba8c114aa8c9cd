package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	Code            string
	IncludeInternal bool
}

// GetTicketUseCase returns a ticket with its comments, rating, and the
// assignee's display name resolved.
type GetTicketUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	ratingRepo  ticket.RatingRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	ratingRepo ticket.RatingRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		ratingRepo:  ratingRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailsDTO, error) {
	if len(query.Code) == 0 {
		return nil, errors.NewValidationError("ticket code is required")
	}

	existing, err := uc.ticketRepo.GetByCode(ctx, query.Code)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicketCode(ctx, query.Code)
	if err != nil {
		uc.logger.Errorw("failed to list ticket comments", "error", err, "code", query.Code)
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

	// A missing rating is the normal case, not an error.
	rating, err := uc.ratingRepo.GetByTicketCode(ctx, query.Code)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to get ticket rating", "error", err, "code", query.Code)
		return nil, err
	}

	details := &dto.TicketDetailsDTO{
		TicketDTO: *dto.ToTicketDTO(existing),
		Comments:  dto.ToCommentDTOs(comments),
		Rating:    dto.ToRatingDTO(rating),
	}
	details.AssigneeName = uc.resolveAssigneeName(ctx, existing.AssigneeID())

	return details, nil
}

func (uc *GetTicketUseCase) resolveAssigneeName(ctx context.Context, assigneeID *uint) *string {
	if assigneeID == nil {
		return nil
	}

	assignee, err := uc.userRepo.GetByID(ctx, *assigneeID)
	if err != nil {
		uc.logger.Warnw("failed to resolve assignee name", "error", err, "assignee_id", *assigneeID)
		return nil
	}

	name := assignee.FullName()
	return &name
}
