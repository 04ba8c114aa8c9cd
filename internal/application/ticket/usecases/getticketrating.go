package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketRatingQuery struct {
	TicketCode string
}

type GetTicketRatingUseCase struct {
	ticketRepo ticket.Repository
	ratingRepo ticket.RatingRepository
	logger     logger.Interface
}

func NewGetTicketRatingUseCase(
	ticketRepo ticket.Repository,
	ratingRepo ticket.RatingRepository,
	logger logger.Interface,
) *GetTicketRatingUseCase {
	return &GetTicketRatingUseCase{
		ticketRepo: ticketRepo,
		ratingRepo: ratingRepo,
		logger:     logger,
	}
}

func (uc *GetTicketRatingUseCase) Execute(ctx context.Context, query GetTicketRatingQuery) (*dto.RatingDTO, error) {
	if len(query.TicketCode) == 0 {
		return nil, errors.NewValidationError("ticket code is required")
	}

	if _, err := uc.ticketRepo.GetByCode(ctx, query.TicketCode); err != nil {
		return nil, err
	}

	rating, err := uc.ratingRepo.GetByTicketCode(ctx, query.TicketCode)
	if err != nil {
		return nil, err
	}

	return dto.ToRatingDTO(rating), nil
}
