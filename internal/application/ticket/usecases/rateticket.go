package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RateTicketCommand struct {
	TicketCode string
	UserID     uint
	Rating     int
	Feedback   string
}

type RateTicketResult struct {
	RatingID   uint
	TicketCode string
	Rating     int
	CreatedAt  time.Time
}

// RateTicketUseCase records satisfaction feedback for a ticket. Each ticket
// holds at most one rating; rating again revises it in place.
type RateTicketUseCase struct {
	ticketRepo     ticket.Repository
	ratingRepo     ticket.RatingRepository
	eventPublisher events.EventPublisher
	logger         logger.Interface
}

func NewRateTicketUseCase(
	ticketRepo ticket.Repository,
	ratingRepo ticket.RatingRepository,
	eventPublisher events.EventPublisher,
	logger logger.Interface,
) *RateTicketUseCase {
	return &RateTicketUseCase{
		ticketRepo:     ticketRepo,
		ratingRepo:     ratingRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (uc *RateTicketUseCase) Execute(ctx context.Context, cmd RateTicketCommand) (*RateTicketResult, error) {
	uc.logger.Infow("executing rate ticket use case", "code", cmd.TicketCode, "rating", cmd.Rating)

	if len(cmd.TicketCode) == 0 {
		return nil, errors.NewValidationError("ticket code is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, errors.NewValidationError("rating must be between 1 and 5")
	}

	existing, err := uc.ticketRepo.GetByCode(ctx, cmd.TicketCode)
	if err != nil {
		return nil, err
	}

	current, err := uc.ratingRepo.GetByTicketCode(ctx, cmd.TicketCode)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to look up existing rating", "error", err, "code", cmd.TicketCode)
		return nil, err
	}

	var saved *ticket.Rating
	if current != nil {
		if err := current.Revise(cmd.Rating, cmd.Feedback); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.ratingRepo.Update(ctx, current); err != nil {
			uc.logger.Errorw("failed to update rating", "error", err, "code", cmd.TicketCode)
			return nil, err
		}
		saved = current
	} else {
		rating, err := ticket.NewRating(cmd.TicketCode, cmd.UserID, cmd.Rating, cmd.Feedback)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.ratingRepo.Save(ctx, rating); err != nil {
			uc.logger.Errorw("failed to save rating", "error", err, "code", cmd.TicketCode)
			return nil, err
		}
		saved = rating
	}

	if uc.eventPublisher != nil {
		event := ticket.NewTicketRatedEvent(existing, saved)
		if err := uc.eventPublisher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish ticket rated event", "error", err, "code", cmd.TicketCode)
		}
	}

	uc.logger.Infow("ticket rated", "code", cmd.TicketCode, "rating", saved.Value())

	return &RateTicketResult{
		RatingID:   saved.ID(),
		TicketCode: cmd.TicketCode,
		Rating:     saved.Value(),
		CreatedAt:  saved.CreatedAt(),
	}, nil
}
