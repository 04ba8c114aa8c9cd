package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/mapper"
)

type ListByDateRangeQuery struct {
	StartDate string
	EndDate   string
}

// ListByDateRangeUseCase returns tickets created within an inclusive date
// window, for reporting views.
type ListByDateRangeUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListByDateRangeUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListByDateRangeUseCase {
	return &ListByDateRangeUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListByDateRangeUseCase) Execute(ctx context.Context, query ListByDateRangeQuery) ([]*dto.TicketDTO, error) {
	if query.StartDate == "" || query.EndDate == "" {
		return nil, errors.NewValidationError("start and end dates are required")
	}

	start, err := biztime.ParseDateInBizTimezone(query.StartDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid start date, expected YYYY-MM-DD")
	}
	end, err := biztime.ParseDateInBizTimezone(query.EndDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid end date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, errors.NewValidationError("end date must not precede start date")
	}

	tickets, err := uc.ticketRepo.ListByDateRange(ctx, biztime.StartOfDayUTC(start), biztime.EndOfDayUTC(end))
	if err != nil {
		uc.logger.Errorw("failed to list tickets by date range", "error", err)
		return nil, err
	}

	return mapper.MapSlice(tickets, dto.ToTicketDTO), nil
}
