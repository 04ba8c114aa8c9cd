package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/logger"
)

type GetTicketStatsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context) (*dto.TicketStatsDTO, error) {
	counts, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, err
	}

	stats := &dto.TicketStatsDTO{
		Open:       counts[vo.StatusOpen.String()],
		InProgress: counts[vo.StatusInProgress.String()],
		Resolved:   counts[vo.StatusResolved.String()],
		Closed:     counts[vo.StatusClosed.String()],
	}
	stats.Total = stats.Open + stats.InProgress + stats.Resolved + stats.Closed

	return stats, nil
}
