package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Code      string
	NewStatus string
	ChangedBy uint
}

type ChangeStatusResult struct {
	TicketID  uint
	Code      string
	OldStatus string
	NewStatus string
	UpdatedAt time.Time
}

type ChangeStatusUseCase struct {
	ticketRepo     ticket.Repository
	eventPublisher events.EventPublisher
	logger         logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	eventPublisher events.EventPublisher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:     ticketRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "code", cmd.Code, "new_status", cmd.NewStatus)

	if len(cmd.Code) == 0 {
		return nil, errors.NewValidationError("ticket code is required")
	}

	newStatus, err := vo.NewStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.ticketRepo.GetByCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "code", cmd.Code)
		return nil, err
	}

	oldStatus := existing.Status()
	if err := existing.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket status", "error", err, "code", cmd.Code)
		return nil, err
	}

	if uc.eventPublisher != nil && oldStatus != newStatus {
		event := ticket.NewTicketStatusChangedEvent(existing, oldStatus.String(), cmd.ChangedBy)
		if err := uc.eventPublisher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish status changed event", "error", err, "code", cmd.Code)
		}
	}

	uc.logger.Infow("ticket status changed", "code", cmd.Code, "old_status", oldStatus.String(), "new_status", newStatus.String())

	return &ChangeStatusResult{
		TicketID:  existing.ID(),
		Code:      existing.Code(),
		OldStatus: oldStatus.String(),
		NewStatus: existing.Status().String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
