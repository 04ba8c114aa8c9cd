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

// UpdateTicketCommand carries a partial update; nil fields are untouched.
type UpdateTicketCommand struct {
	Code        string
	Subject     *string
	Description *string
	Category    *string
	Priority    *string
	Status      *string
	AssigneeID  *uint
	Unassign    bool
	UpdatedBy   uint
}

type UpdateTicketResult struct {
	TicketID  uint
	Code      string
	Status    string
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo     ticket.Repository
	eventPublisher events.EventPublisher
	logger         logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	eventPublisher events.EventPublisher,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:     ticketRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "code", cmd.Code)

	if len(cmd.Code) == 0 {
		return nil, errors.NewValidationError("ticket code is required")
	}

	existing, err := uc.ticketRepo.GetByCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "code", cmd.Code)
		return nil, err
	}

	if cmd.Subject != nil {
		if err := existing.UpdateSubject(*cmd.Subject); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := existing.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Category != nil {
		if err := existing.UpdateCategory(*cmd.Category); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != nil {
		if err := existing.ChangePriority(vo.Priority(*cmd.Priority)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	var statusChangedFrom *vo.Status
	if cmd.Status != nil {
		newStatus, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if existing.Status() != newStatus {
			old := existing.Status()
			statusChangedFrom = &old
		}
		if err := existing.ChangeStatus(newStatus); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	var assigned *uint
	switch {
	case cmd.Unassign:
		existing.Unassign()
	case cmd.AssigneeID != nil:
		previous := existing.AssigneeID()
		if previous == nil || *previous != *cmd.AssigneeID {
			assigned = cmd.AssigneeID
		}
		if err := existing.AssignTo(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "code", cmd.Code)
		return nil, err
	}

	if uc.eventPublisher != nil {
		if statusChangedFrom != nil {
			event := ticket.NewTicketStatusChangedEvent(existing, statusChangedFrom.String(), cmd.UpdatedBy)
			if err := uc.eventPublisher.Publish(event); err != nil {
				uc.logger.Warnw("failed to publish status changed event", "error", err, "code", cmd.Code)
			}
		}
		if assigned != nil {
			event := ticket.NewTicketAssignedEvent(existing, *assigned, cmd.UpdatedBy)
			if err := uc.eventPublisher.Publish(event); err != nil {
				uc.logger.Warnw("failed to publish ticket assigned event", "error", err, "code", cmd.Code)
			}
		}
	}

	uc.logger.Infow("ticket updated successfully", "code", cmd.Code)

	return &UpdateTicketResult{
		TicketID:  existing.ID(),
		Code:      existing.Code(),
		Status:    existing.Status().String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
