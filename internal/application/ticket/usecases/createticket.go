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

type CreateTicketCommand struct {
	Subject     string
	Description string
	Category    string
	Priority    string
	CustomerID  *uint
	AssigneeID  *uint
}

type CreateTicketResult struct {
	TicketID  uint
	Code      string
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.Repository
	codeGenerator  ticket.CodeGenerator
	eventPublisher events.EventPublisher
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	codeGenerator ticket.CodeGenerator,
	eventPublisher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		codeGenerator:  codeGenerator,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "subject", cmd.Subject, "customer_id", cmd.CustomerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority := vo.Priority(cmd.Priority)

	newTicket, err := ticket.NewTicket(
		cmd.Subject,
		cmd.Description,
		priority,
		cmd.Category,
		cmd.CustomerID,
		cmd.AssigneeID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	code, err := uc.codeGenerator.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket code", "error", err)
		return nil, errors.NewInternalError("failed to generate ticket code")
	}
	if err := newTicket.SetCode(code); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	// Notification fan-out is best effort; ticket creation never fails on it.
	if uc.eventPublisher != nil {
		event := ticket.NewTicketCreatedEvent(newTicket)
		if err := uc.eventPublisher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish ticket created event", "error", err, "code", newTicket.Code())
		}
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "code", newTicket.Code())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Code:      newTicket.Code(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Subject) == 0 {
		return errors.NewValidationError("subject is required")
	}

	if len(cmd.Subject) > 200 {
		return errors.NewValidationError("subject exceeds maximum length of 200 characters")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if cmd.Priority != "" {
		priority := vo.Priority(cmd.Priority)
		if !priority.IsValid() {
			return errors.NewValidationError("invalid priority")
		}
	}

	return nil
}
