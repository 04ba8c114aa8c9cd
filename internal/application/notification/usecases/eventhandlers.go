package usecases

import (
	"context"
	"fmt"

	vo "helpdesk/internal/domain/notification/valueobjects"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	tvo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/logger"
)

// TicketEventHandlers translates ticket domain events into per-user
// notifications. Delivery is best effort; a failed notification never
// affects the ticket operation that triggered it.
type TicketEventHandlers struct {
	createNotification CreateNotificationExecutor
	logger             logger.Interface
}

func NewTicketEventHandlers(
	createNotification CreateNotificationExecutor,
	logger logger.Interface,
) *TicketEventHandlers {
	return &TicketEventHandlers{
		createNotification: createNotification,
		logger:             logger,
	}
}

// Register subscribes the handlers on the dispatcher.
func (h *TicketEventHandlers) Register(subscriber events.EventSubscriber) error {
	handlers := map[string]func(events.DomainEvent) error{
		ticket.EventTypeTicketCreated:       h.onTicketCreated,
		ticket.EventTypeTicketStatusChanged: h.onStatusChanged,
		ticket.EventTypeTicketAssigned:      h.onTicketAssigned,
		ticket.EventTypeTicketCommentAdded:  h.onCommentAdded,
		ticket.EventTypeTicketRated:         h.onTicketRated,
	}

	for eventType, fn := range handlers {
		if err := subscriber.Subscribe(eventType, events.NewSimpleEventHandler(eventType, fn)); err != nil {
			return fmt.Errorf("failed to subscribe handler for %s: %w", eventType, err)
		}
	}
	return nil
}

func (h *TicketEventHandlers) onTicketCreated(event events.DomainEvent) error {
	e, ok := event.(ticket.TicketCreatedEvent)
	if !ok {
		return nil
	}
	if e.AssigneeID == nil {
		return nil
	}

	h.notify(CreateNotificationCommand{
		UserID:     *e.AssigneeID,
		Title:      "New Ticket Assigned",
		Message:    fmt.Sprintf("Ticket %s has been assigned to you.", e.TicketCode),
		Type:       vo.NotificationTypeTicket.String(),
		TicketCode: &e.TicketCode,
	})
	return nil
}

func (h *TicketEventHandlers) onStatusChanged(event events.DomainEvent) error {
	e, ok := event.(ticket.TicketStatusChangedEvent)
	if !ok {
		return nil
	}
	if e.CustomerID == nil {
		return nil
	}

	label := e.NewStatus
	if status, err := tvo.NewStatus(e.NewStatus); err == nil {
		label = status.Label()
	}

	h.notify(CreateNotificationCommand{
		UserID:     *e.CustomerID,
		Title:      "Ticket Status Updated",
		Message:    fmt.Sprintf("Ticket %s is now %s.", e.TicketCode, label),
		Type:       vo.NotificationTypeStatus.String(),
		TicketCode: &e.TicketCode,
	})
	return nil
}

func (h *TicketEventHandlers) onTicketAssigned(event events.DomainEvent) error {
	e, ok := event.(ticket.TicketAssignedEvent)
	if !ok {
		return nil
	}

	h.notify(CreateNotificationCommand{
		UserID:     e.AssigneeID,
		Title:      "New Ticket Assigned",
		Message:    fmt.Sprintf("Ticket %s has been assigned to you.", e.TicketCode),
		Type:       vo.NotificationTypeAssignment.String(),
		TicketCode: &e.TicketCode,
	})
	return nil
}

func (h *TicketEventHandlers) onCommentAdded(event events.DomainEvent) error {
	e, ok := event.(ticket.TicketCommentAddedEvent)
	if !ok {
		return nil
	}
	// Internal notes stay invisible; do not leak them to anyone via badges.
	if e.IsInternal {
		return nil
	}
	if e.AssigneeID == nil || *e.AssigneeID == e.AuthorID {
		return nil
	}

	h.notify(CreateNotificationCommand{
		UserID:     *e.AssigneeID,
		Title:      "New Comment",
		Message:    fmt.Sprintf("Ticket %s has a new comment.", e.TicketCode),
		Type:       vo.NotificationTypeTicket.String(),
		TicketCode: &e.TicketCode,
	})
	return nil
}

func (h *TicketEventHandlers) onTicketRated(event events.DomainEvent) error {
	e, ok := event.(ticket.TicketRatedEvent)
	if !ok {
		return nil
	}
	if e.AssigneeID == nil {
		return nil
	}

	h.notify(CreateNotificationCommand{
		UserID:     *e.AssigneeID,
		Title:      "Ticket Rated",
		Message:    fmt.Sprintf("Ticket %s received a %d-star rating.", e.TicketCode, e.Rating),
		Type:       vo.NotificationTypeFeedback.String(),
		TicketCode: &e.TicketCode,
	})
	return nil
}

func (h *TicketEventHandlers) notify(cmd CreateNotificationCommand) {
	if _, err := h.createNotification.Execute(context.Background(), cmd); err != nil {
		h.logger.Warnw("failed to create notification from event",
			"error", err,
			"user_id", cmd.UserID,
			"title", cmd.Title)
	}
}
