package ticket

import (
	"time"

	"helpdesk/internal/domain/shared/events"
)

const (
	EventTypeTicketCreated       = "ticket.created"
	EventTypeTicketStatusChanged = "ticket.status_changed"
	EventTypeTicketAssigned      = "ticket.assigned"
	EventTypeTicketCommentAdded  = "ticket.comment_added"
	EventTypeTicketRated         = "ticket.rated"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketCode string
	Subject    string
	Priority   string
	CustomerID *uint
	AssigneeID *uint
}

func NewTicketCreatedEvent(t *Ticket) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: t.Code(),
			EventType:   EventTypeTicketCreated,
			OccurredAt:  time.Now().UTC(),
		},
		TicketCode: t.Code(),
		Subject:    t.Subject(),
		Priority:   t.Priority().String(),
		CustomerID: t.CustomerID(),
		AssigneeID: t.AssigneeID(),
	}
}

type TicketStatusChangedEvent struct {
	events.BaseEvent
	TicketCode string
	OldStatus  string
	NewStatus  string
	ChangedBy  uint
	CustomerID *uint
	AssigneeID *uint
}

func NewTicketStatusChangedEvent(t *Ticket, oldStatus string, changedBy uint) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: t.Code(),
			EventType:   EventTypeTicketStatusChanged,
			OccurredAt:  time.Now().UTC(),
		},
		TicketCode: t.Code(),
		OldStatus:  oldStatus,
		NewStatus:  t.Status().String(),
		ChangedBy:  changedBy,
		CustomerID: t.CustomerID(),
		AssigneeID: t.AssigneeID(),
	}
}

type TicketAssignedEvent struct {
	events.BaseEvent
	TicketCode string
	AssigneeID uint
	AssignedBy uint
}

func NewTicketAssignedEvent(t *Ticket, assigneeID, assignedBy uint) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: t.Code(),
			EventType:   EventTypeTicketAssigned,
			OccurredAt:  time.Now().UTC(),
		},
		TicketCode: t.Code(),
		AssigneeID: assigneeID,
		AssignedBy: assignedBy,
	}
}

type TicketCommentAddedEvent struct {
	events.BaseEvent
	TicketCode string
	CommentID  uint
	AuthorID   uint
	IsInternal bool
	AssigneeID *uint
}

func NewTicketCommentAddedEvent(t *Ticket, c *Comment) TicketCommentAddedEvent {
	return TicketCommentAddedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: t.Code(),
			EventType:   EventTypeTicketCommentAdded,
			OccurredAt:  time.Now().UTC(),
		},
		TicketCode: t.Code(),
		CommentID:  c.ID(),
		AuthorID:   c.UserID(),
		IsInternal: c.IsInternal(),
		AssigneeID: t.AssigneeID(),
	}
}

type TicketRatedEvent struct {
	events.BaseEvent
	TicketCode string
	Rating     int
	RatedBy    uint
	AssigneeID *uint
}

func NewTicketRatedEvent(t *Ticket, r *Rating) TicketRatedEvent {
	return TicketRatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: t.Code(),
			EventType:   EventTypeTicketRated,
			OccurredAt:  time.Now().UTC(),
		},
		TicketCode: t.Code(),
		Rating:     r.Value(),
		RatedBy:    r.UserID(),
		AssigneeID: t.AssigneeID(),
	}
}
