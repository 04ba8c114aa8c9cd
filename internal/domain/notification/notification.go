package notification

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/notification/valueobjects"
	"helpdesk/internal/shared/biztime"
)

// Notification is a per-user message produced as a side effect of ticket
// events. Only the read flag ever changes after creation.
type Notification struct {
	id               uint
	userID           uint
	title            string
	message          string
	notificationType vo.NotificationType
	isRead           bool
	ticketCode       *string
	createdAt        time.Time
}

func NewNotification(
	userID uint,
	title string,
	message string,
	notificationType vo.NotificationType,
	ticketCode *string,
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if notificationType == "" {
		notificationType = vo.NotificationTypeInfo
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notificationType)
	}

	return &Notification{
		userID:           userID,
		title:            title,
		message:          message,
		notificationType: notificationType,
		ticketCode:       ticketCode,
		createdAt:        biztime.NowUTC(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	title string,
	message string,
	notificationType vo.NotificationType,
	isRead bool,
	ticketCode *string,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notificationType)
	}

	return &Notification{
		id:               id,
		userID:           userID,
		title:            title,
		message:          message,
		notificationType: notificationType,
		isRead:           isRead,
		ticketCode:       ticketCode,
		createdAt:        createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Type() vo.NotificationType {
	return n.notificationType
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) TicketCode() *string {
	return n.ticketCode
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead flips the read flag. Idempotent.
func (n *Notification) MarkAsRead() {
	n.isRead = true
}
