package dto

import (
	"time"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/mapper"
)

type NotificationDTO struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	IsRead     bool      `json:"is_read"`
	TicketCode *string   `json:"ticket_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}

	return &NotificationDTO{
		ID:         n.ID(),
		UserID:     n.UserID(),
		Title:      n.Title(),
		Message:    n.Message(),
		Type:       n.Type().String(),
		IsRead:     n.IsRead(),
		TicketCode: n.TicketCode(),
		CreatedAt:  n.CreatedAt(),
	}
}

func ToNotificationDTOs(notifications []*notification.Notification) []*NotificationDTO {
	return mapper.MapSlice(notifications, ToNotificationDTO)
}
