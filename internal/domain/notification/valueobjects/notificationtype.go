package valueobjects

import "fmt"

type NotificationType string

const (
	NotificationTypeTicket     NotificationType = "ticket"
	NotificationTypeWarning    NotificationType = "warning"
	NotificationTypeSystem     NotificationType = "system"
	NotificationTypeEscalation NotificationType = "escalation"
	NotificationTypeAssignment NotificationType = "assignment"
	NotificationTypeFeedback   NotificationType = "feedback"
	NotificationTypeStatus     NotificationType = "status"
	NotificationTypeInfo       NotificationType = "info"
)

var validNotificationTypes = map[NotificationType]bool{
	NotificationTypeTicket:     true,
	NotificationTypeWarning:    true,
	NotificationTypeSystem:     true,
	NotificationTypeEscalation: true,
	NotificationTypeAssignment: true,
	NotificationTypeFeedback:   true,
	NotificationTypeStatus:     true,
	NotificationTypeInfo:       true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

func NewNotificationType(s string) (NotificationType, error) {
	if s == "" {
		return NotificationTypeInfo, nil
	}
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
