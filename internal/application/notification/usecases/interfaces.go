package usecases

import (
	"context"

	"helpdesk/internal/application/notification/dto"
)

// UnreadCountCache caches per-user unread counters so the badge poll does
// not hit the database on every request. Implementations must treat a miss
// as a non-error.
type UnreadCountCache interface {
	Get(ctx context.Context, userID uint) (int64, bool, error)
	Set(ctx context.Context, userID uint, count int64) error
	Invalidate(ctx context.Context, userID uint) error
}

type CreateNotificationExecutor interface {
	Execute(ctx context.Context, cmd CreateNotificationCommand) (*dto.NotificationDTO, error)
}

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) ([]*dto.NotificationDTO, error)
}

type MarkAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAsReadCommand) (*dto.NotificationDTO, error)
}

type MarkAllAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAllAsReadCommand) error
}

type UnreadCountExecutor interface {
	Execute(ctx context.Context, query UnreadCountQuery) (int64, error)
}

type DeleteNotificationExecutor interface {
	Execute(ctx context.Context, cmd DeleteNotificationCommand) error
}
