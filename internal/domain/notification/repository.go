package notification

import "context"

// Repository defines persistence operations for notifications.
// ListByUserID returns notifications in reverse chronological order.
type Repository interface {
	Save(ctx context.Context, notification *Notification) error
	Update(ctx context.Context, notification *Notification) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListByUserID(ctx context.Context, userID uint) ([]*Notification, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAllAsRead(ctx context.Context, userID uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
}
