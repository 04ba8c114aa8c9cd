package memory

import (
	"context"
	"sort"
	"sync"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
)

type NotificationRepository struct {
	mu     sync.RWMutex
	byID   map[uint]*notification.Notification
	nextID uint
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{
		byID:   make(map[uint]*notification.Notification),
		nextID: 1,
	}
}

func (r *NotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID() == 0 {
		if err := n.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	} else if n.ID() >= r.nextID {
		r.nextID = n.ID() + 1
	}

	r.byID[n.ID()] = n
	return nil
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[n.ID()]; !exists {
		return errors.NewNotFoundError("notification not found")
	}

	r.byID[n.ID()] = n
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return errors.NewNotFoundError("notification not found")
	}

	delete(r.byID, id)
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, exists := r.byID[id]
	if !exists {
		return nil, errors.NewNotFoundError("notification not found")
	}
	return n, nil
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notifications := make([]*notification.Notification, 0)
	for _, n := range r.byID {
		if n.UserID() == userID {
			notifications = append(notifications, n)
		}
	}

	sort.Slice(notifications, func(i, j int) bool {
		if notifications[i].CreatedAt().Equal(notifications[j].CreatedAt()) {
			return notifications[i].ID() > notifications[j].ID()
		}
		return notifications[i].CreatedAt().After(notifications[j].CreatedAt())
	})

	return notifications, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, n := range r.byID {
		if n.UserID() == userID && !n.IsRead() {
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.byID {
		if n.UserID() == userID {
			n.MarkAsRead()
		}
	}
	return nil
}

func (r *NotificationRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, n := range r.byID {
		if n.UserID() == userID {
			delete(r.byID, id)
		}
	}
	return nil
}
