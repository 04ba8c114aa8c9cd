package usecases

import (
	"context"

	"helpdesk/internal/application/notification/dto"
	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/logger"
)

type mockNotificationRepository struct {
	SaveFunc           func(ctx context.Context, n *notification.Notification) error
	UpdateFunc         func(ctx context.Context, n *notification.Notification) error
	DeleteFunc         func(ctx context.Context, id uint) error
	GetByIDFunc        func(ctx context.Context, id uint) (*notification.Notification, error)
	ListByUserIDFunc   func(ctx context.Context, userID uint) ([]*notification.Notification, error)
	CountUnreadFunc    func(ctx context.Context, userID uint) (int64, error)
	MarkAllAsReadFunc  func(ctx context.Context, userID uint) error
	DeleteByUserIDFunc func(ctx context.Context, userID uint) error
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListByUserID(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) error {
	if m.MarkAllAsReadFunc != nil {
		return m.MarkAllAsReadFunc(ctx, userID)
	}
	return nil
}

func (m *mockNotificationRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

type mockUnreadCountCache struct {
	GetFunc        func(ctx context.Context, userID uint) (int64, bool, error)
	SetFunc        func(ctx context.Context, userID uint, count int64) error
	InvalidateFunc func(ctx context.Context, userID uint) error
}

func (m *mockUnreadCountCache) Get(ctx context.Context, userID uint) (int64, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return 0, false, nil
}

func (m *mockUnreadCountCache) Set(ctx context.Context, userID uint, count int64) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, userID, count)
	}
	return nil
}

func (m *mockUnreadCountCache) Invalidate(ctx context.Context, userID uint) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, userID)
	}
	return nil
}

type mockCreateNotificationExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd CreateNotificationCommand) (*dto.NotificationDTO, error)
}

func (m *mockCreateNotificationExecutor) Execute(ctx context.Context, cmd CreateNotificationCommand) (*dto.NotificationDTO, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
