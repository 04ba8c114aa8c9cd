package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	DeleteFunc        func(ctx context.Context, userID uint) error
	GetByIDFunc       func(ctx context.Context, userID uint) (*user.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ListFunc          func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockTicketRepository struct {
	DetachUserFunc func(ctx context.Context, userID uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, code string) error      { return nil }

func (m *mockTicketRepository) GetByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func (m *mockTicketRepository) HighestCodeSequence(ctx context.Context, year int) (int, error) {
	return 0, nil
}

func (m *mockTicketRepository) DetachUser(ctx context.Context, userID uint) error {
	if m.DetachUserFunc != nil {
		return m.DetachUserFunc(ctx, userID)
	}
	return nil
}

type mockNotificationRepository struct {
	DeleteByUserIDFunc func(ctx context.Context, userID uint) error
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	return nil
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return nil
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepository) ListByUserID(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) error {
	return nil
}

func (m *mockNotificationRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

type mockPasswordHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if hash == "hashed:"+password {
		return nil
	}
	return fmt.Errorf("password verification failed")
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
