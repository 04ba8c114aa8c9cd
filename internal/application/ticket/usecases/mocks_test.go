package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc              func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc              func(ctx context.Context, code string) error
	GetByCodeFunc           func(ctx context.Context, code string) (*ticket.Ticket, error)
	ListFunc                func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	ListByDateRangeFunc     func(ctx context.Context, start, end time.Time) ([]*ticket.Ticket, error)
	CountByStatusFunc       func(ctx context.Context) (map[string]int64, error)
	HighestCodeSequenceFunc func(ctx context.Context, year int) (int, error)
	DetachUserFunc          func(ctx context.Context, userID uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, code string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, code)
	}
	return nil
}

func (m *mockTicketRepository) GetByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*ticket.Ticket, error) {
	if m.ListByDateRangeFunc != nil {
		return m.ListByDateRangeFunc(ctx, start, end)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) HighestCodeSequence(ctx context.Context, year int) (int, error) {
	if m.HighestCodeSequenceFunc != nil {
		return m.HighestCodeSequenceFunc(ctx, year)
	}
	return 0, nil
}

func (m *mockTicketRepository) DetachUser(ctx context.Context, userID uint) error {
	if m.DetachUserFunc != nil {
		return m.DetachUserFunc(ctx, userID)
	}
	return nil
}

type mockCommentRepository struct {
	SaveFunc               func(ctx context.Context, c *ticket.Comment) error
	GetByIDFunc            func(ctx context.Context, commentID uint) (*ticket.Comment, error)
	ListByTicketCodeFunc   func(ctx context.Context, code string) ([]*ticket.Comment, error)
	DeleteFunc             func(ctx context.Context, commentID uint) error
	DeleteByTicketCodeFunc func(ctx context.Context, code string) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByTicketCode(ctx context.Context, code string) ([]*ticket.Comment, error) {
	if m.ListByTicketCodeFunc != nil {
		return m.ListByTicketCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByTicketCode(ctx context.Context, code string) error {
	if m.DeleteByTicketCodeFunc != nil {
		return m.DeleteByTicketCodeFunc(ctx, code)
	}
	return nil
}

type mockRatingRepository struct {
	SaveFunc               func(ctx context.Context, r *ticket.Rating) error
	UpdateFunc             func(ctx context.Context, r *ticket.Rating) error
	GetByTicketCodeFunc    func(ctx context.Context, code string) (*ticket.Rating, error)
	DeleteByTicketCodeFunc func(ctx context.Context, code string) error
}

func (m *mockRatingRepository) Save(ctx context.Context, r *ticket.Rating) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRatingRepository) Update(ctx context.Context, r *ticket.Rating) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRatingRepository) GetByTicketCode(ctx context.Context, code string) (*ticket.Rating, error) {
	if m.GetByTicketCodeFunc != nil {
		return m.GetByTicketCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockRatingRepository) DeleteByTicketCode(ctx context.Context, code string) error {
	if m.DeleteByTicketCodeFunc != nil {
		return m.DeleteByTicketCodeFunc(ctx, code)
	}
	return nil
}

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

type mockEventPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

type mockCodeGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockCodeGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "TICK-2024-0001", nil
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
