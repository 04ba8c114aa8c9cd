package usecases

import (
	"context"

	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockArticleRepository struct {
	SaveFunc    func(ctx context.Context, a *knowledge.Article) error
	UpdateFunc  func(ctx context.Context, a *knowledge.Article) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*knowledge.Article, error)
	ListFunc    func(ctx context.Context, filter knowledge.Filter) ([]*knowledge.Article, int64, error)
}

func (m *mockArticleRepository) Save(ctx context.Context, a *knowledge.Article) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) Update(ctx context.Context, a *knowledge.Article) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockArticleRepository) GetByID(ctx context.Context, id uint) (*knowledge.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockArticleRepository) List(ctx context.Context, filter knowledge.Filter) ([]*knowledge.Article, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockArticleRatingRepository struct {
	SaveFunc                func(ctx context.Context, r *knowledge.ArticleRating) error
	UpdateFunc              func(ctx context.Context, r *knowledge.ArticleRating) error
	GetByArticleAndUserFunc func(ctx context.Context, articleID, userID uint) (*knowledge.ArticleRating, error)
	DeleteByArticleIDFunc   func(ctx context.Context, articleID uint) error
}

func (m *mockArticleRatingRepository) Save(ctx context.Context, r *knowledge.ArticleRating) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockArticleRatingRepository) Update(ctx context.Context, r *knowledge.ArticleRating) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockArticleRatingRepository) GetByArticleAndUser(ctx context.Context, articleID, userID uint) (*knowledge.ArticleRating, error) {
	if m.GetByArticleAndUserFunc != nil {
		return m.GetByArticleAndUserFunc(ctx, articleID, userID)
	}
	return nil, nil
}

func (m *mockArticleRatingRepository) DeleteByArticleID(ctx context.Context, articleID uint) error {
	if m.DeleteByArticleIDFunc != nil {
		return m.DeleteByArticleIDFunc(ctx, articleID)
	}
	return nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error      { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) { return nil, nil }

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
