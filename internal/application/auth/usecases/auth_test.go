package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type mockUserRepository struct {
	GetByIDFunc    func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc     func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error  { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error { return nil }

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) { return nil, nil }

type mockPasswordHasher struct{}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if hash == "hashed:"+password {
		return nil
	}
	return fmt.Errorf("password verification failed")
}

type mockTokenService struct {
	GenerateFunc func(userID uint, role string) (string, time.Time, error)
}

func (m *mockTokenService) GenerateAccessToken(userID uint, role string) (string, time.Time, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return "token-" + role, time.Now().Add(time.Hour), nil
}

func (m *mockTokenService) ValidateAccessToken(token string) (*TokenClaims, error) {
	return nil, fmt.Errorf("not implemented")
}

type mockEmailSender struct {
	SendFunc func(ctx context.Context, to, subject, body string) error
}

func (m *mockEmailSender) Send(ctx context.Context, to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, body)
	}
	return nil
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

func seededAdmin(t *testing.T) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(1, "admin", "hashed:admin123", "admin@helpdesk.com", vo.RoleAdministrator, "Administrator")
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute(t *testing.T) {
	t.Run("demo credential resolves to seeded admin", func(t *testing.T) {
		repo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return seededAdmin(t), nil
			},
		}

		uc := NewLoginUseCase(repo, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
		result, err := uc.Execute(context.Background(), LoginCommand{Email: "admin@email.com", Password: "admin"})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.User.ID)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("demo credential without seeded admin still logs in", func(t *testing.T) {
		uc := NewLoginUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
		result, err := uc.Execute(context.Background(), LoginCommand{Email: "admin@email.com", Password: "admin"})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.User.ID)
		assert.Equal(t, "administrator", result.User.Role)
	})

	t.Run("real account with correct password", func(t *testing.T) {
		repo := &mockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return seededAdmin(t), nil
			},
		}

		uc := NewLoginUseCase(repo, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
		result, err := uc.Execute(context.Background(), LoginCommand{Email: "admin@helpdesk.com", Password: "admin123"})

		require.NoError(t, err)
		assert.Equal(t, "administrator", result.User.Role)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		repo := &mockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return seededAdmin(t), nil
			},
		}

		uc := NewLoginUseCase(repo, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), LoginCommand{Email: "admin@helpdesk.com", Password: "nope"})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("unknown email is unauthorized, not not-found", func(t *testing.T) {
		uc := NewLoginUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), LoginCommand{Email: "ghost@example.com", Password: "whatever"})

		require.Error(t, err)
		assert.False(t, errors.IsNotFoundError(err))
	})
}

func TestVerifyResetCodeUseCase_Execute(t *testing.T) {
	uc := NewVerifyResetCodeUseCase(&mockLogger{})

	assert.NoError(t, uc.Execute(context.Background(), VerifyResetCodeCommand{Email: "a@b.com", Code: "123456"}))
	assert.Error(t, uc.Execute(context.Background(), VerifyResetCodeCommand{Email: "a@b.com", Code: "000000"}))
}

func TestResetPasswordUseCase_Execute(t *testing.T) {
	t.Run("resets with valid code", func(t *testing.T) {
		admin := seededAdmin(t)
		updated := false
		repo := &mockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return admin, nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				updated = true
				return nil
			},
		}

		uc := NewResetPasswordUseCase(repo, &mockPasswordHasher{}, &mockLogger{})
		err := uc.Execute(context.Background(), ResetPasswordCommand{
			Email:       "admin@helpdesk.com",
			Code:        "123456",
			NewPassword: "newsecret",
		})

		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, "hashed:newsecret", admin.PasswordHash())
	})

	t.Run("rejects wrong code", func(t *testing.T) {
		uc := NewResetPasswordUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockLogger{})
		err := uc.Execute(context.Background(), ResetPasswordCommand{
			Email:       "admin@helpdesk.com",
			Code:        "999999",
			NewPassword: "newsecret",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestForgotPasswordUseCase_Execute(t *testing.T) {
	t.Run("sends code to known address", func(t *testing.T) {
		var sentTo string
		repo := &mockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return seededAdmin(t), nil
			},
		}
		mailer := &mockEmailSender{
			SendFunc: func(ctx context.Context, to, subject, body string) error {
				sentTo = to
				return nil
			},
		}

		uc := NewForgotPasswordUseCase(repo, mailer, &mockLogger{})
		require.NoError(t, uc.Execute(context.Background(), ForgotPasswordCommand{Email: "admin@helpdesk.com"}))
		assert.Equal(t, "admin@helpdesk.com", sentTo)
	})

	t.Run("unknown address does not error", func(t *testing.T) {
		sent := false
		mailer := &mockEmailSender{
			SendFunc: func(ctx context.Context, to, subject, body string) error {
				sent = true
				return nil
			},
		}

		uc := NewForgotPasswordUseCase(&mockUserRepository{}, mailer, &mockLogger{})
		require.NoError(t, uc.Execute(context.Background(), ForgotPasswordCommand{Email: "ghost@example.com"}))
		assert.False(t, sent)
	})
}
