package usecases

import (
	"context"
	"time"

	userdto "helpdesk/internal/application/user/dto"
)

// TokenService issues and validates access tokens.
type TokenService interface {
	GenerateAccessToken(userID uint, role string) (string, time.Time, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

type TokenClaims struct {
	UserID uint
	Role   string
}

// EmailSender delivers transactional mail. Implementations may be disabled
// entirely, in which case Send is a no-op.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type SignupExecutor interface {
	Execute(ctx context.Context, cmd SignupCommand) (*userdto.UserDTO, error)
}

type VerifyEmailExecutor interface {
	Execute(ctx context.Context, cmd VerifyEmailCommand) error
}

type ForgotPasswordExecutor interface {
	Execute(ctx context.Context, cmd ForgotPasswordCommand) error
}

type VerifyResetCodeExecutor interface {
	Execute(ctx context.Context, cmd VerifyResetCodeCommand) error
}

type ResetPasswordExecutor interface {
	Execute(ctx context.Context, cmd ResetPasswordCommand) error
}
