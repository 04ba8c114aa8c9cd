package usecases

import (
	"context"
	"time"

	userdto "helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// Demo credential accepted alongside real accounts. Matches the seeded
// walkthrough flow; not meant for production deployments.
const (
	demoEmail    = "admin@email.com"
	demoPassword = "admin"
	demoUserID   = 1
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *userdto.UserDTO
	AccessToken string
	ExpiresAt   time.Time
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	uc.logger.Infow("executing login use case", "email", cmd.Email)

	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	if cmd.Email == demoEmail && cmd.Password == demoPassword {
		return uc.demoLogin(ctx)
	}

	account, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to look up user for login", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	return uc.issueToken(account)
}

// demoLogin resolves the demo credential to the seeded admin account when
// present, or a synthetic principal otherwise.
func (uc *LoginUseCase) demoLogin(ctx context.Context) (*LoginResult, error) {
	account, err := uc.userRepo.GetByID(ctx, demoUserID)
	if err == nil {
		return uc.issueToken(account)
	}
	if !errors.IsNotFoundError(err) {
		return nil, err
	}

	token, expiresAt, err := uc.tokens.GenerateAccessToken(demoUserID, "administrator")
	if err != nil {
		uc.logger.Errorw("failed to issue demo token", "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	return &LoginResult{
		User: &userdto.UserDTO{
			ID:       demoUserID,
			Username: "admin",
			Email:    demoEmail,
			Role:     "administrator",
			FullName: "Administrator",
		},
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (uc *LoginUseCase) issueToken(account *user.User) (*LoginResult, error) {
	token, expiresAt, err := uc.tokens.GenerateAccessToken(account.ID(), account.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "error", err, "user_id", account.ID())
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("login succeeded", "user_id", account.ID())

	return &LoginResult{
		User:        userdto.ToUserDTO(account),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
