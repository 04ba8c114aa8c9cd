package usecases

import (
	"context"

	userdto "helpdesk/internal/application/user/dto"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/logger"
)

type SignupCommand struct {
	Username string
	Password string
	Email    string
	FullName string
}

// SignupUseCase registers a customer account. It delegates to the user
// creation flow so uniqueness and hashing rules live in one place.
type SignupUseCase struct {
	createUser userusecases.CreateUserExecutor
	logger     logger.Interface
}

func NewSignupUseCase(
	createUser userusecases.CreateUserExecutor,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		createUser: createUser,
		logger:     logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*userdto.UserDTO, error) {
	uc.logger.Infow("executing signup use case", "email", cmd.Email)

	return uc.createUser.Execute(ctx, userusecases.CreateUserCommand{
		Username: cmd.Username,
		Password: cmd.Password,
		Email:    cmd.Email,
		Role:     "customer",
		FullName: cmd.FullName,
	})
}
