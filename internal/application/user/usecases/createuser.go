package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateUserCommand struct {
	Username string
	Password string
	Email    string
	Role     string
	FullName string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "username", cmd.Username, "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check existing username", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("username already taken")
	}

	existing, err = uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check existing email", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	newUser, err := user.NewUser(cmd.Username, hash, cmd.Email, vo.Role(cmd.Role), cmd.FullName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user created successfully", "user_id", newUser.ID(), "username", newUser.Username())

	return dto.ToUserDTO(newUser), nil
}

func (uc *CreateUserUseCase) validateCommand(cmd CreateUserCommand) error {
	if len(cmd.Username) == 0 {
		return errors.NewValidationError("username is required")
	}
	if len(cmd.Password) < 5 {
		return errors.NewValidationError("password must be at least 5 characters")
	}
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.FullName) == 0 {
		return errors.NewValidationError("full name is required")
	}
	if cmd.Role != "" && !vo.Role(cmd.Role).IsValid() {
		return errors.NewValidationError("invalid role")
	}
	return nil
}
