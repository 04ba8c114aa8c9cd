package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UpdateUserCommand carries a partial update; nil fields are untouched.
type UpdateUserCommand struct {
	UserID   uint
	Email    *string
	Role     *string
	FullName *string
	Password *string
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update user use case", "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Email != nil {
		other, err := uc.userRepo.GetByEmail(ctx, *cmd.Email)
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
		if other != nil && other.ID() != cmd.UserID {
			return nil, errors.NewConflictError("email already registered")
		}
		if err := existing.ChangeEmail(*cmd.Email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Role != nil {
		if err := existing.ChangeRole(vo.Role(*cmd.Role)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.FullName != nil {
		if err := existing.ChangeFullName(*cmd.FullName); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Password != nil {
		if len(*cmd.Password) < 5 {
			return nil, errors.NewValidationError("password must be at least 5 characters")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := existing.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("user updated successfully", "user_id", cmd.UserID)

	return dto.ToUserDTO(existing), nil
}
