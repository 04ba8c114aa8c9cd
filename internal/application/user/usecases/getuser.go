package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	return dto.ToUserDTO(existing), nil
}
