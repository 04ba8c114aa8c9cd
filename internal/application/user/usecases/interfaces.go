package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
)

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context) ([]*dto.UserDTO, error)
}
