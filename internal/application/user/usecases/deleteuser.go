package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID uint
}

// DeleteUserUseCase removes a user. Tickets that reference the user keep
// existing with the reference nulled out; the user's notifications go away
// with the account.
type DeleteUserUseCase struct {
	userRepo         user.Repository
	ticketRepo       ticket.Repository
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	ticketRepo ticket.Repository,
	notificationRepo notification.Repository,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:         userRepo,
		ticketRepo:       ticketRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		return err
	}

	if err := uc.ticketRepo.DetachUser(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to detach user from tickets", "error", err, "user_id", cmd.UserID)
		return err
	}
	if err := uc.notificationRepo.DeleteByUserID(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user notifications", "error", err, "user_id", cmd.UserID)
		return err
	}
	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", cmd.UserID)
		return err
	}

	uc.logger.Infow("user deleted successfully", "user_id", cmd.UserID)
	return nil
}
