package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type MarkAllAsReadCommand struct {
	UserID uint
}

type MarkAllAsReadUseCase struct {
	notificationRepo notification.Repository
	unreadCache      UnreadCountCache
	logger           logger.Interface
}

func NewMarkAllAsReadUseCase(
	notificationRepo notification.Repository,
	unreadCache UnreadCountCache,
	logger logger.Interface,
) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		notificationRepo: notificationRepo,
		unreadCache:      unreadCache,
		logger:           logger,
	}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, cmd MarkAllAsReadCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.notificationRepo.MarkAllAsRead(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "error", err, "user_id", cmd.UserID)
		return err
	}

	if uc.unreadCache != nil {
		if err := uc.unreadCache.Set(ctx, cmd.UserID, 0); err != nil {
			uc.logger.Warnw("failed to reset unread count cache", "error", err, "user_id", cmd.UserID)
		}
	}

	return nil
}
