package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteNotificationCommand struct {
	NotificationID uint
	UserID         uint
}

type DeleteNotificationUseCase struct {
	notificationRepo notification.Repository
	unreadCache      UnreadCountCache
	logger           logger.Interface
}

func NewDeleteNotificationUseCase(
	notificationRepo notification.Repository,
	unreadCache UnreadCountCache,
	logger logger.Interface,
) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		notificationRepo: notificationRepo,
		unreadCache:      unreadCache,
		logger:           logger,
	}
}

func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, cmd DeleteNotificationCommand) error {
	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}

	existing, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return err
	}
	if cmd.UserID != 0 && existing.UserID() != cmd.UserID {
		return errors.NewForbiddenError("notification belongs to another user")
	}

	if err := uc.notificationRepo.Delete(ctx, cmd.NotificationID); err != nil {
		uc.logger.Errorw("failed to delete notification", "error", err, "notification_id", cmd.NotificationID)
		return err
	}

	if uc.unreadCache != nil {
		if err := uc.unreadCache.Invalidate(ctx, existing.UserID()); err != nil {
			uc.logger.Warnw("failed to invalidate unread count cache", "error", err, "user_id", existing.UserID())
		}
	}

	return nil
}
