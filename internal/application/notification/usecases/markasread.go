package usecases

import (
	"context"

	"helpdesk/internal/application/notification/dto"
	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type MarkAsReadCommand struct {
	NotificationID uint
	UserID         uint
}

type MarkAsReadUseCase struct {
	notificationRepo notification.Repository
	unreadCache      UnreadCountCache
	logger           logger.Interface
}

func NewMarkAsReadUseCase(
	notificationRepo notification.Repository,
	unreadCache UnreadCountCache,
	logger logger.Interface,
) *MarkAsReadUseCase {
	return &MarkAsReadUseCase{
		notificationRepo: notificationRepo,
		unreadCache:      unreadCache,
		logger:           logger,
	}
}

func (uc *MarkAsReadUseCase) Execute(ctx context.Context, cmd MarkAsReadCommand) (*dto.NotificationDTO, error) {
	if cmd.NotificationID == 0 {
		return nil, errors.NewValidationError("notification ID is required")
	}

	existing, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return nil, err
	}

	// Users can only touch their own notifications.
	if cmd.UserID != 0 && existing.UserID() != cmd.UserID {
		return nil, errors.NewForbiddenError("notification belongs to another user")
	}

	existing.MarkAsRead()
	if err := uc.notificationRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to mark notification as read", "error", err, "notification_id", cmd.NotificationID)
		return nil, err
	}

	if uc.unreadCache != nil {
		if err := uc.unreadCache.Invalidate(ctx, existing.UserID()); err != nil {
			uc.logger.Warnw("failed to invalidate unread count cache", "error", err, "user_id", existing.UserID())
		}
	}

	return dto.ToNotificationDTO(existing), nil
}
