package usecases

import (
	"context"

	"helpdesk/internal/application/notification/dto"
	"helpdesk/internal/domain/notification"
	vo "helpdesk/internal/domain/notification/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateNotificationCommand struct {
	UserID     uint
	Title      string
	Message    string
	Type       string
	TicketCode *string
}

type CreateNotificationUseCase struct {
	notificationRepo notification.Repository
	unreadCache      UnreadCountCache
	logger           logger.Interface
}

func NewCreateNotificationUseCase(
	notificationRepo notification.Repository,
	unreadCache UnreadCountCache,
	logger logger.Interface,
) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{
		notificationRepo: notificationRepo,
		unreadCache:      unreadCache,
		logger:           logger,
	}
}

func (uc *CreateNotificationUseCase) Execute(ctx context.Context, cmd CreateNotificationCommand) (*dto.NotificationDTO, error) {
	uc.logger.Infow("executing create notification use case", "user_id", cmd.UserID, "type", cmd.Type)

	newNotification, err := notification.NewNotification(
		cmd.UserID,
		cmd.Title,
		cmd.Message,
		vo.NotificationType(cmd.Type),
		cmd.TicketCode,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.notificationRepo.Save(ctx, newNotification); err != nil {
		uc.logger.Errorw("failed to save notification", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.invalidateUnreadCount(ctx, cmd.UserID)

	return dto.ToNotificationDTO(newNotification), nil
}

func (uc *CreateNotificationUseCase) invalidateUnreadCount(ctx context.Context, userID uint) {
	if uc.unreadCache == nil {
		return
	}
	if err := uc.unreadCache.Invalidate(ctx, userID); err != nil {
		uc.logger.Warnw("failed to invalidate unread count cache", "error", err, "user_id", userID)
	}
}
