package usecases

import (
	"context"

	"helpdesk/internal/application/notification/dto"
	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListNotificationsQuery struct {
	UserID uint
}

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(
	notificationRepo notification.Repository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) ([]*dto.NotificationDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	notifications, err := uc.notificationRepo.ListByUserID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err, "user_id", query.UserID)
		return nil, err
	}

	return dto.ToNotificationDTOs(notifications), nil
}
