package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UnreadCountQuery struct {
	UserID uint
}

// UnreadCountUseCase serves the unread badge, reading through the cache
// when one is configured.
type UnreadCountUseCase struct {
	notificationRepo notification.Repository
	unreadCache      UnreadCountCache
	logger           logger.Interface
}

func NewUnreadCountUseCase(
	notificationRepo notification.Repository,
	unreadCache UnreadCountCache,
	logger logger.Interface,
) *UnreadCountUseCase {
	return &UnreadCountUseCase{
		notificationRepo: notificationRepo,
		unreadCache:      unreadCache,
		logger:           logger,
	}
}

func (uc *UnreadCountUseCase) Execute(ctx context.Context, query UnreadCountQuery) (int64, error) {
	if query.UserID == 0 {
		return 0, errors.NewValidationError("user ID is required")
	}

	if uc.unreadCache != nil {
		count, hit, err := uc.unreadCache.Get(ctx, query.UserID)
		if err != nil {
			uc.logger.Warnw("unread count cache read failed", "error", err, "user_id", query.UserID)
		} else if hit {
			return count, nil
		}
	}

	count, err := uc.notificationRepo.CountUnread(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "error", err, "user_id", query.UserID)
		return 0, err
	}

	if uc.unreadCache != nil {
		if err := uc.unreadCache.Set(ctx, query.UserID, count); err != nil {
			uc.logger.Warnw("failed to populate unread count cache", "error", err, "user_id", query.UserID)
		}
	}

	return count, nil
}
