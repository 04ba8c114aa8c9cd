package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NotificationModel{}).
		Where("id = ?", model.ID).
		Select("is_read").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("notification not found")
	}

	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.NotificationModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("notification not found")
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("notification not found")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var notificationModels []*models.NotificationModel
	if err := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return r.mapper.ToDomains(notificationModels)
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}

	return nil
}

func (r *NotificationRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID).Delete(&models.NotificationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}
