package mappers

import (
	"fmt"

	"helpdesk/internal/domain/notification"
	vo "helpdesk/internal/domain/notification/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/mapper"
)

// NotificationMapper handles the conversion between notification domain entities and persistence models.
type NotificationMapper interface {
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) *models.NotificationModel
	ToDomains(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	notificationType, err := vo.NewNotificationType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to map notification type (id=%d): %w", model.ID, err)
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.Title,
		model.Message,
		notificationType,
		model.IsRead,
		model.TicketCode,
		millisToTime(model.CreatedAt),
	)
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:         entity.ID(),
		UserID:     entity.UserID(),
		Type:       entity.Type().String(),
		Title:      entity.Title(),
		Message:    entity.Message(),
		IsRead:     entity.IsRead(),
		TicketCode: entity.TicketCode(),
		CreatedAt:  entity.CreatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) ToDomains(notificationModels []*models.NotificationModel) ([]*notification.Notification, error) {
	return mapper.MapSliceWithError(notificationModels, m.ToDomain)
}
