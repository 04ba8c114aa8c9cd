package migration

import (
	"helpdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.RatingModel{},
		&models.NotificationModel{},
		&models.ArticleModel{},
		&models.ArticleRatingModel{},
	}
}
