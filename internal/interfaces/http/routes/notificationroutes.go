package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
}

func SetupNotificationRoutes(api *gin.RouterGroup, config *NotificationRouteConfig) {
	notifications := api.Group("/notifications")
	{
		notifications.GET("", config.NotificationHandler.ListNotifications)
		notifications.GET("/unread-count", config.NotificationHandler.UnreadCount)
		notifications.PUT("/mark-all-read", config.NotificationHandler.MarkAllAsRead)
		notifications.PUT("/:id/read", config.NotificationHandler.MarkAsRead)
		notifications.DELETE("/:id", config.NotificationHandler.DeleteNotification)
	}
}
