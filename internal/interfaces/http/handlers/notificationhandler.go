package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/notification/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type NotificationHandler struct {
	listNotificationsUC usecases.ListNotificationsExecutor
	unreadCountUC       usecases.UnreadCountExecutor
	markAsReadUC        usecases.MarkAsReadExecutor
	markAllAsReadUC     usecases.MarkAllAsReadExecutor
	deleteUC            usecases.DeleteNotificationExecutor
	logger              logger.Interface
}

func NewNotificationHandler(
	listNotificationsUC usecases.ListNotificationsExecutor,
	unreadCountUC usecases.UnreadCountExecutor,
	markAsReadUC usecases.MarkAsReadExecutor,
	markAllAsReadUC usecases.MarkAllAsReadExecutor,
	deleteUC usecases.DeleteNotificationExecutor,
	log logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listNotificationsUC: listNotificationsUC,
		unreadCountUC:       unreadCountUC,
		markAsReadUC:        markAsReadUC,
		markAllAsReadUC:     markAllAsReadUC,
		deleteUC:            deleteUC,
		logger:              log,
	}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	query := usecases.ListNotificationsQuery{UserID: middleware.CurrentUserID(c)}

	result, err := h.listNotificationsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	query := usecases.UnreadCountQuery{UserID: middleware.CurrentUserID(c)}

	count, err := h.unreadCountUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"count": count})
}

// MarkAsRead handles PUT /notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	notificationID, err := utils.ParseUintParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.MarkAsReadCommand{
		NotificationID: notificationID,
		UserID:         middleware.CurrentUserID(c),
	}

	result, err := h.markAsReadUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", result)
}

// MarkAllAsRead handles PUT /notifications/mark-all-read
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	cmd := usecases.MarkAllAsReadCommand{UserID: middleware.CurrentUserID(c)}

	if err := h.markAllAsReadUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", gin.H{"success": true})
}

// DeleteNotification handles DELETE /notifications/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	notificationID, err := utils.ParseUintParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteNotificationCommand{
		NotificationID: notificationID,
		UserID:         middleware.CurrentUserID(c),
	}

	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification deleted", gin.H{"success": true})
}
