package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdto "helpdesk/internal/application/notification/dto"
	"helpdesk/internal/application/notification/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type mockListNotifications struct {
	fn func(ctx context.Context, query usecases.ListNotificationsQuery) ([]*appdto.NotificationDTO, error)
}

func (m *mockListNotifications) Execute(ctx context.Context, query usecases.ListNotificationsQuery) ([]*appdto.NotificationDTO, error) {
	return m.fn(ctx, query)
}

type mockUnreadCount struct {
	fn func(ctx context.Context, query usecases.UnreadCountQuery) (int64, error)
}

func (m *mockUnreadCount) Execute(ctx context.Context, query usecases.UnreadCountQuery) (int64, error) {
	return m.fn(ctx, query)
}

type mockMarkAsRead struct {
	fn func(ctx context.Context, cmd usecases.MarkAsReadCommand) (*appdto.NotificationDTO, error)
}

func (m *mockMarkAsRead) Execute(ctx context.Context, cmd usecases.MarkAsReadCommand) (*appdto.NotificationDTO, error) {
	return m.fn(ctx, cmd)
}

type mockMarkAllAsRead struct {
	fn func(ctx context.Context, cmd usecases.MarkAllAsReadCommand) error
}

func (m *mockMarkAllAsRead) Execute(ctx context.Context, cmd usecases.MarkAllAsReadCommand) error {
	return m.fn(ctx, cmd)
}

type mockDeleteNotification struct {
	fn func(ctx context.Context, cmd usecases.DeleteNotificationCommand) error
}

func (m *mockDeleteNotification) Execute(ctx context.Context, cmd usecases.DeleteNotificationCommand) error {
	return m.fn(ctx, cmd)
}

func setupNotificationRouter(h *NotificationHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	// Simulate the resolved principal the auth middleware would set.
	engine.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, uint(7))
		c.Set(middleware.ContextKeyUserRole, "customer")
		c.Next()
	})

	api := engine.Group("/api")
	notifications := api.Group("/notifications")
	notifications.GET("", h.ListNotifications)
	notifications.GET("/unread-count", h.UnreadCount)
	notifications.PUT("/mark-all-read", h.MarkAllAsRead)
	notifications.PUT("/:id/read", h.MarkAsRead)
	notifications.DELETE("/:id", h.DeleteNotification)

	return engine
}

func TestNotificationHandler_UnreadCount(t *testing.T) {
	var gotUserID uint
	h := NewNotificationHandler(
		&mockListNotifications{},
		&mockUnreadCount{fn: func(ctx context.Context, query usecases.UnreadCountQuery) (int64, error) {
			gotUserID = query.UserID
			return 3, nil
		}},
		&mockMarkAsRead{},
		&mockMarkAllAsRead{},
		&mockDeleteNotification{},
		logger.NewLogger(),
	)
	engine := setupNotificationRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/unread-count", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), gotUserID)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Count int64 `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(3), resp.Data.Count)
}

func TestNotificationHandler_ListScopedToPrincipal(t *testing.T) {
	var gotUserID uint
	h := NewNotificationHandler(
		&mockListNotifications{fn: func(ctx context.Context, query usecases.ListNotificationsQuery) ([]*appdto.NotificationDTO, error) {
			gotUserID = query.UserID
			return []*appdto.NotificationDTO{{ID: 1, UserID: query.UserID, Title: "Ticket Updated"}}, nil
		}},
		&mockUnreadCount{},
		&mockMarkAsRead{},
		&mockMarkAllAsRead{},
		&mockDeleteNotification{},
		logger.NewLogger(),
	)
	engine := setupNotificationRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), gotUserID)
}

func TestNotificationHandler_MarkAsReadNotFound(t *testing.T) {
	h := NewNotificationHandler(
		&mockListNotifications{},
		&mockUnreadCount{},
		&mockMarkAsRead{fn: func(ctx context.Context, cmd usecases.MarkAsReadCommand) (*appdto.NotificationDTO, error) {
			return nil, errors.NewNotFoundError("notification not found")
		}},
		&mockMarkAllAsRead{},
		&mockDeleteNotification{},
		logger.NewLogger(),
	)
	engine := setupNotificationRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notifications/99/read", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Type string `json:"type"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "not_found", resp.Error.Type)
}

func TestNotificationHandler_MarkAsReadInvalidID(t *testing.T) {
	h := NewNotificationHandler(
		&mockListNotifications{},
		&mockUnreadCount{},
		&mockMarkAsRead{},
		&mockMarkAllAsRead{},
		&mockDeleteNotification{},
		logger.NewLogger(),
	)
	engine := setupNotificationRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notifications/abc/read", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationHandler_MarkAllAndDelete(t *testing.T) {
	var markedAll bool
	var deleted usecases.DeleteNotificationCommand
	h := NewNotificationHandler(
		&mockListNotifications{},
		&mockUnreadCount{},
		&mockMarkAsRead{},
		&mockMarkAllAsRead{fn: func(ctx context.Context, cmd usecases.MarkAllAsReadCommand) error {
			markedAll = cmd.UserID == 7
			return nil
		}},
		&mockDeleteNotification{fn: func(ctx context.Context, cmd usecases.DeleteNotificationCommand) error {
			deleted = cmd
			return nil
		}},
		logger.NewLogger(),
	)
	engine := setupNotificationRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notifications/mark-all-read", nil)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, markedAll)

	var resp struct {
		Data struct {
			Success bool `json:"success"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Success)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/notifications/12", nil)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(12), deleted.NotificationID)
	assert.Equal(t, uint(7), deleted.UserID)
}
