package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/notification/dto"
	"helpdesk/internal/domain/notification"
	vo "helpdesk/internal/domain/notification/valueobjects"
	"helpdesk/internal/domain/ticket"
	tvo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func storedNotification(t *testing.T, id, userID uint) *notification.Notification {
	t.Helper()
	code := "TICK-2024-0001"
	n, err := notification.NewNotification(userID, "Ticket Updated", "Ticket TICK-2024-0001 is now Resolved.", vo.NotificationTypeStatus, &code)
	require.NoError(t, err)
	require.NoError(t, n.SetID(id))
	return n
}

func TestCreateNotificationUseCase_Execute(t *testing.T) {
	t.Run("saves and invalidates cache", func(t *testing.T) {
		invalidated := false
		repo := &mockNotificationRepository{
			SaveFunc: func(ctx context.Context, n *notification.Notification) error {
				return n.SetID(1)
			},
		}
		cache := &mockUnreadCountCache{
			InvalidateFunc: func(ctx context.Context, userID uint) error {
				invalidated = true
				return nil
			},
		}

		uc := NewCreateNotificationUseCase(repo, cache, &mockLogger{})
		result, err := uc.Execute(context.Background(), CreateNotificationCommand{
			UserID:  3,
			Title:   "New Ticket Assigned",
			Message: "Ticket TICK-2024-0001 has been assigned to you.",
			Type:    "ticket",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.ID)
		assert.False(t, result.IsRead)
		assert.True(t, invalidated)
	})

	t.Run("empty type falls back to info", func(t *testing.T) {
		repo := &mockNotificationRepository{}
		uc := NewCreateNotificationUseCase(repo, nil, &mockLogger{})

		result, err := uc.Execute(context.Background(), CreateNotificationCommand{
			UserID:  3,
			Title:   "Maintenance",
			Message: "Scheduled downtime tonight.",
		})

		require.NoError(t, err)
		assert.Equal(t, "info", result.Type)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		uc := NewCreateNotificationUseCase(&mockNotificationRepository{}, nil, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateNotificationCommand{
			UserID: 0,
			Title:  "t",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestMarkAsReadUseCase_Execute(t *testing.T) {
	t.Run("marks own notification", func(t *testing.T) {
		n := storedNotification(t, 5, 3)
		repo := &mockNotificationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
				return n, nil
			},
		}

		uc := NewMarkAsReadUseCase(repo, nil, &mockLogger{})
		result, err := uc.Execute(context.Background(), MarkAsReadCommand{NotificationID: 5, UserID: 3})

		require.NoError(t, err)
		assert.True(t, result.IsRead)
	})

	t.Run("rejects other user's notification", func(t *testing.T) {
		n := storedNotification(t, 5, 3)
		repo := &mockNotificationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
				return n, nil
			},
		}

		uc := NewMarkAsReadUseCase(repo, nil, &mockLogger{})
		_, err := uc.Execute(context.Background(), MarkAsReadCommand{NotificationID: 5, UserID: 8})

		require.Error(t, err)
	})

	t.Run("missing notification", func(t *testing.T) {
		repo := &mockNotificationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
				return nil, errors.NewNotFoundError("notification not found")
			},
		}

		uc := NewMarkAsReadUseCase(repo, nil, &mockLogger{})
		_, err := uc.Execute(context.Background(), MarkAsReadCommand{NotificationID: 99})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestUnreadCountUseCase_Execute(t *testing.T) {
	t.Run("cache hit skips repository", func(t *testing.T) {
		repoCalled := false
		repo := &mockNotificationRepository{
			CountUnreadFunc: func(ctx context.Context, userID uint) (int64, error) {
				repoCalled = true
				return 0, nil
			},
		}
		cache := &mockUnreadCountCache{
			GetFunc: func(ctx context.Context, userID uint) (int64, bool, error) {
				return 7, true, nil
			},
		}

		uc := NewUnreadCountUseCase(repo, cache, &mockLogger{})
		count, err := uc.Execute(context.Background(), UnreadCountQuery{UserID: 3})

		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
		assert.False(t, repoCalled)
	})

	t.Run("cache miss reads repository and populates", func(t *testing.T) {
		var cached int64
		repo := &mockNotificationRepository{
			CountUnreadFunc: func(ctx context.Context, userID uint) (int64, error) {
				return 4, nil
			},
		}
		cache := &mockUnreadCountCache{
			SetFunc: func(ctx context.Context, userID uint, count int64) error {
				cached = count
				return nil
			},
		}

		uc := NewUnreadCountUseCase(repo, cache, &mockLogger{})
		count, err := uc.Execute(context.Background(), UnreadCountQuery{UserID: 3})

		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
		assert.Equal(t, int64(4), cached)
	})

	t.Run("works without cache", func(t *testing.T) {
		repo := &mockNotificationRepository{
			CountUnreadFunc: func(ctx context.Context, userID uint) (int64, error) {
				return 2, nil
			},
		}

		uc := NewUnreadCountUseCase(repo, nil, &mockLogger{})
		count, err := uc.Execute(context.Background(), UnreadCountQuery{UserID: 3})

		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestTicketEventHandlers(t *testing.T) {
	newEventTicket := func(t *testing.T, assigneeID *uint, customerID *uint) *ticket.Ticket {
		t.Helper()
		tk, err := ticket.NewTicket("Subject", "Description", tvo.PriorityMedium, "General", customerID, assigneeID)
		require.NoError(t, err)
		require.NoError(t, tk.SetCode("TICK-2024-0001"))
		return tk
	}

	t.Run("created event with assignee notifies", func(t *testing.T) {
		assigneeID := uint(4)
		tk := newEventTicket(t, &assigneeID, nil)

		var captured *CreateNotificationCommand
		handlers := NewTicketEventHandlers(&mockCreateNotificationExecutor{
			ExecuteFunc: func(ctx context.Context, cmd CreateNotificationCommand) (*dto.NotificationDTO, error) {
				captured = &cmd
				return nil, nil
			},
		}, &mockLogger{})

		err := handlers.onTicketCreated(ticket.NewTicketCreatedEvent(tk))
		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, uint(4), captured.UserID)
		assert.Equal(t, "New Ticket Assigned", captured.Title)
		assert.Contains(t, captured.Message, "TICK-2024-0001")
	})

	t.Run("status change notifies the customer with the label", func(t *testing.T) {
		customerID := uint(9)
		tk := newEventTicket(t, nil, &customerID)
		require.NoError(t, tk.ChangeStatus(tvo.StatusInProgress))

		var captured *CreateNotificationCommand
		handlers := NewTicketEventHandlers(&mockCreateNotificationExecutor{
			ExecuteFunc: func(ctx context.Context, cmd CreateNotificationCommand) (*dto.NotificationDTO, error) {
				captured = &cmd
				return nil, nil
			},
		}, &mockLogger{})

		err := handlers.onStatusChanged(ticket.NewTicketStatusChangedEvent(tk, "open", 2))
		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, uint(9), captured.UserID)
		assert.Contains(t, captured.Message, "In Progress")
	})

	t.Run("internal comments never notify", func(t *testing.T) {
		assigneeID := uint(4)
		tk := newEventTicket(t, &assigneeID, nil)
		comment, err := ticket.NewComment("TICK-2024-0001", 2, "internal note", true)
		require.NoError(t, err)

		called := false
		handlers := NewTicketEventHandlers(&mockCreateNotificationExecutor{
			ExecuteFunc: func(ctx context.Context, cmd CreateNotificationCommand) (*dto.NotificationDTO, error) {
				called = true
				return nil, nil
			},
		}, &mockLogger{})

		err = handlers.onCommentAdded(ticket.NewTicketCommentAddedEvent(tk, comment))
		require.NoError(t, err)
		assert.False(t, called)
	})
}
