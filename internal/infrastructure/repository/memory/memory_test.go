package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/errors"
)

func newStoredTicket(t *testing.T, repo *TicketRepository, code string) *ticket.Ticket {
	t.Helper()
	customerID := uint(1)
	tk, err := ticket.NewTicket("Subject "+code, "Description", vo.PriorityMedium, "", &customerID, nil)
	require.NoError(t, err)
	require.NoError(t, tk.SetCode(code))
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func TestTicketRepository_Memory(t *testing.T) {
	repo := NewTicketRepository()
	ctx := context.Background()

	t.Run("save assigns sequential ids", func(t *testing.T) {
		first := newStoredTicket(t, repo, "TICK-2025-0001")
		second := newStoredTicket(t, repo, "TICK-2025-0002")
		assert.Equal(t, first.ID()+1, second.ID())
	})

	t.Run("duplicate code conflicts", func(t *testing.T) {
		customerID := uint(1)
		dup, err := ticket.NewTicket("Dup", "Description", vo.PriorityLow, "", &customerID, nil)
		require.NoError(t, err)
		require.NoError(t, dup.SetCode("TICK-2025-0001"))
		assert.True(t, errors.IsConflictError(repo.Save(ctx, dup)))
	})

	t.Run("highest code sequence", func(t *testing.T) {
		seq, err := repo.HighestCodeSequence(ctx, 2025)
		require.NoError(t, err)
		assert.Equal(t, 2, seq)
	})

	t.Run("count by status", func(t *testing.T) {
		counts, err := repo.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts["open"])
	})

	t.Run("delete removes ticket", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "TICK-2025-0002"))
		_, err := repo.GetByCode(ctx, "TICK-2025-0002")
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestUserRepository_Memory(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	admin, err := user.NewUser("admin", "hash", "admin@helpdesk.com", uservo.RoleAdministrator, "Administrator")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, admin))

	t.Run("lookup by username and email", func(t *testing.T) {
		byName, err := repo.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, admin.ID(), byName.ID())

		byEmail, err := repo.GetByEmail(ctx, "admin@helpdesk.com")
		require.NoError(t, err)
		assert.Equal(t, admin.ID(), byEmail.ID())
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		clone, err := user.NewUser("admin", "hash", "other@helpdesk.com", uservo.RoleAgent, "Clone")
		require.NoError(t, err)
		assert.True(t, errors.IsConflictError(repo.Save(ctx, clone)))
	})

	t.Run("delete removes user", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, admin.ID()))
		_, err := repo.GetByID(ctx, admin.ID())
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestNotificationRepository_Memory(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		n, err := notification.NewNotification(7, "Ticket Update", "Something happened", "ticket", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, n))
	}

	other, err := notification.NewNotification(8, "Other", "Not yours", "info", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	t.Run("unread count is scoped to user", func(t *testing.T) {
		count, err := repo.CountUnread(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("list is newest first", func(t *testing.T) {
		list, err := repo.ListByUserID(ctx, 7)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.True(t, list[0].ID() > list[2].ID())
	})

	t.Run("mark all as read", func(t *testing.T) {
		require.NoError(t, repo.MarkAllAsRead(ctx, 7))
		count, err := repo.CountUnread(ctx, 7)
		require.NoError(t, err)
		assert.Zero(t, count)

		count, err = repo.CountUnread(ctx, 8)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("delete by user removes only their rows", func(t *testing.T) {
		require.NoError(t, repo.DeleteByUserID(ctx, 7))
		list, err := repo.ListByUserID(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, list)

		list, err = repo.ListByUserID(ctx, 8)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
