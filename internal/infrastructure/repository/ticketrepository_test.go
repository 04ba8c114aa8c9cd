package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.TicketModel{},
		&models.CommentModel{},
		&models.RatingModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, subject, code string) *ticket.Ticket {
	t.Helper()
	customerID := uint(1)
	tk, err := ticket.NewTicket(subject, "Test description", vo.PriorityHigh, "Technical", &customerID, nil)
	require.NoError(t, err)
	require.NoError(t, tk.SetCode(code))
	return tk
}

func TestTicketRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("save new ticket successfully", func(t *testing.T) {
		tk := createTestTicket(t, "Login Issues", "TICK-2025-0001")

		err := repo.Save(ctx, tk)
		assert.NoError(t, err)
		assert.NotZero(t, tk.ID())

		found, err := repo.GetByCode(ctx, "TICK-2025-0001")
		assert.NoError(t, err)
		assert.Equal(t, tk.Subject(), found.Subject())
		assert.Equal(t, vo.StatusOpen, found.Status())
		require.NotNil(t, found.CustomerID())
		assert.Equal(t, uint(1), *found.CustomerID())
	})

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		tk1 := createTestTicket(t, "Ticket 1", "TICK-2025-0002")
		require.NoError(t, repo.Save(ctx, tk1))

		tk2 := createTestTicket(t, "Ticket 2", "TICK-2025-0002")
		err := repo.Save(ctx, tk2)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		_, err := repo.GetByCode(ctx, "TICK-2025-9999")
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestTicketRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("status change with timestamps round-trips", func(t *testing.T) {
		tk := createTestTicket(t, "Printer broken", "TICK-2025-0010")
		require.NoError(t, repo.Save(ctx, tk))

		require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.GetByCode(ctx, "TICK-2025-0010")
		require.NoError(t, err)
		assert.Equal(t, vo.StatusInProgress, found.Status())
		assert.NotNil(t, found.FirstResponseAt())
		assert.Nil(t, found.ResolvedAt())
	})

	t.Run("unassignment persists nil assignee", func(t *testing.T) {
		tk := createTestTicket(t, "Assign me", "TICK-2025-0011")
		require.NoError(t, tk.AssignTo(7))
		require.NoError(t, repo.Save(ctx, tk))

		tk.Unassign()
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.GetByCode(ctx, "TICK-2025-0011")
		require.NoError(t, err)
		assert.Nil(t, found.AssigneeID())
	})

	t.Run("updating a missing ticket is not found", func(t *testing.T) {
		tk := createTestTicket(t, "Ghost", "TICK-2025-0404")
		err := repo.Update(ctx, tk)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestTicketRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	open := createTestTicket(t, "Open one", "TICK-2025-0020")
	require.NoError(t, repo.Save(ctx, open))

	resolved := createTestTicket(t, "Resolved one", "TICK-2025-0021")
	require.NoError(t, resolved.ChangeStatus(vo.StatusResolved))
	require.NoError(t, repo.Save(ctx, resolved))

	t.Run("filter by status", func(t *testing.T) {
		status := vo.StatusResolved
		tickets, total, err := repo.List(ctx, ticket.Filter{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, tickets, 1)
		assert.Equal(t, "TICK-2025-0021", tickets[0].Code())
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("counts grouped by status", func(t *testing.T) {
		counts, err := repo.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts["open"])
		assert.Equal(t, int64(1), counts["resolved"])
	})
}

func TestTicketRepository_HighestCodeSequence(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	for _, code := range []string{"TICK-2025-0001", "TICK-2025-0017", "TICK-2024-0099"} {
		tk := createTestTicket(t, "Seq "+code, code)
		require.NoError(t, repo.Save(ctx, tk))
	}

	seq, err := repo.HighestCodeSequence(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, 17, seq)

	seq, err = repo.HighestCodeSequence(ctx, 2023)
	require.NoError(t, err)
	assert.Zero(t, seq)
}

func TestTicketRepository_DetachUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Orphan me", "TICK-2025-0030")
	require.NoError(t, tk.AssignTo(42))
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, repo.DetachUser(ctx, 42))

	found, err := repo.GetByCode(ctx, "TICK-2025-0030")
	require.NoError(t, err)
	assert.Nil(t, found.AssigneeID())

	require.NoError(t, repo.DetachUser(ctx, 1))

	found, err = repo.GetByCode(ctx, "TICK-2025-0030")
	require.NoError(t, err)
	assert.Nil(t, found.CustomerID())
}

func TestCommentRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ticketRepo := NewTicketRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "With comments", "TICK-2025-0040")
	require.NoError(t, ticketRepo.Save(ctx, tk))

	first, err := ticket.NewComment("TICK-2025-0040", 1, "First reply", false)
	require.NoError(t, err)
	require.NoError(t, commentRepo.Save(ctx, first))

	internal, err := ticket.NewComment("TICK-2025-0040", 2, "Internal note", true)
	require.NoError(t, err)
	require.NoError(t, commentRepo.Save(ctx, internal))

	comments, err := commentRepo.ListByTicketCode(ctx, "TICK-2025-0040")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "First reply", comments[0].Content())
	assert.True(t, comments[1].IsInternal())

	require.NoError(t, commentRepo.DeleteByTicketCode(ctx, "TICK-2025-0040"))

	comments, err = commentRepo.ListByTicketCode(ctx, "TICK-2025-0040")
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestRatingRepository_OnePerTicket(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	rating, err := ticket.NewRating("TICK-2025-0050", 1, 4, "Good service")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, rating))

	second, err := ticket.NewRating("TICK-2025-0050", 2, 2, "")
	require.NoError(t, err)
	err = repo.Save(ctx, second)
	assert.True(t, errors.IsConflictError(err))

	require.NoError(t, rating.Revise(5, "Even better"))
	require.NoError(t, repo.Update(ctx, rating))

	found, err := repo.GetByTicketCode(ctx, "TICK-2025-0050")
	require.NoError(t, err)
	assert.Equal(t, 5, found.Value())
	assert.Equal(t, "Even better", found.Feedback())
}
