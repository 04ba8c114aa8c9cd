package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

type mockTransactionManager struct {
	runs int
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.runs++
	return fn(ctx)
}

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	t.Run("cascades through comments and rating inside a transaction", func(t *testing.T) {
		tk := storedTicket(t, vo.StatusClosed)

		var deletedComments, deletedRating, deletedTicket string
		repo := &mockTicketRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
				return tk, nil
			},
			DeleteFunc: func(ctx context.Context, code string) error {
				deletedTicket = code
				return nil
			},
		}
		commentRepo := &mockCommentRepository{
			DeleteByTicketCodeFunc: func(ctx context.Context, code string) error {
				deletedComments = code
				return nil
			},
		}
		ratingRepo := &mockRatingRepository{
			DeleteByTicketCodeFunc: func(ctx context.Context, code string) error {
				deletedRating = code
				return nil
			},
		}
		txm := &mockTransactionManager{}

		uc := NewDeleteTicketUseCase(repo, commentRepo, ratingRepo, txm, &mockLogger{})
		result, err := uc.Execute(context.Background(), DeleteTicketCommand{Code: "TICK-2024-0007"})

		require.NoError(t, err)
		assert.Equal(t, "TICK-2024-0007", result.Code)
		assert.Equal(t, "TICK-2024-0007", deletedComments)
		assert.Equal(t, "TICK-2024-0007", deletedRating)
		assert.Equal(t, "TICK-2024-0007", deletedTicket)
		assert.Equal(t, 1, txm.runs)
	})

	t.Run("failed comment delete aborts the cascade", func(t *testing.T) {
		tk := storedTicket(t, vo.StatusClosed)
		repo := &mockTicketRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
				return tk, nil
			},
			DeleteFunc: func(ctx context.Context, code string) error {
				t.Fatal("ticket delete should not run after a failed comment delete")
				return nil
			},
		}
		commentRepo := &mockCommentRepository{
			DeleteByTicketCodeFunc: func(ctx context.Context, code string) error {
				return errors.NewInternalError("storage unavailable")
			},
		}

		uc := NewDeleteTicketUseCase(repo, commentRepo, &mockRatingRepository{}, &mockTransactionManager{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), DeleteTicketCommand{Code: "TICK-2024-0007"})

		require.Error(t, err)
	})

	t.Run("runs without a transaction manager", func(t *testing.T) {
		tk := storedTicket(t, vo.StatusClosed)
		repo := &mockTicketRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}

		uc := NewDeleteTicketUseCase(repo, &mockCommentRepository{}, &mockRatingRepository{}, nil, &mockLogger{})
		result, err := uc.Execute(context.Background(), DeleteTicketCommand{Code: "TICK-2024-0007"})

		require.NoError(t, err)
		assert.Equal(t, "TICK-2024-0007", result.Code)
	})

	t.Run("missing ticket is not found", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}

		uc := NewDeleteTicketUseCase(repo, &mockCommentRepository{}, &mockRatingRepository{}, nil, &mockLogger{})
		_, err := uc.Execute(context.Background(), DeleteTicketCommand{Code: "TICK-2024-9999"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
