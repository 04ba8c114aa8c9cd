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

func TestRateTicketUseCase_Execute(t *testing.T) {
	t.Run("creates rating when none exists", func(t *testing.T) {
		tk := storedTicket(t, vo.StatusResolved)
		repo := &mockTicketRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		var saved *ticket.Rating
		ratingRepo := &mockRatingRepository{
			GetByTicketCodeFunc: func(ctx context.Context, code string) (*ticket.Rating, error) {
				return nil, errors.NewNotFoundError("rating not found")
			},
			SaveFunc: func(ctx context.Context, r *ticket.Rating) error {
				saved = r
				return r.SetID(1)
			},
		}

		uc := NewRateTicketUseCase(repo, ratingRepo, nil, &mockLogger{})
		result, err := uc.Execute(context.Background(), RateTicketCommand{
			TicketCode: "TICK-2024-0007",
			UserID:     1,
			Rating:     4,
			Feedback:   "Quick turnaround",
		})

		require.NoError(t, err)
		assert.Equal(t, 4, result.Rating)
		require.NotNil(t, saved)
		assert.Equal(t, "Quick turnaround", saved.Feedback())
	})

	t.Run("revises existing rating in place", func(t *testing.T) {
		tk := storedTicket(t, vo.StatusResolved)
		existing, err := ticket.NewRating("TICK-2024-0007", 1, 2, "slow")
		require.NoError(t, err)
		require.NoError(t, existing.SetID(9))

		repo := &mockTicketRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		updateCalls, saveCalls := 0, 0
		ratingRepo := &mockRatingRepository{
			GetByTicketCodeFunc: func(ctx context.Context, code string) (*ticket.Rating, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, r *ticket.Rating) error {
				updateCalls++
				return nil
			},
			SaveFunc: func(ctx context.Context, r *ticket.Rating) error {
				saveCalls++
				return nil
			},
		}

		uc := NewRateTicketUseCase(repo, ratingRepo, nil, &mockLogger{})
		result, err := uc.Execute(context.Background(), RateTicketCommand{
			TicketCode: "TICK-2024-0007",
			UserID:     1,
			Rating:     5,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(9), result.RatingID)
		assert.Equal(t, 5, result.Rating)
		assert.Equal(t, 1, updateCalls)
		assert.Zero(t, saveCalls, "an existing rating must be revised, never duplicated")
		assert.Equal(t, "slow", existing.Feedback(), "empty feedback keeps the previous text")
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		uc := NewRateTicketUseCase(&mockTicketRepository{}, &mockRatingRepository{}, nil, &mockLogger{})

		for _, value := range []int{0, 6, -1} {
			_, err := uc.Execute(context.Background(), RateTicketCommand{
				TicketCode: "TICK-2024-0007",
				UserID:     1,
				Rating:     value,
			})
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		}
	})

	t.Run("fails when ticket is missing", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}

		uc := NewRateTicketUseCase(repo, &mockRatingRepository{}, nil, &mockLogger{})
		_, err := uc.Execute(context.Background(), RateTicketCommand{
			TicketCode: "TICK-2024-9999",
			UserID:     1,
			Rating:     3,
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
