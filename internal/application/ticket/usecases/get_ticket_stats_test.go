package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/errors"
)

func TestGetTicketStatsUseCase_Execute(t *testing.T) {
	t.Run("sums counts across statuses", func(t *testing.T) {
		repo := &mockTicketRepository{
			CountByStatusFunc: func(ctx context.Context) (map[string]int64, error) {
				return map[string]int64{
					"open":        3,
					"in_progress": 2,
					"resolved":    4,
					"closed":      1,
				}, nil
			},
		}

		uc := NewGetTicketStatsUseCase(repo, &mockLogger{})
		stats, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.Open)
		assert.Equal(t, int64(2), stats.InProgress)
		assert.Equal(t, int64(4), stats.Resolved)
		assert.Equal(t, int64(1), stats.Closed)
		assert.Equal(t, int64(10), stats.Total)
	})

	t.Run("missing statuses count as zero", func(t *testing.T) {
		repo := &mockTicketRepository{
			CountByStatusFunc: func(ctx context.Context) (map[string]int64, error) {
				return map[string]int64{"open": 5}, nil
			},
		}

		uc := NewGetTicketStatsUseCase(repo, &mockLogger{})
		stats, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(5), stats.Open)
		assert.Zero(t, stats.InProgress)
		assert.Equal(t, int64(5), stats.Total)
	})

	t.Run("returns repository error", func(t *testing.T) {
		repo := &mockTicketRepository{
			CountByStatusFunc: func(ctx context.Context) (map[string]int64, error) {
				return nil, errors.NewInternalError("count failed")
			},
		}

		uc := NewGetTicketStatsUseCase(repo, &mockLogger{})
		stats, err := uc.Execute(context.Background())

		require.Error(t, err)
		assert.Nil(t, stats)
	})
}
