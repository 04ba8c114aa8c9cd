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

func TestAddCommentUseCase_Execute(t *testing.T) {
	t.Run("saves comment", func(t *testing.T) {
		tk := storedTicket(t, vo.StatusOpen)
		repo := &mockTicketRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				return c.SetID(11)
			},
		}

		uc := NewAddCommentUseCase(repo, commentRepo, nil, &mockLogger{})
		result, err := uc.Execute(context.Background(), AddCommentCommand{
			TicketCode: "TICK-2024-0007",
			UserID:     3,
			Content:    "Looking into this now",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(11), result.CommentID)
	})

	t.Run("never touches first response", func(t *testing.T) {
		tk := storedTicket(t, vo.StatusOpen)

		updates := 0
		repo := &mockTicketRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
				return tk, nil
			},
			UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
				updates++
				return nil
			},
		}

		uc := NewAddCommentUseCase(repo, &mockCommentRepository{}, nil, &mockLogger{})

		_, err := uc.Execute(context.Background(), AddCommentCommand{
			TicketCode: "TICK-2024-0007",
			UserID:     3,
			Content:    "Thanks, any update on this?",
		})

		require.NoError(t, err)
		assert.Nil(t, tk.FirstResponseAt())
		assert.Zero(t, updates)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		tk := storedTicket(t, vo.StatusOpen)
		repo := &mockTicketRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}

		uc := NewAddCommentUseCase(repo, &mockCommentRepository{}, nil, &mockLogger{})
		_, err := uc.Execute(context.Background(), AddCommentCommand{
			TicketCode: "TICK-2024-0007",
			UserID:     3,
			Content:    "",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("fails when ticket is missing", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}

		uc := NewAddCommentUseCase(repo, &mockCommentRepository{}, nil, &mockLogger{})
		_, err := uc.Execute(context.Background(), AddCommentCommand{
			TicketCode: "TICK-2024-9999",
			UserID:     3,
			Content:    "hello",
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
