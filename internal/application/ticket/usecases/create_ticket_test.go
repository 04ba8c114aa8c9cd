package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	customerID := uint(1)

	t.Run("creates ticket with generated code", func(t *testing.T) {
		var saved *ticket.Ticket
		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				saved = tk
				return tk.SetID(42)
			},
		}
		var published []events.DomainEvent
		publisher := &mockEventPublisher{
			PublishFunc: func(event events.DomainEvent) error {
				published = append(published, event)
				return nil
			},
		}

		uc := NewCreateTicketUseCase(repo, &mockCodeGenerator{}, publisher, &mockLogger{})
		result, err := uc.Execute(context.Background(), CreateTicketCommand{
			Subject:     "Cannot log in",
			Description: "Password reset link never arrives",
			Priority:    "high",
			CustomerID:  &customerID,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(42), result.TicketID)
		assert.Equal(t, "TICK-2024-0001", result.Code)
		assert.Equal(t, "open", result.Status)
		require.NotNil(t, saved)
		assert.Equal(t, "TICK-2024-0001", saved.Code())

		require.Len(t, published, 1)
		assert.Equal(t, ticket.EventTypeTicketCreated, published[0].GetEventType())
	})

	t.Run("defaults priority and category", func(t *testing.T) {
		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				assert.Equal(t, "medium", tk.Priority().String())
				assert.Equal(t, ticket.DefaultCategory, tk.Category())
				return nil
			},
		}

		uc := NewCreateTicketUseCase(repo, &mockCodeGenerator{}, nil, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			Subject:     "Subject",
			Description: "Description",
			CustomerID:  &customerID,
		})
		require.NoError(t, err)
	})

	t.Run("rejects invalid command", func(t *testing.T) {
		uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockCodeGenerator{}, nil, &mockLogger{})

		tests := []struct {
			name string
			cmd  CreateTicketCommand
		}{
			{name: "missing subject", cmd: CreateTicketCommand{Description: "d"}},
			{name: "missing description", cmd: CreateTicketCommand{Subject: "s"}},
			{name: "bad priority", cmd: CreateTicketCommand{Subject: "s", Description: "d", Priority: "critical"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tt.cmd)
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
			})
		}
	})

	t.Run("publish failure does not fail creation", func(t *testing.T) {
		publisher := &mockEventPublisher{
			PublishFunc: func(event events.DomainEvent) error {
				return errors.NewInternalError("dispatcher stopped")
			},
		}

		uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockCodeGenerator{}, publisher, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			Subject:     "Subject",
			Description: "Description",
			CustomerID:  &customerID,
		})
		require.NoError(t, err)
	})
}
