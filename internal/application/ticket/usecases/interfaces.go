package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailsDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) error
}

type RateTicketExecutor interface {
	Execute(ctx context.Context, cmd RateTicketCommand) (*RateTicketResult, error)
}

type GetTicketRatingExecutor interface {
	Execute(ctx context.Context, query GetTicketRatingQuery) (*dto.RatingDTO, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context) (*dto.TicketStatsDTO, error)
}

type ListByDateRangeExecutor interface {
	Execute(ctx context.Context, query ListByDateRangeQuery) ([]*dto.TicketDTO, error)
}

// TransactionManager runs a function inside a storage transaction when the
// backing store supports one. Wiring may leave it nil for stores that do
// their writes atomically on their own.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
