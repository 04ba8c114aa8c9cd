package ticket

import (
	"context"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

type Filter struct {
	Status     *vo.Status
	Priority   *vo.Priority
	Category   *string
	CustomerID *uint
	AssigneeID *uint
	Page       int
	PageSize   int
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, code string) error
	GetByCode(ctx context.Context, code string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*Ticket, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	// HighestCodeSequence returns the largest numeric suffix among issued
	// codes for the given year, used to seed the code generator.
	HighestCodeSequence(ctx context.Context, year int) (int, error)
	// DetachUser nulls out assignee/customer references to a deleted user.
	DetachUser(ctx context.Context, userID uint) error
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	ListByTicketCode(ctx context.Context, code string) ([]*Comment, error)
	Delete(ctx context.Context, commentID uint) error
	DeleteByTicketCode(ctx context.Context, code string) error
}

type RatingRepository interface {
	Save(ctx context.Context, r *Rating) error
	Update(ctx context.Context, r *Rating) error
	GetByTicketCode(ctx context.Context, code string) (*Rating, error)
	DeleteByTicketCode(ctx context.Context, code string) error
}
