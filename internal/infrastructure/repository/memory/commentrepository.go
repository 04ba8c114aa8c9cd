package memory

import (
	"context"
	"sort"
	"sync"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

type CommentRepository struct {
	mu     sync.RWMutex
	byID   map[uint]*ticket.Comment
	nextID uint
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		byID:   make(map[uint]*ticket.Comment),
		nextID: 1,
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID() == 0 {
		if err := c.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	} else if c.ID() >= r.nextID {
		r.nextID = c.ID() + 1
	}

	r.byID[c.ID()] = c
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.byID[commentID]
	if !exists {
		return nil, errors.NewNotFoundError("comment not found")
	}
	return c, nil
}

func (r *CommentRepository) ListByTicketCode(ctx context.Context, code string) ([]*ticket.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comments := make([]*ticket.Comment, 0)
	for _, c := range r.byID {
		if c.TicketCode() == code {
			comments = append(comments, c)
		}
	}

	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt().Before(comments[j].CreatedAt())
	})

	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[commentID]; !exists {
		return errors.NewNotFoundError("comment not found")
	}

	delete(r.byID, commentID)
	return nil
}

func (r *CommentRepository) DeleteByTicketCode(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, c := range r.byID {
		if c.TicketCode() == code {
			delete(r.byID, id)
		}
	}
	return nil
}
