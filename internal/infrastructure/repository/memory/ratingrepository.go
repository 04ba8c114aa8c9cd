package memory

import (
	"context"
	"sync"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

type RatingRepository struct {
	mu     sync.RWMutex
	byCode map[string]*ticket.Rating
	nextID uint
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{
		byCode: make(map[string]*ticket.Rating),
		nextID: 1,
	}
}

func (r *RatingRepository) Save(ctx context.Context, rating *ticket.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCode[rating.TicketCode()]; exists {
		return errors.NewConflictError("ticket already rated")
	}

	if rating.ID() == 0 {
		if err := rating.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	} else if rating.ID() >= r.nextID {
		r.nextID = rating.ID() + 1
	}

	r.byCode[rating.TicketCode()] = rating
	return nil
}

func (r *RatingRepository) Update(ctx context.Context, rating *ticket.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCode[rating.TicketCode()]; !exists {
		return errors.NewNotFoundError("rating not found")
	}

	r.byCode[rating.TicketCode()] = rating
	return nil
}

func (r *RatingRepository) GetByTicketCode(ctx context.Context, code string) (*ticket.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rating, exists := r.byCode[code]
	if !exists {
		return nil, errors.NewNotFoundError("rating not found")
	}
	return rating, nil
}

func (r *RatingRepository) DeleteByTicketCode(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byCode, code)
	return nil
}
