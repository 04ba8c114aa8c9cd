// Package memory provides map-backed repository implementations used for
// demos and tests. All repositories are safe for concurrent use.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

type TicketRepository struct {
	mu     sync.RWMutex
	byCode map[string]*ticket.Ticket
	nextID uint
}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{
		byCode: make(map[string]*ticket.Ticket),
		nextID: 1,
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCode[t.Code()]; exists {
		return errors.NewConflictError("ticket code already exists")
	}

	if t.ID() == 0 {
		if err := t.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	} else if t.ID() >= r.nextID {
		r.nextID = t.ID() + 1
	}

	r.byCode[t.Code()] = t
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCode[t.Code()]; !exists {
		return errors.NewNotFoundError("ticket not found")
	}

	r.byCode[t.Code()] = t
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCode[code]; !exists {
		return errors.NewNotFoundError("ticket not found")
	}

	delete(r.byCode, code)
	return nil
}

func (r *TicketRepository) GetByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.byCode[code]
	if !exists {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*ticket.Ticket, 0, len(r.byCode))
	for _, t := range r.byCode {
		if !matchesFilter(t, filter) {
			continue
		}
		matched = append(matched, t)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})

	total := int64(len(matched))

	if filter.PageSize > 0 {
		start := (filter.Page - 1) * filter.PageSize
		if start >= len(matched) {
			return []*ticket.Ticket{}, total, nil
		}
		end := start + filter.PageSize
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}

	return matched, total, nil
}

func matchesFilter(t *ticket.Ticket, filter ticket.Filter) bool {
	if filter.Status != nil && t.Status() != *filter.Status {
		return false
	}
	if filter.Priority != nil && t.Priority() != *filter.Priority {
		return false
	}
	if filter.Category != nil && t.Category() != *filter.Category {
		return false
	}
	if filter.CustomerID != nil {
		if t.CustomerID() == nil || *t.CustomerID() != *filter.CustomerID {
			return false
		}
	}
	if filter.AssigneeID != nil {
		if t.AssigneeID() == nil || *t.AssigneeID() != *filter.AssigneeID {
			return false
		}
	}
	return true
}

func (r *TicketRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*ticket.Ticket, 0)
	for _, t := range r.byCode {
		created := t.CreatedAt()
		if created.Before(start) || created.After(end) {
			continue
		}
		matched = append(matched, t)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})

	return matched, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int64)
	for _, t := range r.byCode {
		counts[t.Status().String()]++
	}
	return counts, nil
}

func (r *TicketRepository) HighestCodeSequence(ctx context.Context, year int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := fmt.Sprintf("TICK-%d-", year)
	highest := 0
	for code := range r.byCode {
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(code, prefix))
		if err != nil {
			continue
		}
		if seq > highest {
			highest = seq
		}
	}
	return highest, nil
}

func (r *TicketRepository) DetachUser(ctx context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.byCode {
		t.DetachUser(userID)
	}
	return nil
}
