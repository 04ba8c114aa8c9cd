package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status     string
	Priority   string
	Category   string
	CustomerID *uint
	AssigneeID *uint
	Page       int
	PageSize   int
}

type ListTicketsResult struct {
	Tickets  []*dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	names := uc.resolveAssigneeNames(ctx, tickets)

	dtos := make([]*dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		d := dto.ToTicketDTO(t)
		if t.AssigneeID() != nil {
			if name, ok := names[*t.AssigneeID()]; ok {
				d.AssigneeName = &name
			}
		}
		dtos = append(dtos, d)
	}

	return &ListTicketsResult{
		Tickets:  dtos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.Filter, error) {
	filter := ticket.Filter{
		CustomerID: query.CustomerID,
		AssigneeID: query.AssigneeID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority := vo.Priority(query.Priority)
		if !priority.IsValid() {
			return ticket.Filter{}, errors.NewValidationError("invalid priority")
		}
		filter.Priority = &priority
	}
	if query.Category != "" {
		filter.Category = &query.Category
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	return filter, nil
}

// resolveAssigneeNames batches name lookups across the page so each
// distinct assignee is fetched once.
func (uc *ListTicketsUseCase) resolveAssigneeNames(ctx context.Context, tickets []*ticket.Ticket) map[uint]string {
	names := make(map[uint]string)
	for _, t := range tickets {
		id := t.AssigneeID()
		if id == nil {
			continue
		}
		if _, seen := names[*id]; seen {
			continue
		}
		assignee, err := uc.userRepo.GetByID(ctx, *id)
		if err != nil {
			uc.logger.Warnw("failed to resolve assignee name", "error", err, "assignee_id", *id)
			continue
		}
		names[*id] = assignee.FullName()
	}
	return names
}
