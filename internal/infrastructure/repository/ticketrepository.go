package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("ticket code already exists")
		}
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces writes of nil and zero-valued columns so unassignment
	// and status rollbacks persist.
	result := tx.
		Model(&models.TicketModel{}).
		Where("code = ?", model.Code).
		Select("subject", "description", "category", "priority", "status",
			"customer_id", "assignee_id", "first_response_at", "resolved_at", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, code string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("code = ?", code).Delete(&models.TicketModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var ticketModels []*models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		t, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func (r *TicketRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ticketModels []*models.TicketModel
	if err := tx.
		Where("created_at >= ? AND created_at <= ?", start.UnixMilli(), end.UnixMilli()).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets by date range: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		t, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}

	return tickets, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	if err := tx.
		Model(&models.TicketModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

func (r *TicketRepository) HighestCodeSequence(ctx context.Context, year int) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	prefix := fmt.Sprintf("TICK-%d-", year)

	var codes []string
	if err := tx.
		Model(&models.TicketModel{}).
		Where("code LIKE ?", prefix+"%").
		Pluck("code", &codes).Error; err != nil {
		return 0, fmt.Errorf("failed to scan ticket codes: %w", err)
	}

	highest := 0
	for _, code := range codes {
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
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketModel{}).
		Where("assignee_id = ?", userID).
		Update("assignee_id", nil).Error; err != nil {
		return fmt.Errorf("failed to detach assignee: %w", err)
	}

	if err := tx.
		Model(&models.TicketModel{}).
		Where("customer_id = ?", userID).
		Update("customer_id", nil).Error; err != nil {
		return fmt.Errorf("failed to detach customer: %w", err)
	}

	return nil
}
