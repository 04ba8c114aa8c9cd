package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	RatingToModel(r *ticket.Rating) *models.RatingModel
	RatingToDomain(model *models.RatingModel) (*ticket.Rating, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:          t.ID(),
		Code:        t.Code(),
		Subject:     t.Subject(),
		Description: t.Description(),
		Category:    t.Category(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		CustomerID:  t.CustomerID(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}

	if t.FirstResponseAt() != nil {
		v := t.FirstResponseAt().UnixMilli()
		model.FirstResponseAt = &v
	}

	if t.ResolvedAt() != nil {
		v := t.ResolvedAt().UnixMilli()
		model.ResolvedAt = &v
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
// Comments and ratings must be loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket priority (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket status (id=%d): %w", model.ID, err)
	}

	var firstResponseAt, resolvedAt *time.Time
	if model.FirstResponseAt != nil {
		t := millisToTime(*model.FirstResponseAt)
		firstResponseAt = &t
	}
	if model.ResolvedAt != nil {
		t := millisToTime(*model.ResolvedAt)
		resolvedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Code,
		model.Subject,
		model.Description,
		model.Category,
		priority,
		status,
		model.CustomerID,
		model.AssigneeID,
		firstResponseAt,
		resolvedAt,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketCode: c.TicketCode(),
		UserID:     c.UserID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketCode,
		model.UserID,
		model.Content,
		model.IsInternal,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) RatingToModel(r *ticket.Rating) *models.RatingModel {
	return &models.RatingModel{
		ID:         r.ID(),
		TicketCode: r.TicketCode(),
		UserID:     r.UserID(),
		Rating:     r.Value(),
		Feedback:   r.Feedback(),
		CreatedAt:  r.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) RatingToDomain(model *models.RatingModel) (*ticket.Rating, error) {
	return ticket.ReconstructRating(
		model.ID,
		model.TicketCode,
		model.UserID,
		model.Rating,
		model.Feedback,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}
