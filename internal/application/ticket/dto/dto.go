package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/mapper"
)

type TicketDTO struct {
	ID              uint       `json:"id"`
	Code            string     `json:"code"`
	Subject         string     `json:"subject"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	CustomerID      *uint      `json:"customer_id"`
	AssigneeID      *uint      `json:"assignee_id"`
	AssigneeName    *string    `json:"assignee_name,omitempty"`
	FirstResponseAt *time.Time `json:"first_response_at"`
	ResolvedAt      *time.Time `json:"resolved_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type TicketDetailsDTO struct {
	TicketDTO
	Comments []CommentDTO `json:"comments"`
	Rating   *RatingDTO   `json:"rating"`
}

type CommentDTO struct {
	ID         uint      `json:"id"`
	TicketCode string    `json:"ticket_code"`
	UserID     uint      `json:"user_id"`
	Content    string    `json:"content"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

type RatingDTO struct {
	ID         uint      `json:"id"`
	TicketCode string    `json:"ticket_code"`
	UserID     uint      `json:"user_id"`
	Rating     int       `json:"rating"`
	Feedback   string    `json:"feedback,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type TicketStatsDTO struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:              t.ID(),
		Code:            t.Code(),
		Subject:         t.Subject(),
		Description:     t.Description(),
		Category:        t.Category(),
		Priority:        t.Priority().String(),
		Status:          t.Status().String(),
		CustomerID:      t.CustomerID(),
		AssigneeID:      t.AssigneeID(),
		FirstResponseAt: t.FirstResponseAt(),
		ResolvedAt:      t.ResolvedAt(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		TicketCode: c.TicketCode(),
		UserID:     c.UserID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
	}
}

func ToCommentDTOs(comments []*ticket.Comment) []CommentDTO {
	return mapper.MapSlice(comments, ToCommentDTO)
}

func ToRatingDTO(r *ticket.Rating) *RatingDTO {
	if r == nil {
		return nil
	}

	return &RatingDTO{
		ID:         r.ID(),
		TicketCode: r.TicketCode(),
		UserID:     r.UserID(),
		Rating:     r.Value(),
		Feedback:   r.Feedback(),
		CreatedAt:  r.CreatedAt(),
	}
}
