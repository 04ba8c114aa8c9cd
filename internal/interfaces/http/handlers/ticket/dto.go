package ticket

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
)

type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Category    string `json:"category" binding:"omitempty,max=100"`
	Priority    string `json:"priority" binding:"omitempty"`
	CustomerID  *uint  `json:"customer_id,omitempty"`
	AssigneeID  *uint  `json:"assignee_id,omitempty"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Subject:     r.Subject,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		CustomerID:  r.CustomerID,
		AssigneeID:  r.AssigneeID,
	}
}

type UpdateTicketRequest struct {
	Subject     *string `json:"subject,omitempty" binding:"omitempty,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=5000"`
	Category    *string `json:"category,omitempty" binding:"omitempty,max=100"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	AssigneeID  *uint   `json:"assignee_id,omitempty"`
	Unassign    bool    `json:"unassign,omitempty"`
}

func (r *UpdateTicketRequest) ToCommand(code string, updatedBy uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		Code:        code,
		Subject:     r.Subject,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		Status:      r.Status,
		AssigneeID:  r.AssigneeID,
		Unassign:    r.Unassign,
		UpdatedBy:   updatedBy,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddCommentRequest struct {
	Content    string `json:"content" binding:"required,max=10000"`
	IsInternal bool   `json:"is_internal"`
}

type RateTicketRequest struct {
	Rating   int    `json:"rating" binding:"required,gte=1,lte=5"`
	Feedback string `json:"feedback" binding:"max=2000"`
}

type ListTicketsRequest struct {
	Page       int
	PageSize   int
	Status     string
	Priority   string
	Category   string
	CustomerID *uint
	AssigneeID *uint
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:     r.Status,
		Priority:   r.Priority,
		Category:   r.Category,
		CustomerID: r.CustomerID,
		AssigneeID: r.AssigneeID,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
}

func parseTicketCode(c *gin.Context) (string, error) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		return "", errors.NewValidationError("ticket code is required")
	}
	return code, nil
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTicketsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := strconv.ParseUint(customerIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("Invalid customer_id")
		}
		id := uint(customerID)
		req.CustomerID = &id
	}

	if assigneeIDStr := c.Query("assignee_id"); assigneeIDStr != "" {
		assigneeID, err := strconv.ParseUint(assigneeIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("Invalid assignee_id")
		}
		id := uint(assigneeID)
		req.AssigneeID = &id
	}

	return req, nil
}
