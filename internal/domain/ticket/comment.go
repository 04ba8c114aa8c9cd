package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Comment is an append-only note on a ticket. Comments reference the ticket
// by its external code, matching the URL scheme.
type Comment struct {
	id         uint
	ticketCode string
	userID     uint
	content    string
	isInternal bool
	createdAt  time.Time
}

func NewComment(
	ticketCode string,
	userID uint,
	content string,
	isInternal bool,
) (*Comment, error) {
	if len(ticketCode) == 0 {
		return nil, fmt.Errorf("ticket code is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	return &Comment{
		ticketCode: ticketCode,
		userID:     userID,
		content:    content,
		isInternal: isInternal,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketCode string,
	userID uint,
	content string,
	isInternal bool,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if len(ticketCode) == 0 {
		return nil, fmt.Errorf("ticket code is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Comment{
		id:         id,
		ticketCode: ticketCode,
		userID:     userID,
		content:    content,
		isInternal: isInternal,
		createdAt:  createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketCode() string {
	return c.ticketCode
}

func (c *Comment) UserID() uint {
	return c.userID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) IsInternal() bool {
	return c.isInternal
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
