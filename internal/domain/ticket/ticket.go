package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

const DefaultCategory = "General"

// Ticket is the aggregate for a customer support request. The code is the
// human-readable external identifier (e.g. "TICK-2025-0001") used in URLs;
// id is the internal surrogate key.
type Ticket struct {
	id              uint
	code            string
	subject         string
	description     string
	category        string
	priority        vo.Priority
	status          vo.Status
	customerID      *uint
	assigneeID      *uint
	firstResponseAt *time.Time
	resolvedAt      *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewTicket(
	subject string,
	description string,
	priority vo.Priority,
	category string,
	customerID *uint,
	assigneeID *uint,
) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if priority == "" {
		priority = vo.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if category == "" {
		category = DefaultCategory
	}

	now := biztime.NowUTC()
	return &Ticket{
		subject:     subject,
		description: description,
		category:    category,
		priority:    priority,
		status:      vo.StatusOpen,
		customerID:  customerID,
		assigneeID:  assigneeID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	code string,
	subject string,
	description string,
	category string,
	priority vo.Priority,
	status vo.Status,
	customerID *uint,
	assigneeID *uint,
	firstResponseAt *time.Time,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("ticket code is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:              id,
		code:            code,
		subject:         subject,
		description:     description,
		category:        category,
		priority:        priority,
		status:          status,
		customerID:      customerID,
		assigneeID:      assigneeID,
		firstResponseAt: firstResponseAt,
		resolvedAt:      resolvedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Code() string {
	return t.code
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) CustomerID() *uint {
	return t.customerID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) FirstResponseAt() *time.Time {
	return t.firstResponseAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetCode(code string) error {
	if len(t.code) > 0 {
		return fmt.Errorf("ticket code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("ticket code cannot be empty")
	}
	t.code = code
	return nil
}

// ChangeStatus moves the ticket to newStatus. The transition graph is
// deliberately unrestricted: any status may move to any other, which is what
// makes the reopen affordance (closed back to open) work. Specific targets
// carry side effects:
//   - in_progress stamps firstResponseAt once; later transitions never
//     overwrite it
//   - resolved stamps resolvedAt
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	now := biztime.NowUTC()
	t.status = newStatus
	t.updatedAt = now

	switch {
	case newStatus.IsInProgress():
		if t.firstResponseAt == nil {
			t.firstResponseAt = &now
		}
	case newStatus.IsResolved():
		t.resolvedAt = &now
	}

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) Unassign() {
	t.assigneeID = nil
	t.updatedAt = biztime.NowUTC()
}

// DetachUser clears any reference the ticket holds to the given user.
// Used when a user is deleted; tickets are orphaned, not removed.
func (t *Ticket) DetachUser(userID uint) bool {
	changed := false
	if t.assigneeID != nil && *t.assigneeID == userID {
		t.assigneeID = nil
		changed = true
	}
	if t.customerID != nil && *t.customerID == userID {
		t.customerID = nil
		changed = true
	}
	if changed {
		t.updatedAt = biztime.NowUTC()
	}
	return changed
}

func (t *Ticket) UpdateSubject(subject string) error {
	if len(subject) == 0 {
		return fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return fmt.Errorf("subject exceeds maximum length of 200 characters")
	}

	t.subject = subject
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	t.description = description
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) UpdateCategory(category string) error {
	if len(category) == 0 {
		return fmt.Errorf("category cannot be empty")
	}

	t.category = category
	t.updatedAt = biztime.NowUTC()
	return nil
}
