package valueobjects

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// Label returns the human-readable form used in notification messages.
func (s Status) Label() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusInProgress:
		return "In Progress"
	case StatusResolved:
		return "Resolved"
	case StatusClosed:
		return "Closed"
	default:
		return string(s)
	}
}

// NewStatus parses a status string. The legacy hyphenated spelling
// ("in-progress") is accepted on input and normalized to the canonical
// snake_case form.
func NewStatus(s string) (Status, error) {
	normalized := Status(strings.ReplaceAll(strings.ToLower(s), "-", "_"))
	if !normalized.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return normalized, nil
}
