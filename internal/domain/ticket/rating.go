package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Rating is the customer's satisfaction score for a resolved ticket.
// At most one rating exists per ticket; re-rating updates it in place.
type Rating struct {
	id         uint
	ticketCode string
	userID     uint
	rating     int
	feedback   string
	createdAt  time.Time
}

func NewRating(
	ticketCode string,
	userID uint,
	rating int,
	feedback string,
) (*Rating, error) {
	if len(ticketCode) == 0 {
		return nil, fmt.Errorf("ticket code is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	return &Rating{
		ticketCode: ticketCode,
		userID:     userID,
		rating:     rating,
		feedback:   feedback,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructRating(
	id uint,
	ticketCode string,
	userID uint,
	rating int,
	feedback string,
	createdAt time.Time,
) (*Rating, error) {
	if id == 0 {
		return nil, fmt.Errorf("rating ID cannot be zero")
	}
	if len(ticketCode) == 0 {
		return nil, fmt.Errorf("ticket code is required")
	}

	return &Rating{
		id:         id,
		ticketCode: ticketCode,
		userID:     userID,
		rating:     rating,
		feedback:   feedback,
		createdAt:  createdAt,
	}, nil
}

func (r *Rating) ID() uint {
	return r.id
}

func (r *Rating) TicketCode() string {
	return r.ticketCode
}

func (r *Rating) UserID() uint {
	return r.userID
}

func (r *Rating) Value() int {
	return r.rating
}

func (r *Rating) Feedback() string {
	return r.feedback
}

func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rating) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("rating ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("rating ID cannot be zero")
	}
	r.id = id
	return nil
}

// Revise replaces the score and, when non-empty, the feedback text.
func (r *Rating) Revise(rating int, feedback string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	r.rating = rating
	if feedback != "" {
		r.feedback = feedback
	}
	return nil
}
