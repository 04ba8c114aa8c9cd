package knowledge

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// ArticleRating records an individual user's score for an article. One
// row per user and article; revising a score updates the row in place.
type ArticleRating struct {
	id        uint
	articleID uint
	userID    uint
	value     int
	createdAt time.Time
}

func NewArticleRating(articleID, userID uint, value int) (*ArticleRating, error) {
	if articleID == 0 {
		return nil, fmt.Errorf("article ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if value < 1 || value > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	return &ArticleRating{
		articleID: articleID,
		userID:    userID,
		value:     value,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructArticleRating(id, articleID, userID uint, value int, createdAt time.Time) (*ArticleRating, error) {
	if id == 0 {
		return nil, fmt.Errorf("article rating ID cannot be zero")
	}

	return &ArticleRating{
		id:        id,
		articleID: articleID,
		userID:    userID,
		value:     value,
		createdAt: createdAt,
	}, nil
}

func (r *ArticleRating) ID() uint {
	return r.id
}

func (r *ArticleRating) ArticleID() uint {
	return r.articleID
}

func (r *ArticleRating) UserID() uint {
	return r.userID
}

func (r *ArticleRating) Value() int {
	return r.value
}

func (r *ArticleRating) CreatedAt() time.Time {
	return r.createdAt
}

func (r *ArticleRating) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("article rating ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article rating ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *ArticleRating) UpdateValue(value int) error {
	if value < 1 || value > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	r.value = value
	return nil
}
