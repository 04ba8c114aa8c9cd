package knowledge

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Article is a knowledge base entry. Ratings are kept as a running sum
// plus a voter count so the average can be recomputed cheaply; a voter
// revising their score replaces their previous contribution in the sum
// without touching the count.
type Article struct {
	id          uint
	title       string
	content     string
	excerpt     string
	category    string
	tags        []string
	authorID    *uint
	views       int
	ratingSum   int
	ratingCount int
	isPublished bool
	createdAt   time.Time
	updatedAt   time.Time
}

const (
	maxTitleLength    = 255
	maxExcerptLength  = 500
	maxCategoryLength = 100
)

func NewArticle(title, content, excerpt, category string, tags []string, authorID *uint) (*Article, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(excerpt) > maxExcerptLength {
		return nil, fmt.Errorf("excerpt exceeds maximum length of %d characters", maxExcerptLength)
	}
	if len(category) > maxCategoryLength {
		return nil, fmt.Errorf("category exceeds maximum length of %d characters", maxCategoryLength)
	}
	if category == "" {
		category = "General"
	}

	now := biztime.NowUTC()
	return &Article{
		title:       title,
		content:     content,
		excerpt:     excerpt,
		category:    category,
		tags:        tags,
		authorID:    authorID,
		isPublished: true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructArticle(
	id uint,
	title string,
	content string,
	excerpt string,
	category string,
	tags []string,
	authorID *uint,
	views int,
	ratingSum int,
	ratingCount int,
	isPublished bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}

	return &Article{
		id:          id,
		title:       title,
		content:     content,
		excerpt:     excerpt,
		category:    category,
		tags:        tags,
		authorID:    authorID,
		views:       views,
		ratingSum:   ratingSum,
		ratingCount: ratingCount,
		isPublished: isPublished,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func validateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	return nil
}

func (a *Article) ID() uint {
	return a.id
}

func (a *Article) Title() string {
	return a.title
}

func (a *Article) Content() string {
	return a.content
}

func (a *Article) Excerpt() string {
	return a.excerpt
}

func (a *Article) Category() string {
	return a.category
}

func (a *Article) Tags() []string {
	return a.tags
}

func (a *Article) AuthorID() *uint {
	return a.authorID
}

func (a *Article) Views() int {
	return a.views
}

func (a *Article) RatingSum() int {
	return a.ratingSum
}

func (a *Article) RatingCount() int {
	return a.ratingCount
}

func (a *Article) IsPublished() bool {
	return a.isPublished
}

func (a *Article) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Article) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Article) UpdateTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	a.title = title
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *Article) UpdateContent(content string) error {
	if len(content) == 0 {
		return fmt.Errorf("content is required")
	}
	a.content = content
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *Article) UpdateExcerpt(excerpt string) error {
	if len(excerpt) > maxExcerptLength {
		return fmt.Errorf("excerpt exceeds maximum length of %d characters", maxExcerptLength)
	}
	a.excerpt = excerpt
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *Article) UpdateCategory(category string) error {
	if len(category) > maxCategoryLength {
		return fmt.Errorf("category exceeds maximum length of %d characters", maxCategoryLength)
	}
	a.category = category
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *Article) UpdateTags(tags []string) {
	a.tags = tags
	a.updatedAt = biztime.NowUTC()
}

func (a *Article) Publish() {
	a.isPublished = true
	a.updatedAt = biztime.NowUTC()
}

func (a *Article) Unpublish() {
	a.isPublished = false
	a.updatedAt = biztime.NowUTC()
}

// IncrementViews bumps the view counter by one.
func (a *Article) IncrementViews() {
	a.views++
}

// ApplyRating folds a voter's score into the aggregate. When the voter
// has rated before, previous carries their old score and the sum is
// adjusted without changing the count; a first-time vote grows both.
func (a *Article) ApplyRating(previous *int, value int) error {
	if value < 1 || value > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if previous != nil {
		a.ratingSum = a.ratingSum - *previous + value
	} else {
		a.ratingSum += value
		a.ratingCount++
	}
	a.updatedAt = biztime.NowUTC()
	return nil
}

// AverageRating returns the mean score, or 0 when nobody has voted.
func (a *Article) AverageRating() float64 {
	if a.ratingCount == 0 {
		return 0
	}
	return float64(a.ratingSum) / float64(a.ratingCount)
}
