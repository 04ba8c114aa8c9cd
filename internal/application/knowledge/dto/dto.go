package dto

import (
	"time"

	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/shared/mapper"
)

type ArticleDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	Excerpt     string    `json:"excerpt"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	AuthorID    *uint     `json:"author_id"`
	AuthorName  *string   `json:"author_name,omitempty"`
	Views       int       `json:"views"`
	Rating      float64   `json:"rating"`
	RatingCount int       `json:"rating_count"`
	UserRating  *int      `json:"user_rating,omitempty"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToArticleDTO(a *knowledge.Article) *ArticleDTO {
	if a == nil {
		return nil
	}

	return &ArticleDTO{
		ID:          a.ID(),
		Title:       a.Title(),
		Content:     a.Content(),
		Excerpt:     a.Excerpt(),
		Category:    a.Category(),
		Tags:        a.Tags(),
		AuthorID:    a.AuthorID(),
		Views:       a.Views(),
		Rating:      a.AverageRating(),
		RatingCount: a.RatingCount(),
		IsPublished: a.IsPublished(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

func ToArticleDTOs(articles []*knowledge.Article) []*ArticleDTO {
	return mapper.MapSlice(articles, ToArticleDTO)
}
