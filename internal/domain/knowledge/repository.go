package knowledge

import "context"

// Filter narrows article listings. Zero values mean no constraint.
type Filter struct {
	Category  string
	Search    string
	Published *bool
	Page      int
	PageSize  int
}

// Repository defines persistence operations for articles.
type Repository interface {
	Save(ctx context.Context, article *Article) error
	Update(ctx context.Context, article *Article) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Article, error)
	List(ctx context.Context, filter Filter) ([]*Article, int64, error)
}

// RatingRepository tracks individual user scores for articles.
type RatingRepository interface {
	Save(ctx context.Context, rating *ArticleRating) error
	Update(ctx context.Context, rating *ArticleRating) error
	GetByArticleAndUser(ctx context.Context, articleID, userID uint) (*ArticleRating, error)
	DeleteByArticleID(ctx context.Context, articleID uint) error
}
