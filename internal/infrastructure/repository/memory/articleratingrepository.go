package memory

import (
	"context"
	"sync"

	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/shared/errors"
)

type ratingKey struct {
	articleID uint
	userID    uint
}

type ArticleRatingRepository struct {
	mu     sync.RWMutex
	byKey  map[ratingKey]*knowledge.ArticleRating
	nextID uint
}

func NewArticleRatingRepository() *ArticleRatingRepository {
	return &ArticleRatingRepository{
		byKey:  make(map[ratingKey]*knowledge.ArticleRating),
		nextID: 1,
	}
}

func (r *ArticleRatingRepository) Save(ctx context.Context, rating *knowledge.ArticleRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ratingKey{articleID: rating.ArticleID(), userID: rating.UserID()}
	if _, exists := r.byKey[key]; exists {
		return errors.NewConflictError("article already rated by this user")
	}

	if rating.ID() == 0 {
		if err := rating.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	} else if rating.ID() >= r.nextID {
		r.nextID = rating.ID() + 1
	}

	r.byKey[key] = rating
	return nil
}

func (r *ArticleRatingRepository) Update(ctx context.Context, rating *knowledge.ArticleRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ratingKey{articleID: rating.ArticleID(), userID: rating.UserID()}
	if _, exists := r.byKey[key]; !exists {
		return errors.NewNotFoundError("article rating not found")
	}

	r.byKey[key] = rating
	return nil
}

func (r *ArticleRatingRepository) GetByArticleAndUser(ctx context.Context, articleID, userID uint) (*knowledge.ArticleRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rating, exists := r.byKey[ratingKey{articleID: articleID, userID: userID}]
	if !exists {
		return nil, errors.NewNotFoundError("article rating not found")
	}
	return rating, nil
}

func (r *ArticleRatingRepository) DeleteByArticleID(ctx context.Context, articleID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.byKey {
		if key.articleID == articleID {
			delete(r.byKey, key)
		}
	}
	return nil
}
