package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type ArticleRatingRepository struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
}

func NewArticleRatingRepository(db *gorm.DB) *ArticleRatingRepository {
	return &ArticleRatingRepository{
		db:     db,
		mapper: mappers.NewArticleMapper(),
	}
}

func (r *ArticleRatingRepository) Save(ctx context.Context, rating *knowledge.ArticleRating) error {
	model := r.mapper.RatingToModel(rating)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("article already rated by this user")
		}
		return fmt.Errorf("failed to save article rating: %w", err)
	}

	return rating.SetID(model.ID)
}

func (r *ArticleRatingRepository) Update(ctx context.Context, rating *knowledge.ArticleRating) error {
	model := r.mapper.RatingToModel(rating)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ArticleRatingModel{}).
		Where("article_id = ? AND user_id = ?", model.ArticleID, model.UserID).
		Select("value").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update article rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("article rating not found")
	}

	return nil
}

func (r *ArticleRatingRepository) GetByArticleAndUser(ctx context.Context, articleID, userID uint) (*knowledge.ArticleRating, error) {
	var model models.ArticleRatingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("article_id = ? AND user_id = ?", articleID, userID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("article rating not found")
		}
		return nil, fmt.Errorf("failed to find article rating: %w", err)
	}

	return r.mapper.RatingToDomain(&model)
}

func (r *ArticleRatingRepository) DeleteByArticleID(ctx context.Context, articleID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleRatingModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete article ratings: %w", err)
	}
	return nil
}
