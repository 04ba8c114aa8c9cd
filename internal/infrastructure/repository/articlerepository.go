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

type ArticleRepository struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{
		db:     db,
		mapper: mappers.NewArticleMapper(),
	}
}

func (r *ArticleRepository) Save(ctx context.Context, article *knowledge.Article) error {
	model, err := r.mapper.ToModel(article)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}

	return article.SetID(model.ID)
}

func (r *ArticleRepository) Update(ctx context.Context, article *knowledge.Article) error {
	model, err := r.mapper.ToModel(article)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ArticleModel{}).
		Where("id = ?", model.ID).
		Select("title", "content", "category", "tags", "author_id", "views",
			"rating_sum", "rating_count", "is_published", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("article not found")
	}

	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ArticleModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("article not found")
	}
	return nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, id uint) (*knowledge.Article, error) {
	var model models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ArticleRepository) List(ctx context.Context, filter knowledge.Filter) ([]*knowledge.Article, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ArticleModel{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}
	if filter.Published != nil {
		query = query.Where("is_published = ?", *filter.Published)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var articleModels []*models.ArticleModel
	if err := query.Find(&articleModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	articles, err := r.mapper.ToDomains(articleModels)
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}
