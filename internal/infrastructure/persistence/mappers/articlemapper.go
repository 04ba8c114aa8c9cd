package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/mapper"
)

// ArticleMapper handles the conversion between knowledge base domain entities and persistence models.
type ArticleMapper interface {
	ToDomain(model *models.ArticleModel) (*knowledge.Article, error)
	ToModel(entity *knowledge.Article) (*models.ArticleModel, error)
	ToDomains(models []*models.ArticleModel) ([]*knowledge.Article, error)
	RatingToDomain(model *models.ArticleRatingModel) (*knowledge.ArticleRating, error)
	RatingToModel(entity *knowledge.ArticleRating) *models.ArticleRatingModel
}

type ArticleMapperImpl struct{}

func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{}
}

func (m *ArticleMapperImpl) ToDomain(model *models.ArticleModel) (*knowledge.Article, error) {
	if model == nil {
		return nil, nil
	}

	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal article tags (id=%d): %w", model.ID, err)
		}
	}

	return knowledge.ReconstructArticle(
		model.ID,
		model.Title,
		model.Content,
		model.Excerpt,
		model.Category,
		tags,
		model.AuthorID,
		model.Views,
		model.RatingSum,
		model.RatingCount,
		model.IsPublished,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *ArticleMapperImpl) ToModel(entity *knowledge.Article) (*models.ArticleModel, error) {
	model := &models.ArticleModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Content:     entity.Content(),
		Excerpt:     entity.Excerpt(),
		Category:    entity.Category(),
		AuthorID:    entity.AuthorID(),
		Views:       entity.Views(),
		RatingSum:   entity.RatingSum(),
		RatingCount: entity.RatingCount(),
		IsPublished: entity.IsPublished(),
		CreatedAt:   entity.CreatedAt().UnixMilli(),
		UpdatedAt:   entity.UpdatedAt().UnixMilli(),
	}

	if tags := entity.Tags(); len(tags) > 0 {
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal article tags (id=%d): %w", entity.ID(), err)
		}
		model.Tags = datatypes.JSON(tagsJSON)
	}

	return model, nil
}

func (m *ArticleMapperImpl) ToDomains(articleModels []*models.ArticleModel) ([]*knowledge.Article, error) {
	return mapper.MapSliceWithError(articleModels, m.ToDomain)
}

func (m *ArticleMapperImpl) RatingToDomain(model *models.ArticleRatingModel) (*knowledge.ArticleRating, error) {
	return knowledge.ReconstructArticleRating(
		model.ID,
		model.ArticleID,
		model.UserID,
		model.Value,
		millisToTime(model.CreatedAt),
	)
}

func (m *ArticleMapperImpl) RatingToModel(entity *knowledge.ArticleRating) *models.ArticleRatingModel {
	return &models.ArticleRatingModel{
		ID:        entity.ID(),
		ArticleID: entity.ArticleID(),
		UserID:    entity.UserID(),
		Value:     entity.Value(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
	}
}
