package usecases

import (
	"context"

	"helpdesk/internal/application/knowledge/dto"
	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/shared/logger"
)

type ListArticlesQuery struct {
	Category  string
	Search    string
	Published *bool
	Page      int
	PageSize  int
}

type ListArticlesResult struct {
	Articles []*dto.ArticleDTO
	Total    int64
	Page     int
	PageSize int
}

type ListArticlesUseCase struct {
	articleRepo knowledge.Repository
	logger      logger.Interface
}

func NewListArticlesUseCase(
	articleRepo knowledge.Repository,
	logger logger.Interface,
) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context, query ListArticlesQuery) (*ListArticlesResult, error) {
	filter := knowledge.Filter{
		Category:  query.Category,
		Search:    query.Search,
		Published: query.Published,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	articles, total, err := uc.articleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list articles", "error", err)
		return nil, err
	}

	return &ListArticlesResult{
		Articles: dto.ToArticleDTOs(articles),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
