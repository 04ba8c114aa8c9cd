package usecases

import (
	"context"

	"helpdesk/internal/application/knowledge/dto"
)

type CreateArticleExecutor interface {
	Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleDTO, error)
}

type UpdateArticleExecutor interface {
	Execute(ctx context.Context, cmd UpdateArticleCommand) (*dto.ArticleDTO, error)
}

type DeleteArticleExecutor interface {
	Execute(ctx context.Context, cmd DeleteArticleCommand) error
}

type GetArticleExecutor interface {
	Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error)
}

type ListArticlesExecutor interface {
	Execute(ctx context.Context, query ListArticlesQuery) (*ListArticlesResult, error)
}

type RateArticleExecutor interface {
	Execute(ctx context.Context, cmd RateArticleCommand) (*dto.ArticleDTO, error)
}
