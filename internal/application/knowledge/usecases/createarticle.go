package usecases

import (
	"context"

	"helpdesk/internal/application/knowledge/dto"
	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateArticleCommand struct {
	Title    string
	Content  string
	Excerpt  string
	Category string
	Tags     []string
	AuthorID *uint
}

type CreateArticleUseCase struct {
	articleRepo knowledge.Repository
	logger      logger.Interface
}

func NewCreateArticleUseCase(
	articleRepo knowledge.Repository,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleDTO, error) {
	uc.logger.Infow("executing create article use case", "title", cmd.Title)

	article, err := knowledge.NewArticle(cmd.Title, cmd.Content, cmd.Excerpt, cmd.Category, cmd.Tags, cmd.AuthorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Save(ctx, article); err != nil {
		uc.logger.Errorw("failed to save article", "error", err)
		return nil, err
	}

	uc.logger.Infow("article created successfully", "article_id", article.ID())

	return dto.ToArticleDTO(article), nil
}
