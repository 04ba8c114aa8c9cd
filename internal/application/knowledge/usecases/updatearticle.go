package usecases

import (
	"context"

	"helpdesk/internal/application/knowledge/dto"
	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UpdateArticleCommand carries a partial update; nil fields are untouched.
type UpdateArticleCommand struct {
	ArticleID   uint
	Title       *string
	Content     *string
	Excerpt     *string
	Category    *string
	Tags        []string
	IsPublished *bool
}

type UpdateArticleUseCase struct {
	articleRepo knowledge.Repository
	logger      logger.Interface
}

func NewUpdateArticleUseCase(
	articleRepo knowledge.Repository,
	logger logger.Interface,
) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *UpdateArticleUseCase) Execute(ctx context.Context, cmd UpdateArticleCommand) (*dto.ArticleDTO, error) {
	uc.logger.Infow("executing update article use case", "article_id", cmd.ArticleID)

	if cmd.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	existing, err := uc.articleRepo.GetByID(ctx, cmd.ArticleID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if err := existing.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Content != nil {
		if err := existing.UpdateContent(*cmd.Content); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Excerpt != nil {
		if err := existing.UpdateExcerpt(*cmd.Excerpt); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Category != nil {
		if err := existing.UpdateCategory(*cmd.Category); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Tags != nil {
		existing.UpdateTags(cmd.Tags)
	}
	if cmd.IsPublished != nil {
		if *cmd.IsPublished {
			existing.Publish()
		} else {
			existing.Unpublish()
		}
	}

	if err := uc.articleRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update article", "error", err, "article_id", cmd.ArticleID)
		return nil, err
	}

	return dto.ToArticleDTO(existing), nil
}
