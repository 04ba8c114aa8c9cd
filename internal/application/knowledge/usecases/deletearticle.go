package usecases

import (
	"context"

	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteArticleCommand struct {
	ArticleID uint
}

type DeleteArticleUseCase struct {
	articleRepo knowledge.Repository
	ratingRepo  knowledge.RatingRepository
	logger      logger.Interface
}

func NewDeleteArticleUseCase(
	articleRepo knowledge.Repository,
	ratingRepo knowledge.RatingRepository,
	logger logger.Interface,
) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{
		articleRepo: articleRepo,
		ratingRepo:  ratingRepo,
		logger:      logger,
	}
}

func (uc *DeleteArticleUseCase) Execute(ctx context.Context, cmd DeleteArticleCommand) error {
	uc.logger.Infow("executing delete article use case", "article_id", cmd.ArticleID)

	if cmd.ArticleID == 0 {
		return errors.NewValidationError("article ID is required")
	}

	if _, err := uc.articleRepo.GetByID(ctx, cmd.ArticleID); err != nil {
		return err
	}

	if err := uc.ratingRepo.DeleteByArticleID(ctx, cmd.ArticleID); err != nil {
		uc.logger.Errorw("failed to delete article ratings", "error", err, "article_id", cmd.ArticleID)
		return err
	}
	if err := uc.articleRepo.Delete(ctx, cmd.ArticleID); err != nil {
		uc.logger.Errorw("failed to delete article", "error", err, "article_id", cmd.ArticleID)
		return err
	}

	uc.logger.Infow("article deleted successfully", "article_id", cmd.ArticleID)
	return nil
}
