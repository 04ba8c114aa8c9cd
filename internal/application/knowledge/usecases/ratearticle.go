package usecases

import (
	"context"

	"helpdesk/internal/application/knowledge/dto"
	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RateArticleCommand struct {
	ArticleID uint
	UserID    uint
	Rating    int
}

// RateArticleUseCase folds a user's score into the article's aggregate.
// The per-user rating row decides the path: a repeat voter's old score is
// swapped out of the sum and the voter count stays put, so no amount of
// re-voting can push the average outside the 1..5 vote range.
type RateArticleUseCase struct {
	articleRepo knowledge.Repository
	ratingRepo  knowledge.RatingRepository
	logger      logger.Interface
}

func NewRateArticleUseCase(
	articleRepo knowledge.Repository,
	ratingRepo knowledge.RatingRepository,
	logger logger.Interface,
) *RateArticleUseCase {
	return &RateArticleUseCase{
		articleRepo: articleRepo,
		ratingRepo:  ratingRepo,
		logger:      logger,
	}
}

func (uc *RateArticleUseCase) Execute(ctx context.Context, cmd RateArticleCommand) (*dto.ArticleDTO, error) {
	uc.logger.Infow("executing rate article use case", "article_id", cmd.ArticleID, "user_id", cmd.UserID, "rating", cmd.Rating)

	if cmd.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, errors.NewValidationError("rating must be between 1 and 5")
	}

	article, err := uc.articleRepo.GetByID(ctx, cmd.ArticleID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.ratingRepo.GetByArticleAndUser(ctx, cmd.ArticleID, cmd.UserID)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to look up existing article rating", "error", err, "article_id", cmd.ArticleID)
		return nil, err
	}

	if existing != nil {
		previous := existing.Value()
		if err := article.ApplyRating(&previous, cmd.Rating); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := existing.UpdateValue(cmd.Rating); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.ratingRepo.Update(ctx, existing); err != nil {
			uc.logger.Errorw("failed to update article rating", "error", err, "article_id", cmd.ArticleID)
			return nil, err
		}
	} else {
		if err := article.ApplyRating(nil, cmd.Rating); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		rating, err := knowledge.NewArticleRating(cmd.ArticleID, cmd.UserID, cmd.Rating)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.ratingRepo.Save(ctx, rating); err != nil {
			uc.logger.Errorw("failed to save article rating", "error", err, "article_id", cmd.ArticleID)
			return nil, err
		}
	}

	if err := uc.articleRepo.Update(ctx, article); err != nil {
		uc.logger.Errorw("failed to update article aggregate", "error", err, "article_id", cmd.ArticleID)
		return nil, err
	}

	uc.logger.Infow("article rated", "article_id", cmd.ArticleID, "average", article.AverageRating())

	return dto.ToArticleDTO(article), nil
}
