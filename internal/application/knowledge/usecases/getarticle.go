package usecases

import (
	"context"

	"helpdesk/internal/application/knowledge/dto"
	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type GetArticleQuery struct {
	ArticleID  uint
	RenderHTML bool
	// CountView bumps the view counter, used by the public read path.
	CountView bool
	// UserID resolves the requesting user's own rating when set.
	UserID uint
}

// GetArticleUseCase reads a single article with its projection: author
// display name, rendered HTML, and the requester's own rating.
type GetArticleUseCase struct {
	articleRepo knowledge.Repository
	ratingRepo  knowledge.RatingRepository
	userRepo    user.Repository
	markdownSvc markdown.Service
	logger      logger.Interface
}

func NewGetArticleUseCase(
	articleRepo knowledge.Repository,
	ratingRepo knowledge.RatingRepository,
	userRepo user.Repository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetArticleUseCase {
	return &GetArticleUseCase{
		articleRepo: articleRepo,
		ratingRepo:  ratingRepo,
		userRepo:    userRepo,
		markdownSvc: markdownSvc,
		logger:      logger,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error) {
	if query.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	existing, err := uc.articleRepo.GetByID(ctx, query.ArticleID)
	if err != nil {
		return nil, err
	}

	if query.CountView {
		existing.IncrementViews()
		if err := uc.articleRepo.Update(ctx, existing); err != nil {
			uc.logger.Warnw("failed to persist view count", "error", err, "article_id", query.ArticleID)
		}
	}

	result := dto.ToArticleDTO(existing)
	result.AuthorName = uc.resolveAuthorName(ctx, existing.AuthorID())
	result.UserRating = uc.resolveUserRating(ctx, query.ArticleID, query.UserID)

	if query.RenderHTML && uc.markdownSvc != nil {
		rendered, err := uc.markdownSvc.ToHTMLSanitized(existing.Content())
		if err != nil {
			uc.logger.Warnw("failed to render article markdown", "error", err, "article_id", query.ArticleID)
		} else {
			result.ContentHTML = rendered
		}
	}

	return result, nil
}

// Name resolution is best effort; a missing author never fails the read.
func (uc *GetArticleUseCase) resolveAuthorName(ctx context.Context, authorID *uint) *string {
	if authorID == nil || uc.userRepo == nil {
		return nil
	}

	author, err := uc.userRepo.GetByID(ctx, *authorID)
	if err != nil {
		uc.logger.Warnw("failed to resolve article author name", "error", err, "author_id", *authorID)
		return nil
	}

	name := author.FullName()
	return &name
}

func (uc *GetArticleUseCase) resolveUserRating(ctx context.Context, articleID, userID uint) *int {
	if userID == 0 || uc.ratingRepo == nil {
		return nil
	}

	rating, err := uc.ratingRepo.GetByArticleAndUser(ctx, articleID, userID)
	if err != nil || rating == nil {
		return nil
	}

	value := rating.Value()
	return &value
}
