package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/shared/errors"
)

type ArticleRepository struct {
	mu     sync.RWMutex
	byID   map[uint]*knowledge.Article
	nextID uint
}

func NewArticleRepository() *ArticleRepository {
	return &ArticleRepository{
		byID:   make(map[uint]*knowledge.Article),
		nextID: 1,
	}
}

func (r *ArticleRepository) Save(ctx context.Context, article *knowledge.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if article.ID() == 0 {
		if err := article.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	} else if article.ID() >= r.nextID {
		r.nextID = article.ID() + 1
	}

	r.byID[article.ID()] = article
	return nil
}

func (r *ArticleRepository) Update(ctx context.Context, article *knowledge.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[article.ID()]; !exists {
		return errors.NewNotFoundError("article not found")
	}

	r.byID[article.ID()] = article
	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return errors.NewNotFoundError("article not found")
	}

	delete(r.byID, id)
	return nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, id uint) (*knowledge.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	article, exists := r.byID[id]
	if !exists {
		return nil, errors.NewNotFoundError("article not found")
	}
	return article, nil
}

func (r *ArticleRepository) List(ctx context.Context, filter knowledge.Filter) ([]*knowledge.Article, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*knowledge.Article, 0, len(r.byID))
	for _, article := range r.byID {
		if !articleMatches(article, filter) {
			continue
		}
		matched = append(matched, article)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})

	total := int64(len(matched))

	if filter.PageSize > 0 {
		start := (filter.Page - 1) * filter.PageSize
		if start >= len(matched) {
			return []*knowledge.Article{}, total, nil
		}
		end := start + filter.PageSize
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}

	return matched, total, nil
}

func articleMatches(article *knowledge.Article, filter knowledge.Filter) bool {
	if filter.Category != "" && article.Category() != filter.Category {
		return false
	}
	if filter.Published != nil && article.IsPublished() != *filter.Published {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		title := strings.ToLower(article.Title())
		content := strings.ToLower(article.Content())
		if !strings.Contains(title, needle) && !strings.Contains(content, needle) {
			return false
		}
	}
	return true
}
