package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, commentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListByTicketCode(ctx context.Context, code string) ([]*ticket.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var commentModels []*models.CommentModel
	if err := tx.
		Where("ticket_code = ?", code).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for _, model := range commentModels {
		c, err := r.mapper.CommentToDomain(model)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.CommentModel{}, commentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepository) DeleteByTicketCode(ctx context.Context, code string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_code = ?", code).Delete(&models.CommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	return nil
}
