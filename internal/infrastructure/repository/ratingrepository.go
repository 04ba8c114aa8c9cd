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

type RatingRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *RatingRepository) Save(ctx context.Context, rating *ticket.Rating) error {
	model := r.mapper.RatingToModel(rating)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("ticket already rated")
		}
		return fmt.Errorf("failed to save rating: %w", err)
	}

	return rating.SetID(model.ID)
}

func (r *RatingRepository) Update(ctx context.Context, rating *ticket.Rating) error {
	model := r.mapper.RatingToModel(rating)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RatingModel{}).
		Where("ticket_code = ?", model.TicketCode).
		Select("user_id", "rating", "feedback").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("rating not found")
	}

	return nil
}

func (r *RatingRepository) GetByTicketCode(ctx context.Context, code string) (*ticket.Rating, error) {
	var model models.RatingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("rating not found")
		}
		return nil, fmt.Errorf("failed to find rating: %w", err)
	}

	return r.mapper.RatingToDomain(&model)
}

func (r *RatingRepository) DeleteByTicketCode(ctx context.Context, code string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_code = ?", code).Delete(&models.RatingModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	return nil
}
