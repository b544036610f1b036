package repositories

import (
	"context"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type ReviewRepository interface {
	ListByDestination(ctx context.Context, destinationID string) ([]db_models.Review, error)
	Insert(ctx context.Context, review *db_models.Review) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) ListByDestination(ctx context.Context, destinationID string) ([]db_models.Review, error) {
	var reviews []db_models.Review
	q := r.db.WithContext(ctx).Preload("Account")
	if destinationID != "" {
		q = q.Where("destination_id = ?", destinationID)
	}
	if err := q.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Insert(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}
