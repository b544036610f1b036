package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type DestinationRepository interface {
	List(ctx context.Context, search string) ([]db_models.Destination, error)
	ListTrending(ctx context.Context) ([]db_models.Destination, error)
	GetByID(ctx context.Context, id string) (*db_models.Destination, error)
	Insert(ctx context.Context, destination *db_models.Destination) error
	Update(ctx context.Context, destination *db_models.Destination) error
	Delete(ctx context.Context, id string) error
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) List(ctx context.Context, search string) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	q := r.db.WithContext(ctx)
	if search != "" {
		q = q.Where("name ILIKE ? OR location ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if err := q.Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) ListTrending(ctx context.Context) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	if err := r.db.WithContext(ctx).Where("is_trending = ?", true).Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) Insert(ctx context.Context, destination *db_models.Destination) error {
	return r.db.WithContext(ctx).Create(destination).Error
}

func (r *destinationRepository) Update(ctx context.Context, destination *db_models.Destination) error {
	return r.db.WithContext(ctx).Save(destination).Error
}

func (r *destinationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Destination{}, "id = ?", id).Error
}
