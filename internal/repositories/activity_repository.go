package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type ActivityRepository interface {
	List(ctx context.Context, destinationName string) ([]db_models.Activity, error)
	GetByID(ctx context.Context, id string) (*db_models.Activity, error)
	Insert(ctx context.Context, activity *db_models.Activity) error
	Update(ctx context.Context, activity *db_models.Activity) error
	Delete(ctx context.Context, id string) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) List(ctx context.Context, destinationName string) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	q := r.db.WithContext(ctx).Preload("Destination")
	if destinationName != "" {
		q = q.Joins("JOIN destinations ON destinations.id = activities.destination_id").
			Where("destinations.name ILIKE ?", "%"+destinationName+"%")
	}
	if err := q.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).Preload("Destination").First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) Insert(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) Update(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Activity{}, "id = ?", id).Error
}
