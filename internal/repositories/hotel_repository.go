package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type HotelRepository interface {
	List(ctx context.Context, destinationName string) ([]db_models.Hotel, error)
	GetByID(ctx context.Context, id string) (*db_models.Hotel, error)
	Insert(ctx context.Context, hotel *db_models.Hotel) error
	Update(ctx context.Context, hotel *db_models.Hotel) error
	Delete(ctx context.Context, id string) error
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) List(ctx context.Context, destinationName string) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	q := r.db.WithContext(ctx).Preload("Destination")
	if destinationName != "" {
		q = q.Joins("JOIN destinations ON destinations.id = hotels.destination_id").
			Where("destinations.name ILIKE ?", "%"+destinationName+"%")
	}
	if err := q.Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) GetByID(ctx context.Context, id string) (*db_models.Hotel, error) {
	var hotel db_models.Hotel
	err := r.db.WithContext(ctx).Preload("Destination").First(&hotel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) Insert(ctx context.Context, hotel *db_models.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) Update(ctx context.Context, hotel *db_models.Hotel) error {
	return r.db.WithContext(ctx).Save(hotel).Error
}

func (r *hotelRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Hotel{}, "id = ?", id).Error
}
