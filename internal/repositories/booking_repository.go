package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type BookingRepository interface {
	ListByAccount(ctx context.Context, accountID string) ([]db_models.Booking, error)
	GetByIDForAccount(ctx context.Context, id, accountID string) (*db_models.Booking, error)
	Insert(ctx context.Context, booking *db_models.Booking) error
	Update(ctx context.Context, booking *db_models.Booking) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Preload("Hotel").Preload("Flight").Preload("Activity").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) GetByIDForAccount(ctx context.Context, id, accountID string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ? AND account_id = ?", id, accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) Update(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}
