package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type FlightRepository interface {
	List(ctx context.Context, source, destination string, date *time.Time) ([]db_models.Flight, error)
	GetByID(ctx context.Context, id string) (*db_models.Flight, error)
	Insert(ctx context.Context, flight *db_models.Flight) error
	Update(ctx context.Context, flight *db_models.Flight) error
	Delete(ctx context.Context, id string) error
}

type flightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) FlightRepository {
	return &flightRepository{db: db}
}

func (r *flightRepository) List(ctx context.Context, source, destination string, date *time.Time) ([]db_models.Flight, error) {
	var flights []db_models.Flight
	q := r.db.WithContext(ctx)
	if source != "" {
		q = q.Where("source ILIKE ?", "%"+source+"%")
	}
	if destination != "" {
		q = q.Where("destination ILIKE ?", "%"+destination+"%")
	}
	if date != nil {
		dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		q = q.Where("departure_time >= ? AND departure_time < ?", dayStart, dayStart.Add(24*time.Hour))
	}
	if err := q.Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *flightRepository) GetByID(ctx context.Context, id string) (*db_models.Flight, error) {
	var flight db_models.Flight
	err := r.db.WithContext(ctx).First(&flight, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepository) Insert(ctx context.Context, flight *db_models.Flight) error {
	return r.db.WithContext(ctx).Create(flight).Error
}

func (r *flightRepository) Update(ctx context.Context, flight *db_models.Flight) error {
	return r.db.WithContext(ctx).Save(flight).Error
}

func (r *flightRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Flight{}, "id = ?", id).Error
}
