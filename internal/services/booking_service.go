package services

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type BookingServiceInterface interface {
	Create(ctx context.Context, accountID string, req request_models.CreateBookingRequest) (*db_models.Booking, error)
	ListForAccount(ctx context.Context, accountID string) ([]db_models.Booking, error)
	Cancel(ctx context.Context, accountID, bookingID string) (*db_models.Booking, error)
}

type BookingService struct {
	bookings   repositories.BookingRepository
	hotels     repositories.HotelRepository
	flights    repositories.FlightRepository
	activities repositories.ActivityRepository
}

func NewBookingService(
	bookings repositories.BookingRepository,
	hotels repositories.HotelRepository,
	flights repositories.FlightRepository,
	activities repositories.ActivityRepository,
) BookingServiceInterface {
	return &BookingService{
		bookings:   bookings,
		hotels:     hotels,
		flights:    flights,
		activities: activities,
	}
}

func (s *BookingService) Create(ctx context.Context, accountID string, req request_models.CreateBookingRequest) (*db_models.Booking, error) {
	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidInput
	}

	booking := &db_models.Booking{
		AccountID:   accountUUID,
		BookingType: req.BookingType,
		StartDate:   start,
		EndDate:     end,
		Status:      db_models.BookingStatusConfirmed,
	}

	switch req.BookingType {
	case db_models.BookingTypeHotel:
		hotel, err := s.hotels.GetByID(ctx, req.HotelID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if hotel == nil {
			return nil, utils.ErrRecordNotFound
		}
		nights := math.Max(1, end.Sub(start).Hours()/24)
		booking.HotelID = &hotel.ID
		booking.TotalPrice = nights * hotel.PricePerNight

	case db_models.BookingTypeFlight:
		flight, err := s.flights.GetByID(ctx, req.FlightID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if flight == nil {
			return nil, utils.ErrRecordNotFound
		}
		booking.FlightID = &flight.ID
		booking.TotalPrice = flight.Price

	case db_models.BookingTypeActivity:
		activity, err := s.activities.GetByID(ctx, req.ActivityID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if activity == nil {
			return nil, utils.ErrRecordNotFound
		}
		booking.ActivityID = &activity.ID
		booking.TotalPrice = activity.Price

	default:
		return nil, utils.ErrInvalidInput
	}

	if err := s.bookings.Insert(ctx, booking); err != nil {
		log.Printf("Error creating booking for account %s: %v", accountID, err)
		return nil, utils.ErrDatabaseError
	}
	return booking, nil
}

func (s *BookingService) ListForAccount(ctx context.Context, accountID string) ([]db_models.Booking, error) {
	bookings, err := s.bookings.ListByAccount(ctx, accountID)
	if err != nil {
		log.Printf("Error listing bookings for account %s: %v", accountID, err)
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

func (s *BookingService) Cancel(ctx context.Context, accountID, bookingID string) (*db_models.Booking, error) {
	booking, err := s.bookings.GetByIDForAccount(ctx, bookingID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	if booking.Status == db_models.BookingStatusCancelled {
		return booking, nil
	}

	booking.Status = db_models.BookingStatusCancelled
	if err := s.bookings.Update(ctx, booking); err != nil {
		log.Printf("Error cancelling booking %s: %v", bookingID, err)
		return nil, utils.ErrDatabaseError
	}
	return booking, nil
}
