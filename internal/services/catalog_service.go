package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type HotelServiceInterface interface {
	List(ctx context.Context, destinationName string) ([]db_models.Hotel, error)
	Get(ctx context.Context, id string) (*db_models.Hotel, error)
	Create(ctx context.Context, req request_models.HotelRequest) (*db_models.Hotel, error)
	Update(ctx context.Context, id string, req request_models.HotelRequest) (*db_models.Hotel, error)
	Delete(ctx context.Context, id string) error
}

type FlightServiceInterface interface {
	Search(ctx context.Context, source, destination, date string) ([]db_models.Flight, error)
	Get(ctx context.Context, id string) (*db_models.Flight, error)
	Create(ctx context.Context, req request_models.FlightRequest) (*db_models.Flight, error)
	Delete(ctx context.Context, id string) error
}

type ActivityServiceInterface interface {
	List(ctx context.Context, destinationName string) ([]db_models.Activity, error)
	Get(ctx context.Context, id string) (*db_models.Activity, error)
	Create(ctx context.Context, req request_models.ActivityRequest) (*db_models.Activity, error)
	Delete(ctx context.Context, id string) error
}

type HotelService struct {
	hotels repositories.HotelRepository
}

func NewHotelService(hotels repositories.HotelRepository) HotelServiceInterface {
	return &HotelService{hotels: hotels}
}

func (s *HotelService) List(ctx context.Context, destinationName string) ([]db_models.Hotel, error) {
	hotels, err := s.hotels.List(ctx, destinationName)
	if err != nil {
		log.Printf("Error listing hotels: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return hotels, nil
}

func (s *HotelService) Get(ctx context.Context, id string) (*db_models.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if hotel == nil {
		return nil, utils.ErrRecordNotFound
	}
	return hotel, nil
}

func (s *HotelService) Create(ctx context.Context, req request_models.HotelRequest) (*db_models.Hotel, error) {
	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	hotel := &db_models.Hotel{
		Name:           req.Name,
		DestinationID:  destinationID,
		Description:    req.Description,
		PricePerNight:  req.PricePerNight,
		Rating:         req.Rating,
		ImageURL:       req.ImageURL,
		Amenities:      pq.StringArray(req.Amenities),
		AvailableRooms: req.AvailableRooms,
	}
	if err := s.hotels.Insert(ctx, hotel); err != nil {
		log.Printf("Error creating hotel %s: %v", req.Name, err)
		return nil, utils.ErrDatabaseError
	}
	return hotel, nil
}

func (s *HotelService) Update(ctx context.Context, id string, req request_models.HotelRequest) (*db_models.Hotel, error) {
	hotel, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	hotel.Name = req.Name
	hotel.Description = req.Description
	hotel.PricePerNight = req.PricePerNight
	hotel.Rating = req.Rating
	hotel.ImageURL = req.ImageURL
	hotel.Amenities = pq.StringArray(req.Amenities)
	hotel.AvailableRooms = req.AvailableRooms

	if err := s.hotels.Update(ctx, hotel); err != nil {
		log.Printf("Error updating hotel %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	return hotel, nil
}

func (s *HotelService) Delete(ctx context.Context, id string) error {
	if err := s.hotels.Delete(ctx, id); err != nil {
		log.Printf("Error deleting hotel %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

type FlightService struct {
	flights repositories.FlightRepository
}

func NewFlightService(flights repositories.FlightRepository) FlightServiceInterface {
	return &FlightService{flights: flights}
}

func (s *FlightService) Search(ctx context.Context, source, destination, date string) ([]db_models.Flight, error) {
	var day *time.Time
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		day = &parsed
	}
	flights, err := s.flights.List(ctx, source, destination, day)
	if err != nil {
		log.Printf("Error searching flights: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return flights, nil
}

func (s *FlightService) Get(ctx context.Context, id string) (*db_models.Flight, error) {
	flight, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if flight == nil {
		return nil, utils.ErrRecordNotFound
	}
	return flight, nil
}

func (s *FlightService) Create(ctx context.Context, req request_models.FlightRequest) (*db_models.Flight, error) {
	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	arrival, err := time.Parse(time.RFC3339, req.ArrivalTime)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	flight := &db_models.Flight{
		FlightNumber:   req.FlightNumber,
		Airline:        req.Airline,
		Source:         req.Source,
		Destination:    req.Destination,
		DepartureTime:  departure,
		ArrivalTime:    arrival,
		Price:          req.Price,
		AvailableSeats: req.AvailableSeats,
	}
	if err := s.flights.Insert(ctx, flight); err != nil {
		log.Printf("Error creating flight %s: %v", req.FlightNumber, err)
		return nil, utils.ErrDatabaseError
	}
	return flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id string) error {
	if err := s.flights.Delete(ctx, id); err != nil {
		log.Printf("Error deleting flight %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

type ActivityService struct {
	activities repositories.ActivityRepository
}

func NewActivityService(activities repositories.ActivityRepository) ActivityServiceInterface {
	return &ActivityService{activities: activities}
}

func (s *ActivityService) List(ctx context.Context, destinationName string) ([]db_models.Activity, error) {
	activities, err := s.activities.List(ctx, destinationName)
	if err != nil {
		log.Printf("Error listing activities: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return activities, nil
}

func (s *ActivityService) Get(ctx context.Context, id string) (*db_models.Activity, error) {
	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrRecordNotFound
	}
	return activity, nil
}

func (s *ActivityService) Create(ctx context.Context, req request_models.ActivityRequest) (*db_models.Activity, error) {
	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	activity := &db_models.Activity{
		Name:            req.Name,
		DestinationID:   destinationID,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
		MaxParticipants: req.MaxParticipants,
		AvailableSlots:  req.AvailableSlots,
	}
	if err := s.activities.Insert(ctx, activity); err != nil {
		log.Printf("Error creating activity %s: %v", req.Name, err)
		return nil, utils.ErrDatabaseError
	}
	return activity, nil
}

func (s *ActivityService) Delete(ctx context.Context, id string) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		log.Printf("Error deleting activity %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}
