package db_models

import (
	"github.com/google/uuid"
	"time"
)

const (
	BookingTypeHotel    = "hotel"
	BookingTypeFlight   = "flight"
	BookingTypeActivity = "activity"

	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	BaseModel
	AccountID   uuid.UUID  `json:"account_id"`
	BookingType string     `json:"booking_type"`
	HotelID     *uuid.UUID `json:"hotel_id,omitempty"`
	Hotel       *Hotel     `json:"hotel,omitempty"`
	FlightID    *uuid.UUID `json:"flight_id,omitempty"`
	Flight      *Flight    `json:"flight,omitempty"`
	ActivityID  *uuid.UUID `json:"activity_id,omitempty"`
	Activity    *Activity  `json:"activity,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	TotalPrice  float64    `json:"total_price"`
	Status      string     `json:"status"`
}
