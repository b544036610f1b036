package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Hotel struct {
	BaseModel
	Name          string         `json:"name"`
	DestinationID uuid.UUID      `json:"destination_id"`
	Destination   *Destination   `json:"destination,omitempty"`
	Description   string         `json:"description"`
	PricePerNight float64        `json:"price_per_night"`
	Rating        float64        `json:"rating"`
	ImageURL      string         `json:"image_url"`
	Amenities     pq.StringArray `gorm:"type:text[]" json:"amenities"`
	AvailableRooms int           `json:"available_rooms"`
}
