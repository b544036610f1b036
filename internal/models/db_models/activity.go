package db_models

import "github.com/google/uuid"

type Activity struct {
	BaseModel
	Name            string       `json:"name"`
	DestinationID   uuid.UUID    `json:"destination_id"`
	Destination     *Destination `json:"destination,omitempty"`
	Description     string       `json:"description"`
	DurationMinutes int          `json:"duration_minutes"`
	Price           float64      `json:"price"`
	ImageURL        string       `json:"image_url"`
	MaxParticipants int          `json:"max_participants"`
	AvailableSlots  int          `json:"available_slots"`
}
