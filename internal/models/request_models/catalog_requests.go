package request_models

type DestinationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ImageURL    string `json:"image_url"`
	IsTrending  bool   `json:"is_trending"`
}

type HotelRequest struct {
	Name           string   `json:"name" binding:"required"`
	DestinationID  string   `json:"destination_id" binding:"required"`
	Description    string   `json:"description"`
	PricePerNight  float64  `json:"price_per_night"`
	Rating         float64  `json:"rating"`
	ImageURL       string   `json:"image_url"`
	Amenities      []string `json:"amenities"`
	AvailableRooms int      `json:"available_rooms"`
}

type FlightRequest struct {
	FlightNumber   string  `json:"flight_number" binding:"required"`
	Airline        string  `json:"airline"`
	Source         string  `json:"source" binding:"required"`
	Destination    string  `json:"destination" binding:"required"`
	DepartureTime  string  `json:"departure_time"` // RFC 3339
	ArrivalTime    string  `json:"arrival_time"`
	Price          float64 `json:"price"`
	AvailableSeats int     `json:"available_seats"`
}

type ActivityRequest struct {
	Name            string  `json:"name" binding:"required"`
	DestinationID   string  `json:"destination_id" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	ImageURL        string  `json:"image_url"`
	MaxParticipants int     `json:"max_participants"`
	AvailableSlots  int     `json:"available_slots"`
}

type SemanticSearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}
