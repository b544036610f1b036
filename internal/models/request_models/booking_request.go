package request_models

type CreateBookingRequest struct {
	BookingType string `json:"booking_type" binding:"required"`
	HotelID     string `json:"hotel_id,omitempty"`
	FlightID    string `json:"flight_id,omitempty"`
	ActivityID  string `json:"activity_id,omitempty"`
	StartDate   string `json:"start_date" binding:"required"` // "2006-01-02"
	EndDate     string `json:"end_date" binding:"required"`
}

type CreateReviewRequest struct {
	DestinationID string `json:"destination_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment"`
}
