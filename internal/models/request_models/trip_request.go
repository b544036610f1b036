package request_models

// TripRequest is the finalized set of answers a trip plan is
// synthesized from, either collected turn by turn by the chatbot or
// posted whole to the direct recommendation endpoint.
type TripRequest struct {
	Destination     string   `json:"destination"`
	Budget          float64  `json:"budget"`
	Days            int      `json:"days"`
	Transportation  string   `json:"transportation"`
	HotelPreference string   `json:"hotel_preference"`
	FoodPreference  string   `json:"food_preference"`
	Activities      []string `json:"activities"`
}

type ItineraryRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
}
