package response_models

import "tripmate/internal/models/db_models"

type TransportOption struct {
	Name      string  `json:"name"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Departure string  `json:"departure"`
	Price     float64 `json:"price"`
}

type HomepageResponse struct {
	TrendingDestinations []db_models.Destination `json:"trending_destinations"`
	Weather              string                  `json:"weather"`
	Hotels               []db_models.Hotel       `json:"hotels"`
	Restaurants          []string                `json:"restaurants"`
	Flights              []TransportOption       `json:"flights"`
	Trains               []TransportOption       `json:"trains"`
	Activities           []db_models.Activity    `json:"activities"`
}
