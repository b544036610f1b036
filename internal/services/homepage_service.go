package services

import (
	"context"
	"log"

	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
)

type HomepageServiceInterface interface {
	Build(ctx context.Context, city string) *response_models.HomepageResponse
}

type HomepageService struct {
	destinations repositories.DestinationRepository
	hotels       repositories.HotelRepository
	activities   repositories.ActivityRepository
	weather      WeatherProviderInterface
	restaurants  RestaurantRecommenderInterface
}

func NewHomepageService(
	destinations repositories.DestinationRepository,
	hotels repositories.HotelRepository,
	activities repositories.ActivityRepository,
	weather WeatherProviderInterface,
	restaurants RestaurantRecommenderInterface,
) HomepageServiceInterface {
	return &HomepageService{
		destinations: destinations,
		hotels:       hotels,
		activities:   activities,
		weather:      weather,
		restaurants:  restaurants,
	}
}

// Build assembles the landing-page payload. Each section degrades on
// its own; a failed lookup leaves that section empty and the rest
// intact.
func (s *HomepageService) Build(ctx context.Context, city string) *response_models.HomepageResponse {
	if city == "" {
		city = "Delhi"
	}

	resp := &response_models.HomepageResponse{
		Flights: demoFlights(city),
		Trains:  demoTrains(city),
	}

	trending, err := s.destinations.ListTrending(ctx)
	if err != nil {
		log.Printf("Error loading trending destinations: %v", err)
	} else {
		resp.TrendingDestinations = trending
	}

	resp.Weather = weatherUnavailable
	if w, err := s.weather.Current(ctx, city); err != nil {
		log.Printf("Error loading homepage weather for %s: %v", city, err)
	} else {
		resp.Weather = w.Description
	}

	if hotels, err := s.hotels.List(ctx, city); err != nil {
		log.Printf("Error loading hotels for %s: %v", city, err)
	} else {
		resp.Hotels = hotels
	}

	if restaurants, err := s.restaurants.Recommend(ctx, city, "any"); err != nil {
		log.Printf("Error loading restaurant suggestions for %s: %v", city, err)
	} else {
		resp.Restaurants = restaurants
	}

	if activities, err := s.activities.List(ctx, city); err != nil {
		log.Printf("Error loading activities for %s: %v", city, err)
	} else {
		resp.Activities = activities
	}

	return resp
}

// Transport options are static showcase data until a live inventory
// feed is wired in.
func demoFlights(city string) []response_models.TransportOption {
	return []response_models.TransportOption{
		{Name: "IndiGo 6E-204", From: "Mumbai", To: city, Departure: "08:30", Price: 4500},
		{Name: "Air India AI-101", From: "Bengaluru", To: city, Departure: "11:15", Price: 5200},
	}
}

func demoTrains(city string) []response_models.TransportOption {
	return []response_models.TransportOption{
		{Name: "Rajdhani Express", From: "Mumbai", To: city, Departure: "16:00", Price: 1800},
		{Name: "Shatabdi Express", From: "Chandigarh", To: city, Departure: "07:20", Price: 950},
	}
}
