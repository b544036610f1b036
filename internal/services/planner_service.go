package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

const (
	weatherUnavailable  = "Weather information is unavailable."
	planGenerationError = "An error occurred while generating the trip plan."
)

type PlannerServiceInterface interface {
	Synthesize(ctx context.Context, req request_models.TripRequest) *response_models.TripPlan
	RenderPlanText(plan *response_models.TripPlan) string
	BuildSimpleItinerary(ctx context.Context, destination string, days int) map[string][]string
}

type PlannerService struct {
	places      PlacesProviderInterface
	weather     WeatherProviderInterface
	hotels      HotelRecommenderInterface
	restaurants RestaurantRecommenderInterface
	ai          utils.AIClientInterface
}

func NewPlannerService(
	places PlacesProviderInterface,
	weather WeatherProviderInterface,
	hotels HotelRecommenderInterface,
	restaurants RestaurantRecommenderInterface,
	ai utils.AIClientInterface,
) PlannerServiceInterface {
	return &PlannerService{
		places:      places,
		weather:     weather,
		hotels:      hotels,
		restaurants: restaurants,
		ai:          ai,
	}
}

// MinimumViableDataPolicy decides when structured synthesis has no
// usable provider data at all and must hand off to the language model.
type MinimumViableDataPolicy struct {
	AttractionsDegraded bool
	Hotels              int
	Restaurants         int
}

func (p MinimumViableDataPolicy) RequiresFallback() bool {
	return p.AttractionsDegraded && p.Hotels == 0 && p.Restaurants == 0
}

// Synthesize builds a structured day-wise plan from provider data.
// Every step degrades independently; only total data exhaustion routes
// to the language-model fallback. It always returns a plan: faults
// surface as text inside it, never as an error to the caller.
func (s *PlannerService) Synthesize(ctx context.Context, req request_models.TripRequest) *response_models.TripPlan {
	destination := strings.Title(strings.TrimSpace(req.Destination))
	if destination == "" {
		destination = "Unknown"
	}

	attractions, attractionsDegraded := s.resolveAttractions(ctx, destination)
	weather := s.resolveWeather(ctx, destination)

	hotels, err := s.hotels.Recommend(ctx, destination, req.HotelPreference)
	if err != nil {
		log.Printf("Error fetching hotel recommendations: %v", err)
		hotels = nil
	}
	restaurants, err := s.restaurants.Recommend(ctx, destination, req.FoodPreference)
	if err != nil {
		log.Printf("Error fetching restaurant recommendations: %v", err)
		restaurants = nil
	}

	policy := MinimumViableDataPolicy{
		AttractionsDegraded: attractionsDegraded,
		Hotels:              len(hotels),
		Restaurants:         len(restaurants),
	}
	if policy.RequiresFallback() {
		log.Printf("Insufficient provider data for %s, using narrative fallback", destination)
		return &response_models.TripPlan{
			Destination: destination,
			Days:        req.Days,
			Budget:      req.Budget,
			Narrative:   s.fallbackNarrative(ctx, req),
		}
	}

	plan := &response_models.TripPlan{
		Destination:    destination,
		Days:           req.Days,
		Budget:         req.Budget,
		Weather:        weather,
		Transportation: strings.Title(req.Transportation),
		Costs:          computeCosts(req.Budget, req.Transportation, req.HotelPreference),
		Itinerary:      buildItinerary(destination, req.Days, attractions, hotels, restaurants, req.Activities),
		Hotels:         topThree(hotels),
		Restaurants:    topThree(restaurants),
	}
	return plan
}

func (s *PlannerService) resolveAttractions(ctx context.Context, destination string) ([]string, bool) {
	places, err := s.places.Search(ctx, destination)
	if err != nil || len(places) == 0 {
		if err != nil {
			log.Printf("Error fetching attractions for %s: %v", destination, err)
		}
		return []string{fmt.Sprintf("Famous landmark in %s", destination)}, true
	}
	names := make([]string, 0, len(places))
	for _, p := range places {
		names = append(names, p.Name)
	}
	return names, false
}

func (s *PlannerService) resolveWeather(ctx context.Context, destination string) string {
	w, err := s.weather.Current(ctx, destination)
	if err != nil {
		log.Printf("Error fetching weather for %s: %v", destination, err)
		return weatherUnavailable
	}
	return fmt.Sprintf("Current weather in %s: %.0f°C, %s.",
		destination, w.Temperature, strings.Title(w.Description))
}

func (s *PlannerService) fallbackNarrative(ctx context.Context, req request_models.TripRequest) string {
	activities := "None"
	if len(req.Activities) > 0 {
		activities = strings.Join(req.Activities, ", ")
	}
	prompt := fmt.Sprintf(
		"Generate a detailed day-wise itinerary for a trip with these details:\n"+
			"- Destination: %s\n"+
			"- Duration: %d days\n"+
			"- Budget: %.0f INR\n"+
			"- Transportation: %s\n"+
			"- Hotel Preference: %s\n"+
			"- Food Preference: %s\n"+
			"- Specific Activities/Interests: %s\n\n"+
			"Provide a detailed, numbered, day-wise itinerary including suggestions for morning, afternoon, "+
			"and evening (attractions, dining, hotel check-ins, and leisure activities).",
		req.Destination, req.Days, req.Budget, req.Transportation,
		req.HotelPreference, req.FoodPreference, activities)

	narrative, err := s.ai.GeneratePlanNarrative(ctx, prompt)
	if err != nil {
		log.Printf("Narrative fallback failed: %v", err)
		return planGenerationError
	}
	return strings.TrimSpace(narrative)
}

// Cost ratios follow the house model: "any" transportation is assumed
// cheaper than a fixed mode, luxury and boutique stays take half the
// budget. Full precision is kept; rounding is display-only.
func computeCosts(budget float64, transportation, hotelPref string) response_models.CostBreakdown {
	transport := 0.20 * budget
	if strings.ToLower(transportation) == "any" {
		transport = 0.15 * budget
	}

	accommodation := 0.30 * budget
	switch strings.ToLower(hotelPref) {
	case "luxury", "boutique":
		accommodation = 0.50 * budget
	}

	food := 0.10 * budget
	activities := 0.10 * budget

	return response_models.CostBreakdown{
		Transportation: transport,
		Accommodation:  accommodation,
		Food:           food,
		Activities:     activities,
		Total:          transport + accommodation + food + activities,
	}
}

func buildItinerary(destination string, days int, attractions, hotels, restaurants, userActivities []string) []response_models.DayPlan {
	if days <= 0 {
		return nil
	}

	itinerary := make([]response_models.DayPlan, 0, days)
	for day := 1; day <= days; day++ {
		morning := fmt.Sprintf("Explore popular landmarks in %s", destination)
		if len(attractions) > 0 {
			morning = fmt.Sprintf("Visit %s.", attractions[(day-1)%len(attractions)])
		}

		lunchSpot := fmt.Sprintf("Local cuisine spot in %s", destination)
		if len(restaurants) > 0 {
			lunchSpot = restaurants[(day-1)%len(restaurants)]
		}
		var afternoon string
		if len(userActivities) > 0 {
			afternoon = fmt.Sprintf("Enjoy lunch at %s and then experience: %s.",
				lunchSpot, strings.Join(userActivities, ", "))
		} else {
			afternoon = fmt.Sprintf("Enjoy lunch at %s and visit a local market or museum.", lunchSpot)
		}

		hotel := fmt.Sprintf("your chosen hotel in %s", destination)
		if len(hotels) > 0 {
			hotel = hotels[0]
		}
		evening := fmt.Sprintf("Check in at %s, have dinner at a nearby restaurant, and relax.", hotel)

		itinerary = append(itinerary, response_models.DayPlan{
			Day:       day,
			Morning:   morning,
			Afternoon: afternoon,
			Evening:   evening,
		})
	}
	return itinerary
}

func topThree(items []string) []string {
	if len(items) > 3 {
		return items[:3]
	}
	return items
}

// RenderPlanText flattens a plan into the reply text the chatbot sends.
// A narrative plan is returned verbatim.
func (s *PlannerService) RenderPlanText(plan *response_models.TripPlan) string {
	if plan.Narrative != "" {
		return plan.Narrative
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Trip Plan for %s (Duration: %d days, Budget: INR %.0f):\n\n",
		plan.Destination, plan.Days, plan.Budget)
	fmt.Fprintf(&b, "Weather Info: %s\n\n", plan.Weather)
	fmt.Fprintf(&b, "Transportation: %s\n", plan.Transportation)
	b.WriteString("Estimated Cost Breakdown:\n")
	fmt.Fprintf(&b, "Transportation: INR %.0f\n", plan.Costs.Transportation)
	fmt.Fprintf(&b, "Accommodation: INR %.0f\n", plan.Costs.Accommodation)
	fmt.Fprintf(&b, "Food: INR %.0f\n", plan.Costs.Food)
	fmt.Fprintf(&b, "Activities: INR %.0f\n", plan.Costs.Activities)
	fmt.Fprintf(&b, "Total: INR %.0f\n\n", plan.Costs.Total)

	b.WriteString("Detailed Itinerary:\n")
	for _, day := range plan.Itinerary {
		fmt.Fprintf(&b, "Day %d:\n", day.Day)
		fmt.Fprintf(&b, "  Morning: %s\n", day.Morning)
		fmt.Fprintf(&b, "  Afternoon: %s\n", day.Afternoon)
		fmt.Fprintf(&b, "  Evening: %s\n", day.Evening)
		b.WriteString("\n")
	}

	hotels := "No hotel data available"
	if len(plan.Hotels) > 0 {
		hotels = strings.Join(plan.Hotels, ", ")
	}
	restaurants := "No restaurant data available"
	if len(plan.Restaurants) > 0 {
		restaurants = strings.Join(plan.Restaurants, ", ")
	}
	fmt.Fprintf(&b, "Recommended Hotels: %s\n", hotels)
	fmt.Fprintf(&b, "Recommended Restaurants: %s\n\n", restaurants)
	b.WriteString("Enjoy your trip!")

	return b.String()
}

// BuildSimpleItinerary backs the lightweight itinerary endpoint: a
// day-keyed listing driven only by attraction rotation.
func (s *PlannerService) BuildSimpleItinerary(ctx context.Context, destination string, days int) map[string][]string {
	attractions, _ := s.resolveAttractions(ctx, strings.Title(destination))

	itinerary := make(map[string][]string, days)
	for day := 1; day <= days; day++ {
		attraction := attractions[(day-1)%len(attractions)]
		itinerary[fmt.Sprintf("Day %d", day)] = []string{
			fmt.Sprintf("Morning: Visit %s", attraction),
			"Afternoon: Enjoy local cuisine",
			"Evening: Explore local markets and culture",
		}
	}
	return itinerary
}
