package services

import (
	"context"
	"fmt"
	"strings"
)

// Hotel and restaurant candidates come from static preference-keyed
// tables. The interfaces still return errors so that a real inventory
// backend can replace the heuristics without changing the planner.
type HotelRecommenderInterface interface {
	Recommend(ctx context.Context, destination, preference string) ([]string, error)
}

type RestaurantRecommenderInterface interface {
	Recommend(ctx context.Context, destination, preference string) ([]string, error)
}

type HeuristicRecommender struct{}

func NewHeuristicRecommender() *HeuristicRecommender {
	return &HeuristicRecommender{}
}

func (h *HeuristicRecommender) Recommend(ctx context.Context, destination, preference string) ([]string, error) {
	switch strings.ToLower(preference) {
	case "luxury", "boutique":
		return []string{
			fmt.Sprintf("%s Grand Palace", destination),
			fmt.Sprintf("%s Royal Residency", destination),
			fmt.Sprintf("%s Elite Suites", destination),
		}, nil
	case "budget":
		return []string{
			fmt.Sprintf("%s Comfort Inn", destination),
			fmt.Sprintf("%s Budget Stay", destination),
			fmt.Sprintf("%s City Lodge", destination),
		}, nil
	default:
		return []string{
			fmt.Sprintf("%s Central Hotel", destination),
			fmt.Sprintf("%s Heritage Inn", destination),
			fmt.Sprintf("%s Traveller's Rest", destination),
		}, nil
	}
}

type HeuristicRestaurantRecommender struct{}

func NewHeuristicRestaurantRecommender() *HeuristicRestaurantRecommender {
	return &HeuristicRestaurantRecommender{}
}

func (h *HeuristicRestaurantRecommender) Recommend(ctx context.Context, destination, preference string) ([]string, error) {
	pref := strings.ToLower(preference)
	switch pref {
	case "north indian", "south indian", "continental":
		title := strings.Title(pref)
		return []string{
			fmt.Sprintf("%s %s Delight", destination, title),
			fmt.Sprintf("%s %s Bistro", destination, title),
			fmt.Sprintf("%s %s Corner", destination, title),
		}, nil
	default:
		return []string{
			fmt.Sprintf("%s Food Plaza", destination),
			fmt.Sprintf("%s Diner", destination),
			fmt.Sprintf("%s Culinary Hub", destination),
		}, nil
	}
}
