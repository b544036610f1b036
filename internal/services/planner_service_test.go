package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/request_models"
)

type fakePlaces struct {
	places []Place
	err    error
}

func (f *fakePlaces) Search(ctx context.Context, query string) ([]Place, error) {
	return f.places, f.err
}

type fakeWeather struct {
	weather *Weather
	err     error
}

func (f *fakeWeather) Current(ctx context.Context, city string) (*Weather, error) {
	return f.weather, f.err
}

type fakeRecommender struct {
	names []string
	err   error
}

func (f *fakeRecommender) Recommend(ctx context.Context, destination, preference string) ([]string, error) {
	return f.names, f.err
}

type fakeAI struct {
	narrative string
	err       error
	prompts   []string
}

func (f *fakeAI) GeneratePlanNarrative(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.narrative, f.err
}

func (f *fakeAI) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return pgvector.NewVector(nil), nil
}

func newTestPlanner(places *fakePlaces, weather *fakeWeather, hotels, restaurants *fakeRecommender, ai *fakeAI) PlannerServiceInterface {
	if places == nil {
		places = &fakePlaces{places: []Place{{Name: "Fort"}, {Name: "Beach"}, {Name: "Temple"}}}
	}
	if weather == nil {
		weather = &fakeWeather{weather: &Weather{City: "Goa", Temperature: 29, Description: "clear sky"}}
	}
	if hotels == nil {
		hotels = &fakeRecommender{names: []string{"Goa Comfort Inn", "Goa Budget Stay", "Goa City Lodge"}}
	}
	if restaurants == nil {
		restaurants = &fakeRecommender{names: []string{"Goa Food Plaza", "Goa Diner", "Goa Culinary Hub"}}
	}
	if ai == nil {
		ai = &fakeAI{narrative: "Day 1: arrive and explore."}
	}
	return NewPlannerService(places, weather, hotels, restaurants, ai)
}

func baseRequest() request_models.TripRequest {
	return request_models.TripRequest{
		Destination:     "Goa",
		Budget:          15000,
		Days:            3,
		Transportation:  "flight",
		HotelPreference: "budget",
		FoodPreference:  "north indian",
		Activities:      []string{"adventure"},
	}
}

func TestComputeCostsStandardSplit(t *testing.T) {
	costs := computeCosts(10000, "flight", "budget")

	assert.InDelta(t, 2000, costs.Transportation, 0.001)
	assert.InDelta(t, 3000, costs.Accommodation, 0.001)
	assert.InDelta(t, 1000, costs.Food, 0.001)
	assert.InDelta(t, 1000, costs.Activities, 0.001)
	assert.InDelta(t, costs.Transportation+costs.Accommodation+costs.Food+costs.Activities, costs.Total, 0.001)
}

func TestComputeCostsAnyTransportIsCheaper(t *testing.T) {
	costs := computeCosts(10000, "any", "budget")
	assert.InDelta(t, 1500, costs.Transportation, 0.001)
}

func TestComputeCostsLuxuryAccommodation(t *testing.T) {
	for _, pref := range []string{"luxury", "boutique", "Luxury"} {
		costs := computeCosts(10000, "train", pref)
		assert.InDelta(t, 5000, costs.Accommodation, 0.001, "preference %q", pref)
	}
}

func TestSynthesizeBuildsFullPlan(t *testing.T) {
	planner := newTestPlanner(nil, nil, nil, nil, nil)

	plan := planner.Synthesize(context.Background(), baseRequest())
	require.NotNil(t, plan)

	assert.Equal(t, "Goa", plan.Destination)
	assert.Empty(t, plan.Narrative)
	assert.Equal(t, "Flight", plan.Transportation)
	assert.Contains(t, plan.Weather, "29°C")
	require.Len(t, plan.Itinerary, 3)
	assert.Len(t, plan.Hotels, 3)
	assert.Len(t, plan.Restaurants, 3)
}

func TestSynthesizeAttractionRotationWrapsAround(t *testing.T) {
	places := &fakePlaces{places: []Place{{Name: "Fort"}, {Name: "Beach"}}}
	planner := newTestPlanner(places, nil, nil, nil, nil)

	req := baseRequest()
	req.Days = 5
	plan := planner.Synthesize(context.Background(), req)

	require.Len(t, plan.Itinerary, 5)
	assert.Contains(t, plan.Itinerary[0].Morning, "Fort")
	assert.Contains(t, plan.Itinerary[1].Morning, "Beach")
	assert.Contains(t, plan.Itinerary[2].Morning, "Fort")
	assert.Contains(t, plan.Itinerary[4].Morning, "Fort")
}

func TestSynthesizeDegradedAttractionsStillStructured(t *testing.T) {
	places := &fakePlaces{err: errors.New("timeout")}
	planner := newTestPlanner(places, nil, nil, nil, nil)

	plan := planner.Synthesize(context.Background(), baseRequest())

	assert.Empty(t, plan.Narrative)
	require.NotEmpty(t, plan.Itinerary)
	assert.Contains(t, plan.Itinerary[0].Morning, "Famous landmark in Goa")
}

func TestSynthesizeDegradedWeatherUsesPlaceholder(t *testing.T) {
	weather := &fakeWeather{err: errors.New("service down")}
	planner := newTestPlanner(nil, weather, nil, nil, nil)

	plan := planner.Synthesize(context.Background(), baseRequest())
	assert.Equal(t, "Weather information is unavailable.", plan.Weather)
}

func TestSynthesizeTotalDataExhaustionFallsBackToNarrative(t *testing.T) {
	places := &fakePlaces{err: errors.New("down")}
	hotels := &fakeRecommender{err: errors.New("down")}
	restaurants := &fakeRecommender{err: errors.New("down")}
	ai := &fakeAI{narrative: "Day 1: arrive and explore."}
	planner := newTestPlanner(places, nil, hotels, restaurants, ai)

	plan := planner.Synthesize(context.Background(), baseRequest())

	assert.Equal(t, "Day 1: arrive and explore.", plan.Narrative)
	assert.Empty(t, plan.Itinerary)

	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Destination: Goa")
	assert.Contains(t, ai.prompts[0], "Duration: 3 days")
}

func TestSynthesizeFallbackFailureYieldsGenericError(t *testing.T) {
	places := &fakePlaces{err: errors.New("down")}
	hotels := &fakeRecommender{err: errors.New("down")}
	restaurants := &fakeRecommender{err: errors.New("down")}
	ai := &fakeAI{err: errors.New("quota exceeded")}
	planner := newTestPlanner(places, nil, hotels, restaurants, ai)

	plan := planner.Synthesize(context.Background(), baseRequest())
	assert.Equal(t, "An error occurred while generating the trip plan.", plan.Narrative)
}

func TestSynthesizePartialDataDoesNotFallBack(t *testing.T) {
	places := &fakePlaces{err: errors.New("down")}
	restaurants := &fakeRecommender{err: errors.New("down")}
	planner := newTestPlanner(places, nil, nil, restaurants, nil)

	plan := planner.Synthesize(context.Background(), baseRequest())
	assert.Empty(t, plan.Narrative)
	assert.NotEmpty(t, plan.Itinerary)
}

func TestSynthesizeZeroDaysHasNoItinerary(t *testing.T) {
	planner := newTestPlanner(nil, nil, nil, nil, nil)

	req := baseRequest()
	req.Days = 0
	plan := planner.Synthesize(context.Background(), req)
	assert.Empty(t, plan.Itinerary)
}

func TestRenderPlanTextFormat(t *testing.T) {
	planner := newTestPlanner(nil, nil, nil, nil, nil)
	plan := planner.Synthesize(context.Background(), baseRequest())

	text := planner.RenderPlanText(plan)

	assert.True(t, strings.HasPrefix(text, "Trip Plan for Goa (Duration: 3 days, Budget: INR 15000):"))
	assert.Contains(t, text, "Estimated Cost Breakdown:")
	assert.Contains(t, text, "Transportation: INR 3000")
	assert.Contains(t, text, "Total: INR 10500")
	assert.Contains(t, text, "Day 1:")
	assert.Contains(t, text, "Day 3:")
	assert.Contains(t, text, "Recommended Hotels: Goa Comfort Inn, Goa Budget Stay, Goa City Lodge")
	assert.True(t, strings.HasSuffix(text, "Enjoy your trip!"))
}

func TestRenderPlanTextNarrativePassesThrough(t *testing.T) {
	planner := newTestPlanner(nil, nil, nil, nil, nil)

	plan := planner.Synthesize(context.Background(), baseRequest())
	plan.Narrative = "A handcrafted plan."
	assert.Equal(t, "A handcrafted plan.", planner.RenderPlanText(plan))
}

func TestBuildSimpleItinerary(t *testing.T) {
	places := &fakePlaces{places: []Place{{Name: "Fort"}, {Name: "Beach"}}}
	planner := newTestPlanner(places, nil, nil, nil, nil)

	itinerary := planner.BuildSimpleItinerary(context.Background(), "goa", 3)

	require.Len(t, itinerary, 3)
	assert.Contains(t, itinerary["Day 1"][0], "Fort")
	assert.Contains(t, itinerary["Day 2"][0], "Beach")
	assert.Contains(t, itinerary["Day 3"][0], "Fort")
}

func TestMinimumViableDataPolicy(t *testing.T) {
	assert.True(t, MinimumViableDataPolicy{AttractionsDegraded: true}.RequiresFallback())
	assert.False(t, MinimumViableDataPolicy{AttractionsDegraded: true, Hotels: 1}.RequiresFallback())
	assert.False(t, MinimumViableDataPolicy{AttractionsDegraded: true, Restaurants: 2}.RequiresFallback())
	assert.False(t, MinimumViableDataPolicy{Hotels: 0, Restaurants: 0}.RequiresFallback())
}
