package services

import (
	"context"
	"log"
	"strconv"
	"strings"

	"tripmate/internal/models/request_models"
)

// BotState is the conversation stage of a planning session.
type BotState string

const (
	StateGreeting       BotState = "greeting"
	StateConfirmTrip    BotState = "confirm_trip"
	StateGetBudget      BotState = "get_budget"
	StateGetDestination BotState = "get_destination"
	StateGetDays        BotState = "get_days"
	StateGetTransport   BotState = "get_transportation"
	StateGetHotelPref   BotState = "get_hotel_preference"
	StateGetFoodPref    BotState = "get_food_preference"
	StateGetActivities  BotState = "get_activities"
	StateGenerating     BotState = "generating_plan"
)

// TripData accumulates answers across turns. Numeric fields are
// pointers so an unanswered question is distinguishable from zero.
type TripData struct {
	Budget          *float64 `json:"budget,omitempty"`
	Destination     string   `json:"destination,omitempty"`
	Days            *int     `json:"days,omitempty"`
	Transportation  string   `json:"transportation,omitempty"`
	HotelPreference string   `json:"hotel_preference,omitempty"`
	FoodPreference  string   `json:"food_preference,omitempty"`
	Activities      []string `json:"activities,omitempty"`
}

// ChatSession is the full conversational state. It serializes to JSON
// for the session store and round-trips without loss.
type ChatSession struct {
	State BotState `json:"state"`
	Data  TripData `json:"data"`
}

func NewChatSession() *ChatSession {
	return &ChatSession{State: StateGreeting}
}

func (s *ChatSession) Reset() {
	s.State = StateGreeting
	s.Data = TripData{}
}

const (
	msgGreeting       = "Hello! I'm your AI-powered tour planner. Would you like to plan a trip? (Yes/No)"
	msgAskBudget      = "Great! Please tell me your budget. Enter a numeric value (in INR) or type a category (low/medium/high)."
	msgAskDestination = "Which destination (city/place) in India would you like to visit? (e.g., Goa, Delhi, Jaipur)"
	msgAskDays        = "For how many days would you like the trip? (Enter a number)"
	msgAskTransport   = "What mode of transportation do you prefer? Options: flight, train, car, bus or type 'any'."
	msgAskHotelPref   = "Do you have any hotel preferences? (e.g., luxury, budget, boutique, any)"
	msgAskFoodPref    = "Any particular food preference or cuisine? (e.g., North Indian, South Indian, continental, any)"
	msgAskActivities  = "Lastly, do you have any specific activity interests? For example: adventure, sightseeing, culture, shopping, or type 'none'."
	msgGenerating     = "Thanks! Generating your personalized trip plan..."
	msgDeclined       = "Alright, feel free to ask me anytime when you want to plan a trip!"
	msgInvalidDays    = "Please enter a valid number for the trip duration."
	msgInvalidMode    = "Please choose a valid transportation option: flight, train, car, bus, or 'any'."
	msgNotUnderstood  = "I'm sorry, I didn't understand that. Could you please repeat?"
	msgTurnError      = "An error occurred while processing your input. Please try again later."
)

var budgetCategories = map[string]float64{
	"low":    5000,
	"medium": 15000,
	"high":   30000,
}

var transportModes = map[string]bool{
	"flight": true,
	"train":  true,
	"car":    true,
	"bus":    true,
	"any":    true,
}

type ChatbotServiceInterface interface {
	HandleTurn(ctx context.Context, session *ChatSession, input string) string
}

type ChatbotService struct {
	planner PlannerServiceInterface
}

func NewChatbotService(planner PlannerServiceInterface) ChatbotServiceInterface {
	return &ChatbotService{planner: planner}
}

// HandleTurn advances the session one step and returns the bot's reply.
// A panic anywhere in the turn is contained to this session.
func (s *ChatbotService) HandleTurn(ctx context.Context, session *ChatSession, input string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from chatbot turn panic: %v", r)
			reply = msgTurnError
		}
	}()

	text := strings.ToLower(strings.TrimSpace(input))

	switch session.State {
	case StateGreeting:
		session.State = StateConfirmTrip
		return msgGreeting

	case StateConfirmTrip:
		if text == "yes" || text == "y" {
			session.State = StateGetBudget
			return msgAskBudget
		}
		// Anything short of an explicit yes ends the dialogue.
		session.Reset()
		return msgDeclined

	case StateGetBudget:
		budget := parseBudget(text)
		session.Data.Budget = &budget
		session.State = StateGetDestination
		return msgAskDestination

	case StateGetDestination:
		session.Data.Destination = strings.TrimSpace(input)
		session.State = StateGetDays
		return msgAskDays

	case StateGetDays:
		if !isDigits(text) {
			return msgInvalidDays
		}
		days, _ := strconv.Atoi(text)
		session.Data.Days = &days
		session.State = StateGetTransport
		return msgAskTransport

	case StateGetTransport:
		if !transportModes[text] {
			return msgInvalidMode
		}
		session.Data.Transportation = text
		session.State = StateGetHotelPref
		return msgAskHotelPref

	case StateGetHotelPref:
		session.Data.HotelPreference = text
		session.State = StateGetFoodPref
		return msgAskFoodPref

	case StateGetFoodPref:
		session.Data.FoodPreference = text
		session.State = StateGetActivities
		return msgAskActivities

	case StateGetActivities:
		session.Data.Activities = parseActivities(text)
		session.State = StateGenerating
		return s.generate(ctx, session)

	default:
		return msgNotUnderstood
	}
}

// generate runs synthesis and unconditionally resets the session, so
// the next message starts a fresh conversation even if planning failed.
func (s *ChatbotService) generate(ctx context.Context, session *ChatSession) string {
	defer session.Reset()

	req := request_models.TripRequest{
		Destination:     session.Data.Destination,
		Transportation:  session.Data.Transportation,
		HotelPreference: session.Data.HotelPreference,
		FoodPreference:  session.Data.FoodPreference,
		Activities:      session.Data.Activities,
	}
	if session.Data.Budget != nil {
		req.Budget = *session.Data.Budget
	}
	if session.Data.Days != nil {
		req.Days = *session.Data.Days
	}

	plan := s.planner.Synthesize(ctx, req)
	return msgGenerating + "\n\n" + s.planner.RenderPlanText(plan)
}

// parseBudget accepts a number or a named category; anything else maps
// to a middle-of-the-road default.
func parseBudget(text string) float64 {
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return v
	}
	if v, ok := budgetCategories[text]; ok {
		return v
	}
	return 10000
}

func isDigits(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseActivities(text string) []string {
	if text == "" || text == "none" {
		return nil
	}
	parts := strings.Split(text, ",")
	activities := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			activities = append(activities, trimmed)
		}
	}
	return activities
}
