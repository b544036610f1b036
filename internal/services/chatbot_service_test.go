package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBot() (ChatbotServiceInterface, *ChatSession) {
	return NewChatbotService(newTestPlanner(nil, nil, nil, nil, nil)), NewChatSession()
}

func TestFullPlanningConversation(t *testing.T) {
	bot, session := newTestBot()
	ctx := context.Background()

	turns := []struct {
		input string
		want  string
	}{
		{"hi", "Would you like to plan a trip?"},
		{"yes", "tell me your budget"},
		{"medium", "Which destination"},
		{"Goa", "how many days"},
		{"3", "mode of transportation"},
		{"flight", "hotel preferences"},
		{"budget", "food preference"},
		{"north indian", "activity interests"},
	}
	for _, turn := range turns {
		reply := bot.HandleTurn(ctx, session, turn.input)
		assert.Contains(t, reply, turn.want, "input %q", turn.input)
	}

	reply := bot.HandleTurn(ctx, session, "none")
	assert.Contains(t, reply, "Generating your personalized trip plan")
	assert.Contains(t, reply, "Trip Plan for Goa (Duration: 3 days, Budget: INR 15000):")
	assert.Contains(t, reply, "Day 3:")
	assert.Contains(t, reply, "Enjoy your trip!")

	// The dialogue restarts cleanly after a plan is delivered.
	assert.Equal(t, StateGreeting, session.State)
	assert.Nil(t, session.Data.Budget)
	assert.Empty(t, session.Data.Destination)
}

func TestDecliningResetsSession(t *testing.T) {
	bot, session := newTestBot()
	ctx := context.Background()

	bot.HandleTurn(ctx, session, "hello")
	reply := bot.HandleTurn(ctx, session, "no thanks")

	assert.Contains(t, reply, "feel free to ask me anytime")
	assert.Equal(t, StateGreeting, session.State)
}

func TestShortFormConfirmationAccepted(t *testing.T) {
	bot, session := newTestBot()
	ctx := context.Background()

	bot.HandleTurn(ctx, session, "hello")
	reply := bot.HandleTurn(ctx, session, "Y")

	assert.Contains(t, reply, "tell me your budget")
	assert.Equal(t, StateGetBudget, session.State)
}

func TestAnythingButYesEndsTheDialogue(t *testing.T) {
	// Only an exact "yes" or "y" confirms; substrings don't count.
	for _, input := range []string{"maybe later", "yesterday", "piano", "sure"} {
		bot, session := newTestBot()
		ctx := context.Background()

		bot.HandleTurn(ctx, session, "hello")
		reply := bot.HandleTurn(ctx, session, input)

		assert.Contains(t, reply, "feel free to ask me anytime", "input %q", input)
		assert.Equal(t, StateGreeting, session.State, "input %q", input)
	}
}

func TestBudgetCategoryMapping(t *testing.T) {
	cases := map[string]float64{
		"low":       5000,
		"medium":    15000,
		"high":      30000,
		"20000":     20000,
		"gibberish": 10000,
	}
	for input, want := range cases {
		bot, session := newTestBot()
		ctx := context.Background()
		bot.HandleTurn(ctx, session, "hi")
		bot.HandleTurn(ctx, session, "yes")
		bot.HandleTurn(ctx, session, input)

		require.NotNil(t, session.Data.Budget, "input %q", input)
		assert.Equal(t, want, *session.Data.Budget, "input %q", input)
	}
}

func TestInvalidDaysKeepsAsking(t *testing.T) {
	bot, session := newTestBot()
	ctx := context.Background()

	for _, input := range []string{"hi", "yes", "low", "Goa"} {
		bot.HandleTurn(ctx, session, input)
	}

	reply := bot.HandleTurn(ctx, session, "three")
	assert.Contains(t, reply, "valid number")
	assert.Equal(t, StateGetDays, session.State)
	assert.Nil(t, session.Data.Days)

	reply = bot.HandleTurn(ctx, session, "3")
	assert.Contains(t, reply, "transportation")
	require.NotNil(t, session.Data.Days)
	assert.Equal(t, 3, *session.Data.Days)
}

func TestInvalidTransportKeepsAsking(t *testing.T) {
	bot, session := newTestBot()
	ctx := context.Background()

	for _, input := range []string{"hi", "yes", "low", "Goa", "2"} {
		bot.HandleTurn(ctx, session, input)
	}

	reply := bot.HandleTurn(ctx, session, "airplane")
	assert.Contains(t, reply, "valid transportation option")
	assert.Equal(t, StateGetTransport, session.State)

	reply = bot.HandleTurn(ctx, session, "any")
	assert.Contains(t, reply, "hotel preferences")
	assert.Equal(t, "any", session.Data.Transportation)
}

func TestActivitiesParsing(t *testing.T) {
	assert.Nil(t, parseActivities("none"))
	assert.Nil(t, parseActivities(""))
	assert.Equal(t, []string{"adventure", "shopping"}, parseActivities("adventure, shopping"))
	assert.Equal(t, []string{"culture"}, parseActivities("culture,"))
}

func TestSessionRoundTripsThroughJSON(t *testing.T) {
	bot, session := newTestBot()
	ctx := context.Background()

	for _, input := range []string{"hi", "yes", "high", "Jaipur", "4"} {
		bot.HandleTurn(ctx, session, input)
	}

	raw, err := json.Marshal(session)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"state":"get_transportation"`)

	restored := &ChatSession{}
	require.NoError(t, json.Unmarshal(raw, restored))
	assert.Equal(t, session.State, restored.State)
	require.NotNil(t, restored.Data.Budget)
	assert.Equal(t, 30000.0, *restored.Data.Budget)
	assert.Equal(t, "Jaipur", restored.Data.Destination)
	require.NotNil(t, restored.Data.Days)
	assert.Equal(t, 4, *restored.Data.Days)

	reply := bot.HandleTurn(ctx, restored, "train")
	assert.Contains(t, reply, "hotel preferences")
}

func TestDestinationKeepsOriginalCasing(t *testing.T) {
	bot, session := newTestBot()
	ctx := context.Background()

	for _, input := range []string{"hi", "yes", "low"} {
		bot.HandleTurn(ctx, session, input)
	}
	bot.HandleTurn(ctx, session, "  New Delhi  ")
	assert.Equal(t, "New Delhi", session.Data.Destination)
}

func TestPlanStillDeliveredWhenProvidersFail(t *testing.T) {
	planner := newTestPlanner(
		&fakePlaces{err: assertErr("places down")},
		&fakeWeather{err: assertErr("weather down")},
		&fakeRecommender{err: assertErr("hotels down")},
		&fakeRecommender{err: assertErr("restaurants down")},
		&fakeAI{err: assertErr("ai down")},
	)
	bot := NewChatbotService(planner)
	session := NewChatSession()
	ctx := context.Background()

	for _, input := range []string{"hi", "yes", "low", "Goa", "2", "bus", "any", "any"} {
		bot.HandleTurn(ctx, session, input)
	}
	reply := bot.HandleTurn(ctx, session, "none")

	assert.True(t, strings.Contains(reply, "An error occurred while generating the trip plan."))
	assert.Equal(t, StateGreeting, session.State)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
