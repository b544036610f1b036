package providers_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	ProvideAIClient,
	providePlacesProvider,
	provideWeatherProvider,
	provideHotelRecommender,
	provideRestaurantRecommender)

// AIConfig holds configuration for the language-model client.
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAIClient creates the narrative/embedding client from environment variables.
func ProvideAIClient() (utils.AIClientInterface, error) {
	config := getAIConfig()

	log.Printf("Initializing %s AI client with model: %s", config.Provider, config.Model)

	client, err := utils.NewAIClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	return client, nil
}

func providePlacesProvider() services.PlacesProviderInterface {
	return services.NewPlacesClient()
}

func provideWeatherProvider() services.WeatherProviderInterface {
	return services.NewWeatherClient()
}

func provideHotelRecommender() services.HotelRecommenderInterface {
	return services.NewHeuristicRecommender()
}

func provideRestaurantRecommender() services.RestaurantRecommenderInterface {
	return services.NewHeuristicRestaurantRecommender()
}

// getAIConfig reads configuration from environment variables
func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return AIConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
