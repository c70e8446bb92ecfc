// cmd/fx/ai_fx/init.go
package ai_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripline/internal/services"
	"tripline/pkg/utils"
)

var Module = fx.Provide(
	ProvideAIClient,
	ProvideGeocoder,
	ProvideAIItineraryService)

// AIConfig holds configuration for text-generation clients
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAIClient creates a text-generation client based on environment variables
func ProvideAIClient() (utils.AIClientInterface, error) {
	config := getAIConfig()

	log.Printf("Initializing %s AI client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func ProvideGeocoder() services.Geocoder {
	return services.NewNominatimGeocoder(os.Getenv("GEOCODER_URL"))
}

func ProvideAIItineraryService(
	itineraryService services.ItineraryServiceInterface,
	geocoder services.Geocoder,
) services.AIItineraryServiceInterface {
	return services.NewAIItineraryService(itineraryService, geocoder)
}

// getAIConfig reads configuration from environment variables
func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
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

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
