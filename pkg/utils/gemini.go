package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const assistantInstruction = `You are a travel-planning assistant. Help the user plan trips.
When the user asks for a full itinerary, answer with JSON only, matching:
{"title":"...","locations":[{"name":"...","type":"ATTRACTION","description":"...","day":1,"order":1,"activities":["..."],"tips":["..."]}]}
Valid types: HOTEL, FOOD, ATTRACTION, CUSTOM, CAR, PIN.
For everything else answer conversationally in plain text.`

// GeminiClient implements AIClientInterface using Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (AIClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) GenerateReply(ctx context.Context, history []ChatTurn, userMessage string) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", fmt.Errorf("user message cannot be empty")
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)
	m.SetTopP(0.8)
	m.SetMaxOutputTokens(4000)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(assistantInstruction)},
	}

	session := m.StartChat()
	session.History = make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := "user"
		if turn.Role == "ai" {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := session.SendMessage(ctxWithTimeout, genai.Text(userMessage))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
