package utils

import "context"

// ChatTurn is one prior exchange in a chat transcript, oldest first.
type ChatTurn struct {
	Role    string // "user" or "ai"
	Content string
}

// AIClientInterface abstracts the text-generation provider so the chat
// service can run against Gemini or OpenAI interchangeably.
type AIClientInterface interface {
	GenerateReply(ctx context.Context, history []ChatTurn, userMessage string) (string, error)
}
