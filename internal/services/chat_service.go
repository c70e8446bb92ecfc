package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tripline/internal/models/db_models"
	"tripline/internal/models/response_models"
	"tripline/internal/repositories"
	"tripline/pkg/utils"
)

type ChatServiceInterface interface {
	CreateChat(ctx context.Context, ownerID uuid.UUID, title string) (*response_models.ChatSummaryResponse, error)
	GetChatWithMessages(ctx context.Context, chatID string, callerID uuid.UUID) (*response_models.ChatResponse, error)
	ListChats(ctx context.Context, ownerID uuid.UUID, limit int) ([]response_models.ChatSummaryResponse, error)
	SendMessage(ctx context.Context, chatID string, callerID uuid.UUID, content string) (*response_models.SendMessageResponse, error)
}

type ChatService struct {
	chatRepo  repositories.ChatRepository
	aiClient  utils.AIClientInterface
	aiService AIItineraryServiceInterface
}

func NewChatService(
	chatRepo repositories.ChatRepository,
	aiClient utils.AIClientInterface,
	aiService AIItineraryServiceInterface,
) ChatServiceInterface {
	return &ChatService{
		chatRepo:  chatRepo,
		aiClient:  aiClient,
		aiService: aiService,
	}
}

func (s *ChatService) CreateChat(ctx context.Context, ownerID uuid.UUID, title string) (*response_models.ChatSummaryResponse, error) {
	if strings.TrimSpace(title) == "" {
		return nil, utils.ErrInvalidInput
	}

	chat := &db_models.Chat{
		OwnerID: ownerID,
		Title:   strings.TrimSpace(title),
	}
	if err := s.chatRepo.CreateChat(ctx, chat); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ChatSummaryResponse{
		ID:        chat.ID.String(),
		Title:     chat.Title,
		UpdatedAt: chat.UpdatedAt,
	}, nil
}

// loadOwnedChat fetches the chat and enforces that the caller owns it.
func (s *ChatService) loadOwnedChat(ctx context.Context, chatID string, callerID uuid.UUID) (*db_models.Chat, error) {
	if _, err := uuid.Parse(chatID); err != nil {
		return nil, utils.ErrChatNotFound
	}

	chat, err := s.chatRepo.GetChatWithMessages(ctx, chatID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if chat == nil {
		return nil, utils.ErrChatNotFound
	}
	if chat.OwnerID != callerID {
		return nil, utils.ErrForbidden
	}
	return chat, nil
}

func buildChatResponse(chat *db_models.Chat) *response_models.ChatResponse {
	out := &response_models.ChatResponse{
		ID:        chat.ID.String(),
		Title:     chat.Title,
		UpdatedAt: chat.UpdatedAt,
		Messages:  make([]response_models.MessageResponse, 0, len(chat.Messages)),
	}
	for _, m := range chat.Messages {
		out.Messages = append(out.Messages, response_models.MessageResponse{
			ID:        m.ID.String(),
			Sender:    m.Sender,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}

func (s *ChatService) GetChatWithMessages(ctx context.Context, chatID string, callerID uuid.UUID) (*response_models.ChatResponse, error) {
	chat, err := s.loadOwnedChat(ctx, chatID, callerID)
	if err != nil {
		return nil, err
	}
	return buildChatResponse(chat), nil
}

func (s *ChatService) ListChats(ctx context.Context, ownerID uuid.UUID, limit int) ([]response_models.ChatSummaryResponse, error) {
	chats, err := s.chatRepo.ListChatsByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ChatSummaryResponse, 0, len(chats))
	for _, chat := range chats {
		out = append(out, response_models.ChatSummaryResponse{
			ID:        chat.ID.String(),
			Title:     chat.Title,
			UpdatedAt: chat.UpdatedAt,
		})
	}
	return out, nil
}

func (s *ChatService) SendMessage(ctx context.Context, chatID string, callerID uuid.UUID, content string) (*response_models.SendMessageResponse, error) {
	if strings.TrimSpace(content) == "" {
		return nil, utils.ErrInvalidInput
	}

	chat, err := s.loadOwnedChat(ctx, chatID, callerID)
	if err != nil {
		return nil, err
	}

	userMessage := &db_models.Message{
		ChatID:  chat.ID,
		Sender:  db_models.MessageSenderUser,
		Content: content,
	}
	if err := s.chatRepo.AppendMessage(ctx, userMessage); err != nil {
		return nil, utils.ErrDatabaseError
	}

	history := make([]utils.ChatTurn, 0, len(chat.Messages))
	for _, m := range chat.Messages {
		history = append(history, utils.ChatTurn{Role: m.Sender, Content: m.Content})
	}

	reply, err := s.aiClient.GenerateReply(ctx, history, content)
	if err != nil {
		return nil, utils.ErrAIProviderError
	}

	aiMessage := &db_models.Message{
		ChatID:  chat.ID,
		Sender:  db_models.MessageSenderAI,
		Content: reply,
	}
	if err := s.chatRepo.AppendMessage(ctx, aiMessage); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.SendMessageResponse{
		Message: response_models.MessageResponse{
			ID:        aiMessage.ID.String(),
			Sender:    aiMessage.Sender,
			Content:   aiMessage.Content,
			CreatedAt: aiMessage.CreatedAt,
		},
	}

	// Offer a structured draft when the reply happens to contain one.
	if draft, ok := s.aiService.ParseItineraryText(reply); ok {
		out.ItineraryDraft = draft
	}

	return out, nil
}
