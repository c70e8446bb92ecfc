package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripline/internal/models/request_models"
	"tripline/internal/services"
	"tripline/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// CreateChat godoc
// @Summary Start a new chat session
// @Tags Chats
// @Accept json
// @Produce json
// @Param request body request_models.CreateChatRequest true "Chat payload"
// @Success 201 {object} response_models.ChatSummaryResponse
// @Security BearerAuth
// @Router /chats [post]
func (ch *ChatController) CreateChat(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	chat, err := ch.chatService.CreateChat(c.Request.Context(), userID, req.Title)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, chat, "Chat created successfully")
}

// GetChatById godoc
// @Summary Get a chat with its messages
// @Description Messages ordered oldest first; owner only
// @Tags Chats
// @Accept json
// @Produce json
// @Param chatId path string true "Chat ID"
// @Success 200 {object} response_models.ChatResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chats/{chatId} [get]
func (ch *ChatController) GetChatById(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	chatID := c.Param("chatId")
	if chatID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Chat ID is required")
		return
	}

	chat, err := ch.chatService.GetChatWithMessages(c.Request.Context(), chatID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, chat, "Chat fetched successfully")
}

// ListChats godoc
// @Summary List the caller's chats
// @Tags Chats
// @Produce json
// @Param limit query int false "Maximum number of chats"
// @Success 200 {array} response_models.ChatSummaryResponse
// @Security BearerAuth
// @Router /chats [get]
func (ch *ChatController) ListChats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	chats, err := ch.chatService.ListChats(c.Request.Context(), userID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, chats, "Chats fetched successfully")
}

// SendMessage godoc
// @Summary Send a message and get the assistant's reply
// @Description Stores the user message, generates the AI reply, and returns any itinerary draft found in it
// @Tags Chats
// @Accept json
// @Produce json
// @Param chatId path string true "Chat ID"
// @Param request body request_models.SendMessageRequest true "Message payload"
// @Success 200 {object} response_models.SendMessageResponse
// @Security BearerAuth
// @Router /chats/{chatId}/messages [post]
func (ch *ChatController) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	chatID := c.Param("chatId")
	if chatID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Chat ID is required")
		return
	}

	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply, err := ch.chatService.SendMessage(c.Request.Context(), chatID, userID, req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Message sent successfully")
}
