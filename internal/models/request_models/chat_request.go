package request_models

type CreateChatRequest struct {
	Title string `json:"title" binding:"required"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
