package chat_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripline/internal/repositories"
	"tripline/internal/services"
	"tripline/pkg/utils"
)

var Module = fx.Provide(provideChatRepo, provideChatService)

func provideChatRepo(db *gorm.DB) repositories.ChatRepository {
	return repositories.NewChatRepository(db)
}

func provideChatService(
	chatRepo repositories.ChatRepository,
	aiClient utils.AIClientInterface,
	aiService services.AIItineraryServiceInterface,
) services.ChatServiceInterface {
	return services.NewChatService(chatRepo, aiClient, aiService)
}
