package follow_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripline/internal/repositories"
	"tripline/internal/services"
)

var Module = fx.Provide(provideFollowRepo, provideFollowService)

func provideFollowRepo(db *gorm.DB) repositories.FollowRepository {
	return repositories.NewFollowRepository(db)
}

func provideFollowService(
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
) services.FollowServiceInterface {
	return services.NewFollowService(followRepo, userRepo)
}
