package controllers_fx

import (
	"go.uber.org/fx"

	"tripline/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewFollowController),
	fx.Provide(controllers.NewShareController),
	fx.Provide(controllers.NewAIController))
