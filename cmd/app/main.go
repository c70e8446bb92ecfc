package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripline/cmd/fx/ai_fx"
	"tripline/cmd/fx/chat_fx"
	"tripline/cmd/fx/controllers_fx"
	"tripline/cmd/fx/db_fx"
	"tripline/cmd/fx/follow_fx"
	"tripline/cmd/fx/itinerary_fx"
	"tripline/cmd/fx/share_fx"
	"tripline/cmd/fx/user_fx"
	"tripline/internal/api/controllers"
	"tripline/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		itinerary_fx.Module,
		ai_fx.Module,
		chat_fx.Module,
		user_fx.Module,
		follow_fx.Module,
		share_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	chatController *controllers.ChatController,
	userController *controllers.UserController,
	followController *controllers.FollowController,
	shareController *controllers.ShareController,
	aiController *controllers.AIController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, chatController, userController, followController, shareController, aiController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	chatController *controllers.ChatController,
	userController *controllers.UserController,
	followController *controllers.FollowController,
	shareController *controllers.ShareController,
	aiController *controllers.AIController) {

	itinerariesGroup := r.Group("/itineraries", middleware.JWTAuthMiddleware())
	itinerariesGroup.POST("", itineraryController.CreateItinerary)
	itinerariesGroup.GET("", itineraryController.ListItineraries)
	itinerariesGroup.GET("/:id", itineraryController.GetItineraryById)

	chatsGroup := r.Group("/chats", middleware.JWTAuthMiddleware())
	chatsGroup.POST("", chatController.CreateChat)
	chatsGroup.GET("", chatController.ListChats)
	chatsGroup.GET("/:chatId", chatController.GetChatById)
	chatsGroup.POST("/:chatId/messages", chatController.SendMessage)

	shareGroup := r.Group("/share")
	shareGroup.POST("/itinerary", middleware.JWTAuthMiddleware(), shareController.ShareItinerary)
	shareGroup.GET("/:token", shareController.ResolveShareLink)

	followsGroup := r.Group("/follows", middleware.JWTAuthMiddleware())
	followsGroup.POST("/:userId", followController.Follow)
	followsGroup.DELETE("/:userId", followController.Unfollow)
	followsGroup.GET("/followers", followController.ListFollowers)
	followsGroup.GET("/following", followController.ListFollowing)

	aiGroup := r.Group("/ai", middleware.JWTAuthMiddleware())
	aiGroup.POST("/itinerary", aiController.ExtractItinerary)

	usersGroup := r.Group("/users", middleware.ServiceKeyMiddleware())
	usersGroup.POST("", userController.UpsertUser)
}
