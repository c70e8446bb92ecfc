package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripline/internal/repositories"
	"tripline/internal/services"
)

var Module = fx.Provide(provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(itineraryRepo repositories.ItineraryRepository) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo)
}
