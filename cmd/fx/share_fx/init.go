package share_fx

import (
	"os"

	"go.uber.org/fx"

	"tripline/internal/repositories"
	"tripline/internal/services"
	"tripline/pkg/memcache"
)

var Module = fx.Provide(
	provideShareLinkStore,
	provideMailService,
	provideShareService)

func provideShareLinkStore() memcache.ShareLinkStore {
	return memcache.NewShareLinks()
}

func provideMailService() services.IMailService {
	// Mail is optional: without SMTP config the share path still works,
	// it just skips the notification.
	if os.Getenv("SMTP_HOST") == "" {
		return nil
	}
	return services.NewSMTPMailService(services.SMTPConfigFromEnv())
}

func provideShareService(
	itineraryRepo repositories.ItineraryRepository,
	itineraryService services.ItineraryServiceInterface,
	links memcache.ShareLinkStore,
	mail services.IMailService,
) services.ShareServiceInterface {
	return services.NewShareService(itineraryRepo, itineraryService, links, mail, os.Getenv("APP_BASE_URL"))
}
