package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripline/internal/models/response_models"
	"tripline/internal/repositories"
	"tripline/pkg/memcache"
	"tripline/pkg/utils"
)

const shareTokenTTL = 30 * 24 * time.Hour

type ShareServiceInterface interface {
	ShareItinerary(ctx context.Context, callerID uuid.UUID, itineraryID string, notifyEmail string) (*response_models.ShareItineraryResponse, error)
	ResolveShareToken(ctx context.Context, token string) (*response_models.ItineraryDetailResponse, error)
}

type ShareService struct {
	itineraryRepo    repositories.ItineraryRepository
	itineraryService ItineraryServiceInterface
	links            memcache.ShareLinkStore
	mail             IMailService
	baseURL          string
}

func NewShareService(
	itineraryRepo repositories.ItineraryRepository,
	itineraryService ItineraryServiceInterface,
	links memcache.ShareLinkStore,
	mail IMailService,
	baseURL string,
) ShareServiceInterface {
	return &ShareService{
		itineraryRepo:    itineraryRepo,
		itineraryService: itineraryService,
		links:            links,
		mail:             mail,
		baseURL:          strings.TrimRight(baseURL, "/"),
	}
}

func (s *ShareService) ShareItinerary(ctx context.Context, callerID uuid.UUID, itineraryID string, notifyEmail string) (*response_models.ShareItineraryResponse, error) {
	itinerary, err := s.itineraryRepo.GetByIDWithPins(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if itinerary.OwnerID != callerID {
		return nil, utils.ErrForbidden
	}

	if !itinerary.IsPublic {
		if err := s.itineraryRepo.SetPublic(ctx, itinerary.ID); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	s.links.Set(token, itinerary.ID.String(), shareTokenTTL)

	shareURL := s.baseURL + "/share/" + token

	if notifyEmail != "" && s.mail != nil {
		// Best effort; a mail failure never fails the share.
		if err := s.mail.SendShareLink(notifyEmail, itinerary.Title, shareURL); err != nil {
			log.Printf("share mail to %s failed: %v", notifyEmail, err)
		}
	}

	return &response_models.ShareItineraryResponse{ShareURL: shareURL}, nil
}

func (s *ShareService) ResolveShareToken(ctx context.Context, token string) (*response_models.ItineraryDetailResponse, error) {
	itineraryID := s.links.Resolve(token)
	if itineraryID == "" {
		return nil, utils.ErrShareTokenNotFound
	}
	return s.itineraryService.GetItineraryUnchecked(ctx, itineraryID)
}
