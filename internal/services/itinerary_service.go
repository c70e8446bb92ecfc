package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripline/internal/models/db_models"
	"tripline/internal/models/request_models"
	"tripline/internal/models/response_models"
	"tripline/internal/repositories"
	"tripline/pkg/utils"
)

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, ownerID uuid.UUID, req request_models.CreateItineraryRequest) (*response_models.CreateItineraryResponse, error)
	GetItineraryByID(ctx context.Context, itineraryID string, callerID uuid.UUID) (*response_models.ItineraryDetailResponse, error)
	GetItineraryUnchecked(ctx context.Context, itineraryID string) (*response_models.ItineraryDetailResponse, error)
	ListItinerariesByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]response_models.ItinerarySummaryResponse, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
	}
}

// ValidateCreateItinerary checks the request shape before anything is
// persisted. Pure; no side effects.
func ValidateCreateItinerary(req *request_models.CreateItineraryRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return utils.ErrInvalidTitle
	}
	if len(req.Pins) == 0 {
		return utils.ErrNoPins
	}
	for _, pin := range req.Pins {
		if pin.Latitude == nil || pin.Longitude == nil {
			return utils.ErrInvalidCoordinates
		}
		if *pin.Latitude < -90 || *pin.Latitude > 90 || *pin.Longitude < -180 || *pin.Longitude > 180 {
			return utils.ErrInvalidCoordinates
		}
		if strings.TrimSpace(pin.Title) == "" {
			return utils.ErrInvalidPinTitle
		}
	}
	return nil
}

// buildPins normalizes types and icons and defaults the order index to
// the pin's position in the input array.
func buildPins(inputs []request_models.PinInput) []db_models.Pin {
	pins := make([]db_models.Pin, 0, len(inputs))
	for i, in := range inputs {
		pinType := db_models.NormalizePinType(in.Type)

		orderIndex := i
		if in.OrderIndex != nil {
			orderIndex = *in.OrderIndex
		}

		var date *time.Time
		if in.Date != "" {
			if parsed, err := time.Parse(time.RFC3339, in.Date); err == nil {
				date = &parsed
			}
		}

		pins = append(pins, db_models.Pin{
			Latitude:    *in.Latitude,
			Longitude:   *in.Longitude,
			Title:       strings.TrimSpace(in.Title),
			Description: in.Description,
			Type:        pinType,
			Icon:        db_models.NormalizePinIcon(in.Icon, pinType),
			OrderIndex:  orderIndex,
			Day:         in.Day,
			Date:        date,
		})
	}
	return pins
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, ownerID uuid.UUID, req request_models.CreateItineraryRequest) (*response_models.CreateItineraryResponse, error) {
	if err := ValidateCreateItinerary(&req); err != nil {
		return nil, err
	}

	itinerary := &db_models.Itinerary{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	pins := buildPins(req.Pins)

	if err := s.itineraryRepo.CreateWithPins(ctx, itinerary, pins); err != nil {
		return nil, utils.ErrDatabaseError
	}

	detail := db_models.BuildItineraryDetailResponse(itinerary)

	// Pins in submission order, independent of display order.
	created := make([]response_models.MapPin, 0, len(itinerary.Pins))
	for i := range itinerary.Pins {
		created = append(created, db_models.BuildMapPin(&itinerary.Pins[i]))
	}

	return &response_models.CreateItineraryResponse{
		Itinerary: *detail,
		Pins:      created,
	}, nil
}

func (s *ItineraryService) GetItineraryByID(ctx context.Context, itineraryID string, callerID uuid.UUID) (*response_models.ItineraryDetailResponse, error) {
	// A non-uuid id cannot name a row; reject it before it reaches
	// the database as a malformed query value.
	if _, err := uuid.Parse(itineraryID); err != nil {
		return nil, utils.ErrItineraryNotFound
	}

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

	return db_models.BuildItineraryDetailResponse(itinerary), nil
}

// GetItineraryUnchecked skips the ownership check. Reachable only
// through a minted share token, so the row is public by construction.
func (s *ItineraryService) GetItineraryUnchecked(ctx context.Context, itineraryID string) (*response_models.ItineraryDetailResponse, error) {
	if _, err := uuid.Parse(itineraryID); err != nil {
		return nil, utils.ErrItineraryNotFound
	}

	itinerary, err := s.itineraryRepo.GetByIDWithPins(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	return db_models.BuildItineraryDetailResponse(itinerary), nil
}

func (s *ItineraryService) ListItinerariesByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]response_models.ItinerarySummaryResponse, error) {
	itineraries, err := s.itineraryRepo.ListByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItinerarySummaryResponse, 0, len(itineraries))
	for _, it := range itineraries {
		out = append(out, response_models.ItinerarySummaryResponse{
			ID:          it.ID.String(),
			Title:       it.Title,
			Description: it.Description,
			IsPublic:    it.IsPublic,
			PinCount:    len(it.Pins),
			UpdatedAt:   it.UpdatedAt,
		})
	}
	return out, nil
}
