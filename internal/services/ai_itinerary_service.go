package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tripline/internal/models/request_models"
	"tripline/internal/models/response_models"
	"tripline/pkg/utils"
)

type AIItineraryServiceInterface interface {
	// ParseItineraryText decodes model output into a structured
	// itinerary. The second return is false when nothing usable could
	// be extracted; no error ever escapes.
	ParseItineraryText(text string) (*response_models.ParsedItinerary, bool)

	// ExtractAndCreate runs parse -> geocode -> transactional write.
	ExtractAndCreate(ctx context.Context, ownerID uuid.UUID, text string) (*response_models.CreateItineraryResponse, error)
}

type AIItineraryService struct {
	itineraryService ItineraryServiceInterface
	geocoder         Geocoder
}

func NewAIItineraryService(itineraryService ItineraryServiceInterface, geocoder Geocoder) AIItineraryServiceInterface {
	return &AIItineraryService{
		itineraryService: itineraryService,
		geocoder:         geocoder,
	}
}

// stripCodeFences removes a wrapping ```json ... ``` or ``` ... ```
// block if present. Content without fences passes through unchanged.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if newline := strings.IndexByte(trimmed, '\n'); newline >= 0 {
		// Drop the language tag line ("json" or empty).
		firstLine := strings.TrimSpace(trimmed[:newline])
		if firstLine == "" || !strings.ContainsAny(firstLine, "{[") {
			trimmed = trimmed[newline+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func (s *AIItineraryService) ParseItineraryText(text string) (*response_models.ParsedItinerary, bool) {
	content := stripCodeFences(text)
	if content == "" {
		return nil, false
	}

	var parsed response_models.ParsedItinerary
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, false
	}

	if strings.TrimSpace(parsed.Title) == "" || len(parsed.Locations) == 0 {
		return nil, false
	}
	return &parsed, true
}

type geocodedLocation struct {
	location response_models.ParsedLocation
	lat      float64
	lng      float64
	ok       bool
}

// geocodeLocations resolves every location concurrently. A failed
// lookup marks only that item; the rest of the batch is unaffected.
func (s *AIItineraryService) geocodeLocations(ctx context.Context, locations []response_models.ParsedLocation) []geocodedLocation {
	results := make([]geocodedLocation, len(locations))

	var wg sync.WaitGroup
	for i, loc := range locations {
		wg.Add(1)
		go func(i int, loc response_models.ParsedLocation) {
			defer wg.Done()
			results[i].location = loc

			lat, lng, err := s.geocoder.Geocode(ctx, loc.Name)
			if err != nil {
				log.Printf("geocode %q failed: %v", loc.Name, err)
				return
			}
			results[i].lat = lat
			results[i].lng = lng
			results[i].ok = true
		}(i, loc)
	}
	wg.Wait()

	return results
}

func (s *AIItineraryService) ExtractAndCreate(ctx context.Context, ownerID uuid.UUID, text string) (*response_models.CreateItineraryResponse, error) {
	parsed, ok := s.ParseItineraryText(text)
	if !ok {
		return nil, utils.ErrNoItineraryExtracted
	}

	geocoded := s.geocodeLocations(ctx, parsed.Locations)

	pins := make([]request_models.PinInput, 0, len(geocoded))
	for _, g := range geocoded {
		if !g.ok {
			continue
		}
		lat, lng := g.lat, g.lng

		var orderIndex *int
		if g.location.Order > 0 {
			idx := g.location.Order - 1
			orderIndex = &idx
		}

		description := g.location.Description
		if len(g.location.Activities) > 0 {
			description = strings.TrimSpace(description + "\n" + strings.Join(g.location.Activities, "; "))
		}

		pins = append(pins, request_models.PinInput{
			Latitude:    &lat,
			Longitude:   &lng,
			Title:       g.location.Name,
			Description: description,
			Type:        g.location.Type,
			OrderIndex:  orderIndex,
			Day:         g.location.Day,
		})
	}

	if len(pins) == 0 {
		return nil, utils.ErrNoItineraryExtracted
	}

	return s.itineraryService.CreateItinerary(ctx, ownerID, request_models.CreateItineraryRequest{
		Title: parsed.Title,
		Pins:  pins,
	})
}
