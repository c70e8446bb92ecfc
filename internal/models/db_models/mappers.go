package db_models

import (
	"sort"

	"tripline/internal/models/response_models"
)

// BuildMapPin reshapes one pin for map display. Missing optionals come
// out as ""/0/{}; the frontend never sees null.
func BuildMapPin(p *Pin) response_models.MapPin {
	return response_models.MapPin{
		ID:          p.ID.String(),
		LngLat:      [2]float64{p.Longitude, p.Latitude},
		Title:       p.Title,
		Description: p.Description,
		Type:        string(p.Type),
		Icon:        string(p.Icon),
		OrderIndex:  p.OrderIndex,
		Day:         p.Day,
		Meta:        map[string]string{},
	}
}

// BuildItineraryDetailResponse shapes an itinerary plus its pins,
// ordered ascending by order index.
func BuildItineraryDetailResponse(it *Itinerary) *response_models.ItineraryDetailResponse {
	pins := make([]Pin, len(it.Pins))
	copy(pins, it.Pins)
	sort.SliceStable(pins, func(i, j int) bool {
		return pins[i].OrderIndex < pins[j].OrderIndex
	})

	out := &response_models.ItineraryDetailResponse{
		ID:          it.ID.String(),
		Title:       it.Title,
		Description: it.Description,
		IsPublic:    it.IsPublic,
		Pins:        make([]response_models.MapPin, 0, len(pins)),
	}
	for i := range pins {
		out.Pins = append(out.Pins, BuildMapPin(&pins[i]))
	}
	return out
}
