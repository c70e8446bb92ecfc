package response_models

// MapPin is the shape the map component consumes directly. Optional
// fields are materialized as zero values, never null.
type MapPin struct {
	ID          string            `json:"id"`
	LngLat      [2]float64        `json:"lngLat"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	Icon        string            `json:"icon"`
	OrderIndex  int               `json:"orderIndex"`
	Day         int               `json:"day"`
	Meta        map[string]string `json:"meta"`
}

type ItineraryDetailResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	IsPublic    bool     `json:"isPublic"`
	Pins        []MapPin `json:"pins"`
}

type ItinerarySummaryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
	PinCount    int    `json:"pinCount"`
	UpdatedAt   int64  `json:"updatedAt"`
}

type CreateItineraryResponse struct {
	Itinerary ItineraryDetailResponse `json:"itinerary"`
	Pins      []MapPin                `json:"pins"`
}

type ShareItineraryResponse struct {
	ShareURL string `json:"shareUrl"`
}
