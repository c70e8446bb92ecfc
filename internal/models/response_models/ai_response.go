package response_models

// ParsedItinerary is the structured form decoded from free-text model
// output after fence stripping.
type ParsedItinerary struct {
	Title     string           `json:"title"`
	Locations []ParsedLocation `json:"locations"`
}

type ParsedLocation struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Day         int      `json:"day,omitempty"`
	Order       int      `json:"order,omitempty"`
	Activities  []string `json:"activities,omitempty"`
	Tips        []string `json:"tips,omitempty"`
}
