package request_models

// ExtractItineraryRequest carries raw model output to be turned into a
// stored itinerary.
type ExtractItineraryRequest struct {
	Text string `json:"text" binding:"required"`
}
