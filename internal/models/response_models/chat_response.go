package response_models

type MessageResponse struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

type ChatResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Messages  []MessageResponse `json:"messages"`
	UpdatedAt int64             `json:"updatedAt"`
}

type ChatSummaryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	UpdatedAt int64  `json:"updatedAt"`
}

// SendMessageResponse returns the assistant's reply plus, when the
// reply contained a structured plan, the itinerary draft parsed out of
// it so the client can offer to save it.
type SendMessageResponse struct {
	Message        MessageResponse  `json:"message"`
	ItineraryDraft *ParsedItinerary `json:"itineraryDraft,omitempty"`
}
