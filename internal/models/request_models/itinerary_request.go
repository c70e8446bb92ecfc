package request_models

type PinInput struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Icon        string   `json:"icon"`
	OrderIndex  *int     `json:"orderIndex"`
	Day         int      `json:"day"`
	// RFC3339, optional
	Date string `json:"date"`
}

type CreateItineraryRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsPublic    bool       `json:"isPublic"`
	Pins        []PinInput `json:"pins"`
}

type ShareItineraryRequest struct {
	ItineraryID string `json:"itineraryId" binding:"required,uuid4"`
	// Optional: send the share link to this address as well.
	NotifyEmail string `json:"notifyEmail"`
}
