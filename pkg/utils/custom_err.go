package utils

import "errors"

var (
	ErrInvalidTitle       = errors.New("itinerary title is required")
	ErrNoPins             = errors.New("itinerary needs at least one pin")
	ErrInvalidCoordinates = errors.New("pin has invalid coordinates")
	ErrInvalidPinTitle    = errors.New("pin title is required")

	ErrForbidden          = errors.New("caller does not own this resource")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrChatNotFound       = errors.New("chat not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrShareTokenNotFound = errors.New("share token not found")
	ErrFollowNotFound     = errors.New("follow relation not found")

	ErrNoItineraryExtracted = errors.New("no itinerary could be extracted")
	ErrSelfFollow           = errors.New("cannot follow yourself")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDatabaseError        = errors.New("database error")
	ErrAIProviderError      = errors.New("ai provider error")
)
