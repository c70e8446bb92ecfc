package db_models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PinType categorizes a pin; PinIcon is what the map actually renders.
// Both are closed sets, everything the client sends is funneled through
// NormalizePinType / NormalizePinIcon before it reaches the database.
type PinType string

type PinIcon string

const (
	PinTypeHotel      PinType = "HOTEL"
	PinTypeFood       PinType = "FOOD"
	PinTypeAttraction PinType = "ATTRACTION"
	PinTypeCustom     PinType = "CUSTOM"
	PinTypeCar        PinType = "CAR"
	PinTypePin        PinType = "PIN"
)

const (
	PinIconPin        PinIcon = "PIN"
	PinIconCar        PinIcon = "CAR"
	PinIconHotel      PinIcon = "HOTEL"
	PinIconFood       PinIcon = "FOOD"
	PinIconAttraction PinIcon = "ATTRACTION"
)

var pinTypes = map[string]PinType{
	"HOTEL":      PinTypeHotel,
	"FOOD":       PinTypeFood,
	"ATTRACTION": PinTypeAttraction,
	"CUSTOM":     PinTypeCustom,
	"CAR":        PinTypeCar,
	"PIN":        PinTypePin,
}

var pinIcons = map[string]PinIcon{
	"PIN":        PinIconPin,
	"CAR":        PinIconCar,
	"HOTEL":      PinIconHotel,
	"FOOD":       PinIconFood,
	"ATTRACTION": PinIconAttraction,
}

// Extended categories the frontend may send that have no icon of their
// own all collapse onto the generic pin.
var iconFallbacks = map[string]PinIcon{
	"START":    PinIconPin,
	"END":      PinIconPin,
	"BIKE":     PinIconPin,
	"RICKSHAW": PinIconPin,
	"PLANE":    PinIconPin,
	"TRAIN":    PinIconPin,
}

// NormalizePinType maps a free-form type string onto the closed set.
// Unrecognized or absent input becomes CUSTOM.
func NormalizePinType(raw string) PinType {
	if t, ok := pinTypes[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return t
	}
	return PinTypeCustom
}

// NormalizePinIcon resolves the display icon. The explicit icon wins
// when it maps; otherwise the already-normalized type is tried against
// the icon set, then the fallback table, and finally the generic PIN.
// It never fails.
func NormalizePinIcon(rawIcon string, normalizedType PinType) PinIcon {
	candidate := strings.ToUpper(strings.TrimSpace(rawIcon))
	if candidate == "" {
		candidate = string(normalizedType)
	}

	if icon, ok := pinIcons[candidate]; ok {
		return icon
	}
	if icon, ok := iconFallbacks[candidate]; ok {
		return icon
	}
	return PinIconPin
}

type Pin struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index"` // denormalized itinerary owner
	Latitude    float64
	Longitude   float64
	Title       string
	Description string
	Type        PinType `gorm:"type:varchar(20)"`
	Icon        PinIcon `gorm:"type:varchar(20)"`
	OrderIndex  int
	Day         int
	Date        *time.Time
}
