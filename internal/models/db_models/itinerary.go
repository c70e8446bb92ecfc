package db_models

import "github.com/google/uuid"

type Itinerary struct {
	BaseModel
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Description string
	IsPublic    bool `gorm:"default:false"`

	Pins []Pin
}
