package db_models

import "github.com/google/uuid"

// User is the profile row kept in sync with the hosted auth provider.
// The ID is issued externally, so no BeforeCreate hook generates it.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"uniqueIndex"`
	Email     string
	AvatarURL string
	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}
