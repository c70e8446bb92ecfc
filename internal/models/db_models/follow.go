package db_models

import "github.com/google/uuid"

type Follow struct {
	BaseModel
	FollowerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follower_followee"`
	FolloweeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follower_followee"`
}
