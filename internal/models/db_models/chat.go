package db_models

import "github.com/google/uuid"

const (
	MessageSenderUser = "user"
	MessageSenderAI   = "ai"
)

type Chat struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
	Title   string

	Messages []Message
}

type Message struct {
	BaseModel
	ChatID  uuid.UUID `gorm:"type:uuid;index"`
	Sender  string    `gorm:"type:varchar(10)"` // user | ai
	Content string    `gorm:"type:text"`
}
