package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripline/internal/models/db_models"
)

type ChatRepository interface {
	CreateChat(ctx context.Context, chat *db_models.Chat) error
	GetChatWithMessages(ctx context.Context, chatID string) (*db_models.Chat, error)
	ListChatsByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]db_models.Chat, error)
	AppendMessage(ctx context.Context, message *db_models.Message) error
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateChat(ctx context.Context, chat *db_models.Chat) error {
	return r.db.WithContext(ctx).Create(chat).Error
}

func (r *chatRepository) GetChatWithMessages(ctx context.Context, chatID string) (*db_models.Chat, error) {
	var chat db_models.Chat
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&chat, "id = ?", chatID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepository) ListChatsByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]db_models.Chat, error) {
	var chats []db_models.Chat

	query := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatRepository) AppendMessage(ctx context.Context, message *db_models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}
