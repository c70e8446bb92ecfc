package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripline/internal/models/db_models"
)

type FollowRepository interface {
	// Create is idempotent: an existing relation is left as-is.
	Create(ctx context.Context, followerID, followeeID uuid.UUID) error
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) error

	ListFollowerIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
	ListFolloweeIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, followerID, followeeID uuid.UUID) error {
	var existing db_models.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	follow := db_models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	return r.db.WithContext(ctx).Create(&follow).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&db_models.Follow{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *followRepository) ListFollowerIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&db_models.Follow{}).
		Where("followee_id = ?", userID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *followRepository) ListFolloweeIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&db_models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
