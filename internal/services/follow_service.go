package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripline/internal/models/response_models"
	"tripline/internal/repositories"
	"tripline/pkg/utils"
)

type FollowServiceInterface interface {
	Follow(ctx context.Context, followerID uuid.UUID, followeeID string) error
	Unfollow(ctx context.Context, followerID uuid.UUID, followeeID string) error
	ListFollowers(ctx context.Context, userID uuid.UUID) (*response_models.FollowListResponse, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) (*response_models.FollowListResponse, error)
}

type FollowService struct {
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
}

func NewFollowService(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) FollowServiceInterface {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *FollowService) Follow(ctx context.Context, followerID uuid.UUID, followeeID string) error {
	followee, err := uuid.Parse(followeeID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	if followee == followerID {
		return utils.ErrSelfFollow
	}

	target, err := s.userRepo.GetByID(ctx, followee.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if target == nil {
		return utils.ErrUserNotFound
	}

	if err := s.followRepo.Create(ctx, followerID, followee); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID uuid.UUID, followeeID string) error {
	followee, err := uuid.Parse(followeeID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	err = s.followRepo.Delete(ctx, followerID, followee)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrFollowNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *FollowService) listProfiles(ctx context.Context, ids []string) (*response_models.FollowListResponse, error) {
	users, err := s.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.FollowListResponse{
		Users: make([]response_models.UserResponse, 0, len(users)),
	}
	for _, u := range users {
		out.Users = append(out.Users, response_models.UserResponse{
			ID:        u.ID.String(),
			Username:  u.Username,
			AvatarURL: u.AvatarURL,
		})
	}
	out.Count = len(out.Users)
	return out, nil
}

func (s *FollowService) ListFollowers(ctx context.Context, userID uuid.UUID) (*response_models.FollowListResponse, error) {
	ids, err := s.followRepo.ListFollowerIDs(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.listProfiles(ctx, ids)
}

func (s *FollowService) ListFollowing(ctx context.Context, userID uuid.UUID) (*response_models.FollowListResponse, error) {
	ids, err := s.followRepo.ListFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.listProfiles(ctx, ids)
}
