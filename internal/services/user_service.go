package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tripline/internal/models/db_models"
	"tripline/internal/models/request_models"
	"tripline/internal/models/response_models"
	"tripline/internal/repositories"
	"tripline/pkg/utils"
)

type UserServiceInterface interface {
	UpsertProfile(ctx context.Context, req request_models.UpsertUserRequest) (*response_models.UserResponse, error)
	GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
	}
}

// UpsertProfile writes the profile row keyed by the externally issued
// id. A username collision is retried exactly once with a deterministic
// suffix derived from the id; any further failure surfaces as-is.
func (s *UserService) UpsertProfile(ctx context.Context, req request_models.UpsertUserRequest) (*response_models.UserResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, utils.ErrInvalidInput
	}

	user := &db_models.User{
		ID:        id,
		Username:  username,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
	}

	err = s.userRepo.Upsert(ctx, user)
	if err != nil && repositories.IsUniqueViolation(err) {
		user.Username = username + "_" + strings.ReplaceAll(id.String(), "-", "")[:8]
		err = s.userRepo.Upsert(ctx, user)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	return &response_models.UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}, nil
}
