package repositories

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripline/internal/models/db_models"
)

type UserRepository interface {
	// Upsert inserts the profile row or, when the id already exists,
	// updates the mutable columns. A username collision surfaces as a
	// unique-violation error for the service to handle.
	Upsert(ctx context.Context, user *db_models.User) error

	GetByID(ctx context.Context, id string) (*db_models.User, error)
	ListByIDs(ctx context.Context, ids []string) ([]db_models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// IsUniqueViolation reports whether err is a unique-constraint failure,
// either as a raw driver error or already translated by gorm.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *userRepository) Upsert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "email", "avatar_url", "updated_at"}),
		}).
		Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListByIDs(ctx context.Context, ids []string) ([]db_models.User, error) {
	var users []db_models.User
	if len(ids) == 0 {
		return users, nil
	}

	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
