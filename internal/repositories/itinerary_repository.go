package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripline/internal/models/db_models"
)

type ItineraryRepository interface {
	// CreateWithPins persists the itinerary and all its pins as one
	// transaction. Either every row commits or none do.
	CreateWithPins(ctx context.Context, itinerary *db_models.Itinerary, pins []db_models.Pin) error

	GetByIDWithPins(ctx context.Context, id string) (*db_models.Itinerary, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]db_models.Itinerary, error)
	SetPublic(ctx context.Context, id uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) CreateWithPins(ctx context.Context, itinerary *db_models.Itinerary, pins []db_models.Pin) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(itinerary).Error; err != nil {
			return err
		}

		for i := range pins {
			pins[i].ItineraryID = itinerary.ID
			pins[i].OwnerID = itinerary.OwnerID
		}
		if len(pins) > 0 {
			if err := tx.Create(&pins).Error; err != nil {
				return err
			}
		}

		itinerary.Pins = pins
		return nil
	})
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *itineraryRepository) GetByIDWithPins(ctx context.Context, id string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Pins", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&itinerary, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary

	query := r.db.WithContext(ctx).
		Preload("Pins").
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&itineraries).Error; err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) SetPublic(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Itinerary{}).
		Where("id = ?", id).
		Update("is_public", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
