package venues

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for venue operations
type Repository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetAll(ctx context.Context, page, perPage int) ([]Venue, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// repository implements Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new venue repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) GetAll(ctx context.Context, page, perPage int) ([]Venue, int64, error) {
	var venueList []Venue
	var total int64

	query := r.db.WithContext(ctx).Model(&Venue{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Insertion order keeps pages stable across requests
	offset := (page - 1) * perPage
	err := query.Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(perPage).
		Find(&venueList).Error
	if err != nil {
		return nil, 0, err
	}

	return venueList, total, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Venue{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the venue and its dependent events in one transaction.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM events WHERE venue_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete dependent events: %w", err)
		}

		if err := tx.Delete(&Venue{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete venue: %w", err)
		}

		return nil
	})
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Venue{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
