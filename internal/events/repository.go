package events

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for event operations
type Repository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	GetAll(ctx context.Context, page, perPage int) ([]Event, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetByID fetches the event with its venue eagerly attached.
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).Preload("Venue").First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) GetAll(ctx context.Context, page, perPage int) ([]Event, int64, error) {
	var eventList []Event
	var total int64

	query := r.db.WithContext(ctx).Model(&Event{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(perPage).
		Find(&eventList).Error
	if err != nil {
		return nil, 0, err
	}

	return eventList, total, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Event{}, "id = ?", id).Error
}
