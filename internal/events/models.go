package events

import (
	"time"

	"venuehub/internal/venues"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string        `json:"title" gorm:"not null;size:255"`
	Description string        `json:"description" gorm:"type:text"`
	Date        time.Time     `json:"date" gorm:"not null"`
	VenueID     uuid.UUID     `json:"venue_id" gorm:"type:uuid;not null;index"`
	Venue       *venues.Venue `json:"-" gorm:"foreignKey:VenueID"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

type PaginatedEvents struct {
	Events     []Event
	TotalCount int64
	Page       int
	PerPage    int
	LastPage   int
}
