package venues

import (
	"time"

	"github.com/google/uuid"
)

type Venue struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"not null;size:255"`
	Capacity   int       `json:"capacity" gorm:"not null;check:capacity >= 1"`
	Address    string    `json:"address" gorm:"not null;size:255"`
	City       string    `json:"city" gorm:"not null;size:255"`
	State      string    `json:"state" gorm:"not null;size:2"`
	Country    string    `json:"country" gorm:"not null;size:2"`
	PostalCode string    `json:"postal_code" gorm:"not null;size:20"`
	Website    string    `json:"website" gorm:"not null;size:255"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type PaginatedVenues struct {
	Venues     []Venue
	TotalCount int64
	Page       int
	PerPage    int
	LastPage   int
}
