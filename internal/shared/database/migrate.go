package database

import (
	"venuehub/internal/events"
	"venuehub/internal/users"
	"venuehub/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&venues.Venue{},
		&events.Event{},
	)
}
