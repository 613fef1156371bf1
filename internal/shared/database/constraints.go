package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds database-level constraints AutoMigrate does not cover
func MigrateConstraints(db *gorm.DB) error {
	// Foreign key so orphaned events cannot be inserted behind the API's back.
	// Postgres has no ADD CONSTRAINT IF NOT EXISTS, so drop and re-add.
	err := db.Exec(`
		ALTER TABLE events
		DROP CONSTRAINT IF EXISTS fk_events_venue;
	`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		ALTER TABLE events
		ADD CONSTRAINT fk_events_venue
		FOREIGN KEY (venue_id) REFERENCES venues (id);
	`).Error
	if err != nil {
		return err
	}

	// Index for the cascade delete and for eager venue loads
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_events_venue_id
		ON events (venue_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
