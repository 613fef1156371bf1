package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"venuehub/internal/events"
	"venuehub/internal/shared/config"
	"venuehub/internal/shared/database"
	"venuehub/internal/users"
	"venuehub/internal/venues"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting VenueHub Database Seeder...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"events",
		"venues",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	venueIDs, err := s.SeedVenues()
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	if err := s.SeedEvents(venueIDs); err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	// Clear Redis state so old denylisted tokens don't linger
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis: %v", err)
	}

	return nil
}

// SeedUsers creates a demo user for API access
func (s *Seeder) SeedUsers() error {
	fmt.Println("  👤 Seeding users...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := users.User{
		ID:        uuid.New(),
		Name:      "Demo User",
		Email:     "demo@venuehub.test",
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.Email, err)
	}

	fmt.Printf("    ✅ Created user: %s\n", user.Email)
	return nil
}

// SeedVenues creates sample venues
func (s *Seeder) SeedVenues() ([]uuid.UUID, error) {
	fmt.Println("  🏟️ Seeding venues...")

	var venueIDs []uuid.UUID

	venuesData := []venues.Venue{
		{
			Name:       "Grand Opera House",
			Capacity:   1200,
			Address:    "100 Symphony Lane",
			City:       "Wellington",
			State:      "WG",
			Country:    "NZ",
			PostalCode: "6011",
			Website:    "https://grandoperahouse.example.com",
		},
		{
			Name:       "Tech Hub Convention Center",
			Capacity:   3500,
			Address:    "42 Innovation Drive",
			City:       "Auckland",
			State:      "AK",
			Country:    "NZ",
			PostalCode: "1010",
			Website:    "https://techhub.example.com",
		},
		{
			Name:       "Central Park Pavilion",
			Capacity:   800,
			Address:    "1 Park Avenue",
			City:       "Christchurch",
			State:      "CH",
			Country:    "NZ",
			PostalCode: "8011",
			Website:    "https://parkpavilion.example.com",
		},
	}

	for _, v := range venuesData {
		v.ID = uuid.New()
		v.CreatedAt = time.Now()
		v.UpdatedAt = time.Now()

		if err := s.db.PostgreSQL.Create(&v).Error; err != nil {
			return nil, fmt.Errorf("failed to create venue %s: %w", v.Name, err)
		}

		venueIDs = append(venueIDs, v.ID)
		fmt.Printf("    ✅ Created venue: %s\n", v.Name)
	}

	return venueIDs, nil
}

// SeedEvents creates sample events
func (s *Seeder) SeedEvents(venueIDs []uuid.UUID) error {
	fmt.Println("  🎪 Seeding events...")

	eventsData := []struct {
		title       string
		description string
		venueIndex  int
		daysFromNow int
	}{
		{
			title:       "Classical Music Evening",
			description: "An elegant evening of classical music performed by renowned musicians.",
			venueIndex:  0,
			daysFromNow: 45,
		},
		{
			title:       "Tech Conference 2026",
			description: "Annual technology conference featuring the latest innovations and industry leaders.",
			venueIndex:  1,
			daysFromNow: 30,
		},
		{
			title:       "Startup Pitch Night",
			description: "Watch promising startups pitch their ideas to investors and industry experts.",
			venueIndex:  1,
			daysFromNow: 15,
		},
		{
			title:       "Food & Wine Festival",
			description: "A delightful festival celebrating local cuisine and fine wines.",
			venueIndex:  2,
			daysFromNow: 60,
		},
	}

	for _, eventData := range eventsData {
		event := events.Event{
			ID:          uuid.New(),
			Title:       eventData.title,
			Description: eventData.description,
			Date:        time.Now().AddDate(0, 0, eventData.daysFromNow),
			VenueID:     venueIDs[eventData.venueIndex],
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create event %s: %w", event.Title, err)
		}

		fmt.Printf("    ✅ Created event: %s\n", event.Title)
	}

	return nil
}
