package events

import (
	"context"
	"errors"
	"fmt"

	"venuehub/internal/venues"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrVenueNotFound = venues.ErrVenueNotFound
)

// PerPage is the fixed page size for event listings.
const PerPage = 25

type Service interface {
	List(ctx context.Context, page int) (*PaginatedEvents, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, req CreateEventRequest) (*Event, error)
	Update(ctx context.Context, id string, req UpdateEventRequest) (*Event, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	venueRepo venues.Repository
}

func NewService(repo Repository, venueRepo venues.Repository) Service {
	return &service{
		repo:      repo,
		venueRepo: venueRepo,
	}
}

func (s *service) List(ctx context.Context, page int) (*PaginatedEvents, error) {
	if page <= 0 {
		page = 1
	}

	eventList, total, err := s.repo.GetAll(ctx, page, PerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	lastPage := int((total + PerPage - 1) / PerPage)
	if lastPage == 0 {
		lastPage = 1
	}

	return &PaginatedEvents{
		Events:     eventList,
		TotalCount: total,
		Page:       page,
		PerPage:    PerPage,
		LastPage:   lastPage,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrEventNotFound
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *service) Create(ctx context.Context, req CreateEventRequest) (*Event, error) {
	venueID, err := s.resolveVenue(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}

	event := &Event{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date.Time,
		VenueID:     venueID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	// Reload with the venue attached for the response
	return s.repo.GetByID(ctx, event.ID)
}

func (s *service) Update(ctx context.Context, id string, req UpdateEventRequest) (*Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrEventNotFound
	}

	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	updates := make(map[string]interface{})

	// Resolve the venue before merging anything so a bad reference
	// leaves the event untouched
	if req.VenueID != nil {
		venueID, err := s.resolveVenue(ctx, *req.VenueID)
		if err != nil {
			return nil, err
		}
		updates["venue_id"] = venueID
	}

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Date != nil {
		updates["date"] = req.Date.Time
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, eventID, updates); err != nil {
			return nil, fmt.Errorf("failed to update event: %w", err)
		}
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated event: %w", err)
	}

	return event, nil
}

// Delete is idempotent: a missing or malformed id is already gone.
func (s *service) Delete(ctx context.Context, id string) error {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil
	}

	if err := s.repo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

// resolveVenue parses and verifies a venue reference.
func (s *service) resolveVenue(ctx context.Context, id string) (uuid.UUID, error) {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrVenueNotFound
	}

	exists, err := s.venueRepo.Exists(ctx, venueID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to check venue: %w", err)
	}
	if !exists {
		return uuid.Nil, ErrVenueNotFound
	}

	return venueID, nil
}
