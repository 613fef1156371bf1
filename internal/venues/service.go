package venues

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrVenueNotFound = errors.New("venue not found")

// PerPage is the fixed page size for venue listings.
const PerPage = 25

type Service interface {
	List(ctx context.Context, page int) (*PaginatedVenues, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	Create(ctx context.Context, req CreateVenueRequest) (*Venue, error)
	Update(ctx context.Context, id string, req UpdateVenueRequest) (*Venue, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, page int) (*PaginatedVenues, error) {
	if page <= 0 {
		page = 1
	}

	venueList, total, err := s.repo.GetAll(ctx, page, PerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	lastPage := int((total + PerPage - 1) / PerPage)
	if lastPage == 0 {
		lastPage = 1
	}

	return &PaginatedVenues{
		Venues:     venueList,
		TotalCount: total,
		Page:       page,
		PerPage:    PerPage,
		LastPage:   lastPage,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Venue, error) {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrVenueNotFound
	}

	venue, err := s.repo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	return venue, nil
}

func (s *service) Create(ctx context.Context, req CreateVenueRequest) (*Venue, error) {
	venue := &Venue{
		ID:         uuid.New(),
		Name:       req.Name,
		Capacity:   req.Capacity,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		Website:    req.Website,
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	return venue, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateVenueRequest) (*Venue, error) {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrVenueNotFound
	}

	if _, err := s.repo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, venueID, updates); err != nil {
			return nil, fmt.Errorf("failed to update venue: %w", err)
		}
	}

	venue, err := s.repo.GetByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated venue: %w", err)
	}

	return venue, nil
}

// Delete is idempotent: a missing or malformed id is already gone.
func (s *service) Delete(ctx context.Context, id string) error {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return nil
	}

	if err := s.repo.Delete(ctx, venueID); err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	return nil
}
