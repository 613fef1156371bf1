package venues_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"venuehub/internal/events"
	"venuehub/internal/venues"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&venues.Venue{}, &events.Event{}))

	return db
}

func newVenueService(t *testing.T) (venues.Service, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return venues.NewService(venues.NewRepository(db)), db
}

func sampleVenueRequest() venues.CreateVenueRequest {
	return venues.CreateVenueRequest{
		Name:       "Venue Name",
		Capacity:   1000,
		Address:    "Address line 1",
		City:       "Nelson",
		State:      "NS",
		Country:    "NZ",
		PostalCode: "10000",
		Website:    "https://venuename.com",
	}
}

func TestCreateAndGetVenue(t *testing.T) {
	svc, _ := newVenueService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleVenueRequest())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	fetched, err := svc.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, "Venue Name", fetched.Name)
	require.Equal(t, 1000, fetched.Capacity)
	require.Equal(t, "NS", fetched.State)
	require.Equal(t, "NZ", fetched.Country)
	require.Equal(t, "10000", fetched.PostalCode)
	require.Equal(t, "https://venuename.com", fetched.Website)
}

func TestGetVenueNotFound(t *testing.T) {
	svc, _ := newVenueService(t)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, uuid.NewString())
	require.ErrorIs(t, err, venues.ErrVenueNotFound)

	_, err = svc.GetByID(ctx, "not-a-uuid")
	require.ErrorIs(t, err, venues.ErrVenueNotFound)
}

func TestListVenuesPagination(t *testing.T) {
	svc, _ := newVenueService(t)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		req := sampleVenueRequest()
		req.Name = fmt.Sprintf("Venue %02d", i)
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	page1, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page1.Venues, 25)
	require.EqualValues(t, 30, page1.TotalCount)
	require.Equal(t, 1, page1.Page)
	require.Equal(t, 25, page1.PerPage)
	require.Equal(t, 2, page1.LastPage)

	page2, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, page2.Venues, 5)
	require.Equal(t, 2, page2.Page)

	// Pages must not overlap
	seen := make(map[uuid.UUID]bool)
	for _, v := range page1.Venues {
		seen[v.ID] = true
	}
	for _, v := range page2.Venues {
		require.False(t, seen[v.ID])
	}

	// Page zero falls back to the first page
	fallback, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, 1, fallback.Page)
	require.Len(t, fallback.Venues, 25)
}

func TestListVenuesEmpty(t *testing.T) {
	svc, _ := newVenueService(t)

	result, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Empty(t, result.Venues)
	require.EqualValues(t, 0, result.TotalCount)
	require.Equal(t, 1, result.LastPage)
}

func TestUpdateVenuePartial(t *testing.T) {
	svc, _ := newVenueService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleVenueRequest())
	require.NoError(t, err)

	newName := "Renamed Venue"
	newCapacity := 2500
	updated, err := svc.Update(ctx, created.ID.String(), venues.UpdateVenueRequest{
		Name:     &newName,
		Capacity: &newCapacity,
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed Venue", updated.Name)
	require.Equal(t, 2500, updated.Capacity)

	// Untouched fields survive the partial update
	require.Equal(t, "Nelson", updated.City)
	require.Equal(t, "https://venuename.com", updated.Website)
}

func TestUpdateVenueEmptyPayload(t *testing.T) {
	svc, _ := newVenueService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleVenueRequest())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID.String(), venues.UpdateVenueRequest{})
	require.NoError(t, err)
	require.Equal(t, created.Name, updated.Name)
	require.Equal(t, created.Capacity, updated.Capacity)
}

func TestUpdateVenueNotFound(t *testing.T) {
	svc, _ := newVenueService(t)

	name := "Does Not Matter"
	_, err := svc.Update(context.Background(), uuid.NewString(), venues.UpdateVenueRequest{Name: &name})
	require.ErrorIs(t, err, venues.ErrVenueNotFound)
}

func TestDeleteVenueIdempotent(t *testing.T) {
	svc, _ := newVenueService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleVenueRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID.String()))

	_, err = svc.GetByID(ctx, created.ID.String())
	require.ErrorIs(t, err, venues.ErrVenueNotFound)

	// Deleting again, or deleting garbage, still succeeds
	require.NoError(t, svc.Delete(ctx, created.ID.String()))
	require.NoError(t, svc.Delete(ctx, uuid.NewString()))
	require.NoError(t, svc.Delete(ctx, "not-a-uuid"))
}

func TestDeleteVenueCascadesEvents(t *testing.T) {
	svc, db := newVenueService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleVenueRequest())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		event := events.Event{
			ID:          uuid.New(),
			Title:       fmt.Sprintf("Event %d", i),
			Description: "Something happening",
			Date:        time.Now().Add(24 * time.Hour),
			VenueID:     created.ID,
		}
		require.NoError(t, db.Create(&event).Error)
	}

	require.NoError(t, svc.Delete(ctx, created.ID.String()))

	var remaining int64
	require.NoError(t, db.Model(&events.Event{}).Where("venue_id = ?", created.ID).Count(&remaining).Error)
	require.EqualValues(t, 0, remaining)
}
