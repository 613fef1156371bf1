package events_test

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

type eventFixture struct {
	svc   events.Service
	db    *gorm.DB
	venue *venues.Venue
}

func setupEventService(t *testing.T) *eventFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&venues.Venue{}, &events.Event{}))

	venue := &venues.Venue{
		ID:         uuid.New(),
		Name:       "Town Hall",
		Capacity:   500,
		Address:    "1 Main Street",
		City:       "Wellington",
		State:      "WG",
		Country:    "NZ",
		PostalCode: "6011",
		Website:    "https://townhall.example.com",
	}
	require.NoError(t, db.Create(venue).Error)

	svc := events.NewService(events.NewRepository(db), venues.NewRepository(db))

	return &eventFixture{svc: svc, db: db, venue: venue}
}

func sampleEventRequest(venueID string) events.CreateEventRequest {
	date, _ := time.Parse("2006-01-02 15:04:05", "2027-03-14 19:30:00")
	return events.CreateEventRequest{
		Title:       "Opening Night",
		Description: "A night to remember",
		Date:        events.DateTime{Time: date},
		VenueID:     venueID,
	}
}

func TestCreateEvent(t *testing.T) {
	f := setupEventService(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, sampleEventRequest(f.venue.ID.String()))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, "Opening Night", created.Title)
	require.Equal(t, f.venue.ID, created.VenueID)

	// Venue comes back loaded with the event
	require.NotNil(t, created.Venue)
	require.Equal(t, "Town Hall", created.Venue.Name)
}

func TestCreateEventVenueNotFound(t *testing.T) {
	f := setupEventService(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, sampleEventRequest(uuid.NewString()))
	require.ErrorIs(t, err, events.ErrVenueNotFound)

	_, err = f.svc.Create(ctx, sampleEventRequest("not-a-uuid"))
	require.ErrorIs(t, err, events.ErrVenueNotFound)

	// Nothing was persisted
	var count int64
	require.NoError(t, f.db.Model(&events.Event{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestGetEventNotFound(t *testing.T) {
	f := setupEventService(t)

	_, err := f.svc.GetByID(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, events.ErrEventNotFound)

	_, err = f.svc.GetByID(context.Background(), "garbage")
	require.ErrorIs(t, err, events.ErrEventNotFound)
}

func TestUpdateEventPartial(t *testing.T) {
	f := setupEventService(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, sampleEventRequest(f.venue.ID.String()))
	require.NoError(t, err)

	newTitle := "Closing Night"
	updated, err := f.svc.Update(ctx, created.ID.String(), events.UpdateEventRequest{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, "Closing Night", updated.Title)
	require.Equal(t, created.Description, updated.Description)
	require.Equal(t, created.VenueID, updated.VenueID)
	require.True(t, created.Date.Equal(updated.Date))
}

func TestUpdateEventBadVenueLeavesEventUntouched(t *testing.T) {
	f := setupEventService(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, sampleEventRequest(f.venue.ID.String()))
	require.NoError(t, err)

	// Title change paired with a bad venue reference must be rejected whole
	newTitle := "Should Not Stick"
	badVenue := uuid.NewString()
	_, err = f.svc.Update(ctx, created.ID.String(), events.UpdateEventRequest{
		Title:   &newTitle,
		VenueID: &badVenue,
	})
	require.ErrorIs(t, err, events.ErrVenueNotFound)

	current, err := f.svc.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	require.Equal(t, "Opening Night", current.Title)
	require.Equal(t, f.venue.ID, current.VenueID)
}

func TestUpdateEventMoveVenue(t *testing.T) {
	f := setupEventService(t)
	ctx := context.Background()

	other := &venues.Venue{
		ID:         uuid.New(),
		Name:       "Arena",
		Capacity:   8000,
		Address:    "2 Stadium Road",
		City:       "Auckland",
		State:      "AK",
		Country:    "NZ",
		PostalCode: "1010",
		Website:    "https://arena.example.com",
	}
	require.NoError(t, f.db.Create(other).Error)

	created, err := f.svc.Create(ctx, sampleEventRequest(f.venue.ID.String()))
	require.NoError(t, err)

	otherID := other.ID.String()
	updated, err := f.svc.Update(ctx, created.ID.String(), events.UpdateEventRequest{VenueID: &otherID})
	require.NoError(t, err)
	require.Equal(t, other.ID, updated.VenueID)
	require.NotNil(t, updated.Venue)
	require.Equal(t, "Arena", updated.Venue.Name)
}

func TestUpdateEventNotFound(t *testing.T) {
	f := setupEventService(t)

	title := "Whatever"
	_, err := f.svc.Update(context.Background(), uuid.NewString(), events.UpdateEventRequest{Title: &title})
	require.ErrorIs(t, err, events.ErrEventNotFound)
}

func TestListEventsPagination(t *testing.T) {
	f := setupEventService(t)
	ctx := context.Background()

	for i := 0; i < 27; i++ {
		req := sampleEventRequest(f.venue.ID.String())
		req.Title = fmt.Sprintf("Event %02d", i)
		_, err := f.svc.Create(ctx, req)
		require.NoError(t, err)
	}

	page1, err := f.svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page1.Events, 25)
	require.EqualValues(t, 27, page1.TotalCount)
	require.Equal(t, 2, page1.LastPage)

	// Every listed event carries its venue
	for _, e := range page1.Events {
		require.NotNil(t, e.Venue)
	}

	page2, err := f.svc.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, page2.Events, 2)
}

func TestDeleteEventIdempotent(t *testing.T) {
	f := setupEventService(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, sampleEventRequest(f.venue.ID.String()))
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID.String()))

	_, err = f.svc.GetByID(ctx, created.ID.String())
	require.ErrorIs(t, err, events.ErrEventNotFound)

	require.NoError(t, f.svc.Delete(ctx, created.ID.String()))
	require.NoError(t, f.svc.Delete(ctx, "not-a-uuid"))
}
