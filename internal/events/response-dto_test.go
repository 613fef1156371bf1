package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"venuehub/internal/events"
	"venuehub/internal/venues"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDateTimeAcceptsBothLayouts(t *testing.T) {
	var req events.CreateEventRequest

	payload := `{"title":"Show","description":"desc","date":"2027-03-14 19:30:00","venue_id":"` + uuid.NewString() + `"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	require.Equal(t, 2027, req.Date.Year())
	require.Equal(t, 19, req.Date.Hour())

	payload = `{"title":"Show","description":"desc","date":"2027-03-14T19:30:00Z","venue_id":"` + uuid.NewString() + `"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	require.Equal(t, 30, req.Date.Minute())
}

func TestDateTimeRejectsGarbage(t *testing.T) {
	var req events.CreateEventRequest

	payload := `{"title":"Show","description":"desc","date":"next tuesday","venue_id":"x"}`
	require.Error(t, json.Unmarshal([]byte(payload), &req))
}

func TestEventResponseSplitsDateAndTime(t *testing.T) {
	date, err := time.Parse("2006-01-02 15:04:05", "2027-03-14 19:30:00")
	require.NoError(t, err)

	event := events.Event{
		ID:          uuid.New(),
		Title:       "Opening Night",
		Description: "A night to remember",
		Date:        date,
	}

	resp := event.ToResponse()
	require.Equal(t, "2027-03-14", resp.Date)
	require.Equal(t, "19:30", resp.Time)
	require.True(t, date.Equal(resp.DateTime))
	require.Nil(t, resp.Venue)
}

func TestEventResponseIncludesLoadedVenue(t *testing.T) {
	venue := &venues.Venue{
		ID:       uuid.New(),
		Name:     "Town Hall",
		Capacity: 500,
	}

	event := events.Event{
		ID:      uuid.New(),
		Title:   "Opening Night",
		Date:    time.Now(),
		VenueID: venue.ID,
		Venue:   venue,
	}

	resp := event.ToResponse()
	require.NotNil(t, resp.Venue)
	require.Equal(t, venue.ID.String(), resp.Venue.ID)
	require.Equal(t, "Town Hall", resp.Venue.Name)
}
