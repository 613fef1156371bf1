package events

import (
	"time"

	"venuehub/internal/venues"
)

type EventResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	DateTime    time.Time             `json:"date_time"`
	Date        string                `json:"date"`
	Time        string                `json:"time"`
	Venue       *venues.VenueResponse `json:"venue,omitempty"`
}

// ToResponse maps an Event row to its API shape. The venue is rendered
// only when it was loaded with the row.
func (e *Event) ToResponse() EventResponse {
	resp := EventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		DateTime:    e.Date,
		Date:        e.Date.Format("2006-01-02"),
		Time:        e.Date.Format("15:04"),
	}

	if e.Venue != nil {
		venueResp := e.Venue.ToResponse()
		resp.Venue = &venueResp
	}

	return resp
}

func ToResponseList(eventList []Event) []EventResponse {
	responses := make([]EventResponse, len(eventList))
	for i := range eventList {
		responses[i] = eventList[i].ToResponse()
	}
	return responses
}
