package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// datetime layouts accepted on the wire, most common first
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// DateTime accepts both "2006-01-02 15:04:05" and RFC 3339 payloads.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, layout := range dateTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			d.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("invalid datetime %q", raw)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}

type CreateEventRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description" binding:"required"`
	Date        DateTime `json:"date" binding:"required"`
	VenueID     string   `json:"venue_id" binding:"required"`
}

type UpdateEventRequest struct {
	Title       *string   `json:"title" binding:"omitempty,max=255"`
	Description *string   `json:"description"`
	Date        *DateTime `json:"date"`
	VenueID     *string   `json:"venue_id"`
}
