package models

import "time"

// Event represents a scheduled donation camp. Date must not be in the past
// at creation time; expired events are purged by the periodic sweep.
type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	Date         string    `json:"date"` // YYYY-MM-DD
	Time         string    `json:"time,omitempty"`
	Day          string    `json:"day,omitempty"` // weekday name derived from Date
	State        string    `json:"state"`
	District     string    `json:"district"`
	City         string    `json:"city"`
	Description  string    `json:"description,omitempty"`
	CreatedBy    string    `json:"created_by"`
	CreatedByID  string    `json:"created_by_id"`
	CreatedAt    time.Time `json:"created_at"`
}
