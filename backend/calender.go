package main

import (
	"context"
	"time"
)

type CalendarEvent struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// Calendar is the external calendar service holding the authoritative
// schedule mirror. InsertEvent returns the external event id.
type Calendar interface {
	CreateCalendar(ctx context.Context, title string) (string, error)
	InsertEvent(ctx context.Context, calendarID string, event CalendarEvent) (string, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
