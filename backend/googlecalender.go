package main

import (
	"context"
	"os"
	"time"

	"github.com/Arch-4ng3l/FamilyCalendar/backend/config"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type GoogleCalendar struct {
	service *calendar.Service
}

func NewGoogleCalendar(ctx context.Context, cfg config.Config) (*GoogleCalendar, error) {
	data, err := os.ReadFile(cfg.GoogleCredentialsFile)
	if err != nil {
		return nil, err
	}

	creds, err := google.CredentialsFromJSON(ctx, data, calendar.CalendarScope)
	if err != nil {
		return nil, err
	}

	srv, err := calendar.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, err
	}

	return &GoogleCalendar{
		service: srv,
	}, nil
}

func (c *GoogleCalendar) CreateCalendar(ctx context.Context, title string) (string, error) {
	created, err := c.service.Calendars.Insert(&calendar.Calendar{
		Summary: title,
	}).Context(ctx).Do()
	if err != nil {
		return "", &CalendarError{Op: "create calendar", Err: err}
	}
	return created.Id, nil
}

func (c *GoogleCalendar) InsertEvent(ctx context.Context, calendarID string, event CalendarEvent) (string, error) {
	googleEvent := &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &calendar.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
		},
	}

	created, err := c.service.Events.Insert(calendarID, googleEvent).Context(ctx).Do()
	if err != nil {
		return "", &CalendarError{Op: "insert event", Err: err}
	}
	return created.Id, nil
}

func (c *GoogleCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.service.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return &CalendarError{Op: "delete event", Err: err}
	}
	return nil
}
