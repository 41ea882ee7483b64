package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"time"

	"bloodlink_backend/internal/models"
	"bloodlink_backend/internal/repositories"
	"bloodlink_backend/pkg/utils"
)

var (
	ErrEventDateInPast = errors.New("event date cannot be in the past")
)

const qrAPIBase = "https://api.qrserver.com/v1/create-qr-code/"

// CreateEventRequest mirrors the organize-a-camp form. Creator fields come
// from the authenticated donor, not the payload.
type CreateEventRequest struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"`
	State        string `json:"state"`
	District     string `json:"district"`
	City         string `json:"city"`
	Description  string `json:"description"`
}

// EventView is an event annotated with the countdown badge and the QR image
// URL (third-party generator, URL only, no local rendering).
type EventView struct {
	models.Event
	DaysRemaining int    `json:"days_remaining"`
	DaysLabel     string `json:"days_label"`
	QRCodeURL     string `json:"qr_code_url"`
}

// --- EventService Interface ---
type EventService interface {
	Create(req CreateEventRequest, creatorName, creatorID string) (*EventView, error)
	List() ([]EventView, error)
	PruneExpired() (int, error)
	RunSweeper(ctx context.Context, interval time.Duration)
}

type eventService struct {
	eventRepo repositories.EventRepository

	newID func() string
	now   func() time.Time
}

// NewEventService creates a new instance of EventService.
func NewEventService(eventRepo repositories.EventRepository) EventService {
	return &eventService{
		eventRepo: eventRepo,
		newID:     utils.NanoID,
		now:       time.Now,
	}
}

func (s *eventService) validate(req CreateEventRequest) error {
	fields := map[string]string{}
	if utils.IsEmpty(req.Title) {
		fields["title"] = "Title is required"
	}
	if utils.IsEmpty(req.Organization) {
		fields["organization"] = "Organization is required"
	}
	if utils.IsEmpty(req.Date) {
		fields["date"] = "Date is required"
	} else if _, err := time.Parse(dateLayout, req.Date); err != nil {
		fields["date"] = "Date must be YYYY-MM-DD"
	}
	if utils.IsEmpty(req.State) {
		fields["state"] = "State is required"
	}
	if utils.IsEmpty(req.District) {
		fields["district"] = "District is required"
	}
	if utils.IsEmpty(req.City) {
		fields["city"] = "City is required"
	}
	return newValidationError(fields)
}

// Create validates the form, rejects past dates and derives the weekday name.
func (s *eventService) Create(req CreateEventRequest, creatorName, creatorID string) (*EventView, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, s.now().Location())
	if err != nil {
		return nil, newValidationError(map[string]string{"date": "Date must be YYYY-MM-DD"})
	}
	if midnight(date).Before(midnight(s.now())) {
		return nil, ErrEventDateInPast
	}

	event := &models.Event{
		ID:           s.newID(),
		Title:        req.Title,
		Organization: req.Organization,
		Date:         req.Date,
		Time:         req.Time,
		Day:          date.Weekday().String(),
		State:        req.State,
		District:     req.District,
		City:         req.City,
		Description:  req.Description,
		CreatedBy:    creatorName,
		CreatedByID:  creatorID,
		CreatedAt:    s.now(),
	}
	if err := s.eventRepo.CreateEvent(event); err != nil {
		return nil, fmt.Errorf("failed to create event in repository: %w", err)
	}
	v := s.view(*event)
	return &v, nil
}

func (s *eventService) view(e models.Event) EventView {
	days := 0
	if date, err := time.ParseInLocation(dateLayout, e.Date, s.now().Location()); err == nil {
		days = DaysRemaining(date, s.now())
	}
	return EventView{
		Event:         e,
		DaysRemaining: days,
		DaysLabel:     DaysRemainingLabel(days),
		QRCodeURL:     eventQRCodeURL(e),
	}
}

// eventQRCodeURL builds the third-party QR image link encoding the event
// summary scanned at check-in.
func eventQRCodeURL(e models.Event) string {
	payload, err := json.Marshal(map[string]string{
		"id":    e.ID,
		"title": e.Title,
		"org":   e.Organization,
		"date":  e.Date,
		"loc":   e.City + ", " + e.District,
	})
	if err != nil {
		return ""
	}
	q := url.Values{}
	q.Set("size", "150x150")
	q.Set("data", string(payload))
	return qrAPIBase + "?" + q.Encode()
}

// List prunes expired events first, then returns the survivors soonest-first.
func (s *eventService) List() ([]EventView, error) {
	if _, err := s.PruneExpired(); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.GetEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, s.view(e))
	}
	return views, nil
}

// PruneExpired removes events dated before today and destructively replaces
// the stored collection. An event dated exactly today survives. Unparseable
// dates are dropped with the expired ones. Returns how many were removed.
func (s *eventService) PruneExpired() (int, error) {
	events, err := s.eventRepo.GetEvents()
	if err != nil {
		return 0, fmt.Errorf("failed to load events for sweep: %w", err)
	}
	today := midnight(s.now())
	surviving := []models.Event{}
	for _, e := range events {
		date, err := time.ParseInLocation(dateLayout, e.Date, today.Location())
		if err != nil {
			continue
		}
		if !midnight(date).Before(today) {
			surviving = append(surviving, e)
		}
	}
	removed := len(events) - len(surviving)
	if removed > 0 {
		if err := s.eventRepo.ReplaceEvents(surviving); err != nil {
			return 0, fmt.Errorf("failed to compact events: %w", err)
		}
	}
	return removed, nil
}

// RunSweeper runs the expiry sweep once immediately and then on every tick
// until the context is cancelled.
func (s *eventService) RunSweeper(ctx context.Context, interval time.Duration) {
	sweep := func() {
		removed, err := s.PruneExpired()
		if err != nil {
			utils.LogError(err, "Event expiry sweep failed")
			return
		}
		if removed > 0 {
			utils.LogInfo("Expired events removed", map[string]interface{}{"count": removed})
		}
	}

	sweep()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}
