package services

import (
	"fmt"
	"testing"
	"time"

	"bloodlink_backend/internal/repositories"
	"bloodlink_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEventService() (*eventService, *time.Time) {
	clock := testNow
	svc := NewEventService(repositories.NewEventRepository(storage.NewMemory())).(*eventService)
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("ev_%d", seq)
	}
	svc.now = func() time.Time { return clock }
	return svc, &clock
}

func validEvent(daysFromNow int) CreateEventRequest {
	return CreateEventRequest{
		Title:        "Mega Blood Donation Camp",
		Organization: "Red Cross Society",
		Date:         testNow.AddDate(0, 0, daysFromNow).Format("2006-01-02"),
		Time:         "9:00 AM - 4:00 PM",
		State:        "Tamil Nadu",
		District:     "Chennai",
		City:         "Chennai",
		Description:  "Annual donation drive",
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc, _ := newTestEventService()

	_, err := svc.Create(CreateEventRequest{Date: "June 20"}, "Priya", "id_1")
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Fields, "title")
	assert.Contains(t, vErr.Fields, "organization")
	assert.Contains(t, vErr.Fields, "date")
	assert.Contains(t, vErr.Fields, "city")
}

func TestCreateEventRejectsPastDate(t *testing.T) {
	svc, _ := newTestEventService()
	_, err := svc.Create(validEvent(-1), "Priya", "id_1")
	assert.ErrorIs(t, err, ErrEventDateInPast)
}

func TestCreateEventTodayAllowed(t *testing.T) {
	svc, _ := newTestEventService()

	view, err := svc.Create(validEvent(0), "Priya", "id_1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.DaysRemaining)
	assert.Equal(t, "Today", view.DaysLabel)
}

func TestCreateEventDerivesWeekdayAndCreator(t *testing.T) {
	svc, _ := newTestEventService()

	view, err := svc.Create(validEvent(7), "Priya Subramanian", "donor_9")
	require.NoError(t, err)
	// testNow is Sunday June 15 2025, so +7 days is also a Sunday.
	assert.Equal(t, "Sunday", view.Day)
	assert.Equal(t, "Priya Subramanian", view.CreatedBy)
	assert.Equal(t, "donor_9", view.CreatedByID)
	assert.Equal(t, 7, view.DaysRemaining)
	assert.Equal(t, "7 Days Left", view.DaysLabel)
	assert.Contains(t, view.QRCodeURL, "api.qrserver.com")
	assert.Contains(t, view.QRCodeURL, "size=150x150")
}

func TestListEventsSoonestFirst(t *testing.T) {
	svc, _ := newTestEventService()

	_, err := svc.Create(validEvent(10), "Priya", "id_1")
	require.NoError(t, err)
	near, err := svc.Create(validEvent(2), "Priya", "id_1")
	require.NoError(t, err)

	views, err := svc.List()
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, near.ID, views[0].ID)
}

func TestPruneExpiredEvents(t *testing.T) {
	svc, clock := newTestEventService()

	_, err := svc.Create(validEvent(0), "Priya", "id_1")
	require.NoError(t, err)
	future, err := svc.Create(validEvent(30), "Priya", "id_1")
	require.NoError(t, err)

	// Nothing to prune yet: today's event survives until tomorrow.
	removed, err := svc.PruneExpired()
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	*clock = clock.AddDate(0, 0, 1)
	removed, err = svc.PruneExpired()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	views, err := svc.List()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, future.ID, views[0].ID)
}

func TestListPrunesOnTheWayOut(t *testing.T) {
	svc, clock := newTestEventService()

	_, err := svc.Create(validEvent(1), "Priya", "id_1")
	require.NoError(t, err)

	*clock = clock.AddDate(0, 0, 5)
	views, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, views)
}
