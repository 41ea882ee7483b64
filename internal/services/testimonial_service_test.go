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

func newTestTestimonialService() (*testimonialService, *time.Time) {
	clock := testNow
	svc := NewTestimonialService(repositories.NewTestimonialRepository(storage.NewMemory())).(*testimonialService)
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("ts_%d", seq)
	}
	svc.now = func() time.Time { return clock }
	return svc, &clock
}

func validTestimonial() CreateTestimonialRequest {
	return CreateTestimonialRequest{
		Name:        "Meena Iyer",
		Role:        "Donor",
		FeedbackFor: "Website",
		Content:     "Found a donor within hours. Thank you!",
		Rating:      4,
	}
}

func TestCreateTestimonialValidation(t *testing.T) {
	svc, _ := newTestTestimonialService()

	_, err := svc.Create(CreateTestimonialRequest{Role: "Stranger", FeedbackFor: "Weather"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Fields, "name")
	assert.Contains(t, vErr.Fields, "content")
	assert.Contains(t, vErr.Fields, "role")
	assert.Contains(t, vErr.Fields, "feedback_for")
}

func TestCreateTestimonialClampsRating(t *testing.T) {
	svc, _ := newTestTestimonialService()

	high := validTestimonial()
	high.Rating = 11
	created, err := svc.Create(high)
	require.NoError(t, err)
	assert.Equal(t, 5, created.Rating)

	low := validTestimonial()
	low.Rating = -3
	created, err = svc.Create(low)
	require.NoError(t, err)
	assert.Equal(t, 1, created.Rating)
}

func TestListTestimonialsFilterAndSort(t *testing.T) {
	svc, clock := newTestTestimonialService()

	first := validTestimonial()
	first.Name = "First"
	_, err := svc.Create(first)
	require.NoError(t, err)

	*clock = clock.Add(time.Hour)
	second := validTestimonial()
	second.Name = "Second"
	second.FeedbackFor = "Experience"
	second.Role = "Receiver"
	_, err = svc.Create(second)
	require.NoError(t, err)

	// Default sort: newest first.
	views, err := svc.List(TestimonialQuery{})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Second", views[0].Name)
	assert.Equal(t, "Just now", views[0].PostedAgo)
	assert.Equal(t, "1h ago", views[1].PostedAgo)

	// Oldest first.
	views, err = svc.List(TestimonialQuery{Sort: "oldest"})
	require.NoError(t, err)
	assert.Equal(t, "First", views[0].Name)

	// Subject filter.
	views, err = svc.List(TestimonialQuery{FeedbackFor: "Experience"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Second", views[0].Name)
}
