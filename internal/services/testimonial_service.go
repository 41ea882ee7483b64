package services

import (
	"fmt"
	"sort"
	"time"

	"bloodlink_backend/internal/models"
	"bloodlink_backend/internal/repositories"
	"bloodlink_backend/pkg/utils"
)

// CreateTestimonialRequest mirrors the share-your-story form.
type CreateTestimonialRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	FeedbackFor string `json:"feedback_for"`
	Content     string `json:"content"`
	Rating      int    `json:"rating"`
}

// TestimonialView is a testimonial annotated with its relative age.
type TestimonialView struct {
	models.Testimonial
	PostedAgo string `json:"posted_ago"`
}

// TestimonialQuery filters and orders the listing. Sort is "newest"
// (default) or "oldest"; FeedbackFor empty means all subjects.
type TestimonialQuery struct {
	FeedbackFor string
	Sort        string
}

// --- TestimonialService Interface ---
type TestimonialService interface {
	Create(req CreateTestimonialRequest) (*TestimonialView, error)
	List(q TestimonialQuery) ([]TestimonialView, error)
}

type testimonialService struct {
	testimonialRepo repositories.TestimonialRepository

	newID func() string
	now   func() time.Time
}

// NewTestimonialService creates a new instance of TestimonialService.
func NewTestimonialService(repo repositories.TestimonialRepository) TestimonialService {
	return &testimonialService{
		testimonialRepo: repo,
		newID:           utils.NanoID,
		now:             time.Now,
	}
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func (s *testimonialService) validate(req CreateTestimonialRequest) error {
	fields := map[string]string{}
	if utils.IsEmpty(req.Name) {
		fields["name"] = "Name is required"
	}
	if utils.IsEmpty(req.Content) {
		fields["content"] = "Message is required"
	}
	if !contains(models.TestimonialRoles, req.Role) {
		fields["role"] = "Role must be Donor, Receiver or Relative"
	}
	if !contains(models.TestimonialSubjects, req.FeedbackFor) {
		fields["feedback_for"] = "Feedback subject must be Website, Donor or Experience"
	}
	return newValidationError(fields)
}

// Create validates, clamps the rating to 1-5 and persists the testimonial.
func (s *testimonialService) Create(req CreateTestimonialRequest) (*TestimonialView, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	rating := req.Rating
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	record := &models.Testimonial{
		ID:          s.newID(),
		Name:        req.Name,
		Role:        req.Role,
		FeedbackFor: req.FeedbackFor,
		Content:     req.Content,
		Rating:      rating,
		CreatedAt:   s.now(),
	}
	if err := s.testimonialRepo.CreateTestimonial(record); err != nil {
		return nil, fmt.Errorf("failed to create testimonial in repository: %w", err)
	}
	v := TestimonialView{Testimonial: *record, PostedAgo: TimeAgo(record.CreatedAt, s.now())}
	return &v, nil
}

// List returns testimonials matching the optional subject filter, ordered
// by creation time.
func (s *testimonialService) List(q TestimonialQuery) ([]TestimonialView, error) {
	testimonials, err := s.testimonialRepo.GetTestimonials()
	if err != nil {
		return nil, fmt.Errorf("failed to load testimonials: %w", err)
	}

	filtered := []models.Testimonial{}
	for _, t := range testimonials {
		if q.FeedbackFor != "" && t.FeedbackFor != q.FeedbackFor {
			continue
		}
		filtered = append(filtered, t)
	}

	if q.Sort == "oldest" {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	} else {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	now := s.now()
	views := make([]TestimonialView, 0, len(filtered))
	for _, t := range filtered {
		views = append(views, TestimonialView{Testimonial: t, PostedAgo: TimeAgo(t.CreatedAt, now)})
	}
	return views, nil
}
