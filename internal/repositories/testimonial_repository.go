package repositories

import (
	"fmt"
	"sync"

	"bloodlink_backend/internal/models"
	"bloodlink_backend/internal/storage"
)

// TestimonialRepository defines testimonial collection access.
type TestimonialRepository interface {
	GetTestimonials() ([]models.Testimonial, error)
	CreateTestimonial(t *models.Testimonial) error
}

type testimonialRepository struct {
	mu    sync.Mutex
	store storage.Store
}

// NewTestimonialRepository creates a new instance of TestimonialRepository.
func NewTestimonialRepository(store storage.Store) TestimonialRepository {
	return &testimonialRepository{store: store}
}

func (r *testimonialRepository) load() ([]models.Testimonial, error) {
	testimonials := []models.Testimonial{}
	if err := r.store.Get(CollectionTestimonials, &testimonials); err != nil {
		return nil, fmt.Errorf("%w: loading testimonials: %v", ErrStorageError, err)
	}
	return testimonials, nil
}

func (r *testimonialRepository) GetTestimonials() ([]models.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// CreateTestimonial prepends so the default newest-first ordering holds even
// without re-sorting.
func (r *testimonialRepository) CreateTestimonial(t *models.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	testimonials, err := r.load()
	if err != nil {
		return err
	}
	testimonials = append([]models.Testimonial{*t}, testimonials...)
	if err := r.store.Put(CollectionTestimonials, testimonials); err != nil {
		return fmt.Errorf("%w: saving testimonials: %v", ErrStorageError, err)
	}
	return nil
}
