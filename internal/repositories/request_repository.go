package repositories

import (
	"fmt"
	"sync"

	"bloodlink_backend/internal/models"
	"bloodlink_backend/internal/storage"
)

// RequestRepository defines emergency request collection access.
type RequestRepository interface {
	GetRequests() ([]models.EmergencyRequest, error)
	FindByID(id string) (*models.EmergencyRequest, error)
	CreateRequest(req *models.EmergencyRequest) error
	DeleteRequest(id string) error
}

type requestRepository struct {
	mu    sync.Mutex
	store storage.Store
}

// NewRequestRepository creates a new instance of RequestRepository.
func NewRequestRepository(store storage.Store) RequestRepository {
	return &requestRepository{store: store}
}

func (r *requestRepository) load() ([]models.EmergencyRequest, error) {
	requests := []models.EmergencyRequest{}
	if err := r.store.Get(CollectionRequests, &requests); err != nil {
		return nil, fmt.Errorf("%w: loading requests: %v", ErrStorageError, err)
	}
	return requests, nil
}

func (r *requestRepository) GetRequests() ([]models.EmergencyRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *requestRepository) FindByID(id string) (*models.EmergencyRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	requests, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID == id {
			return &requests[i], nil
		}
	}
	return nil, ErrNotFound
}

// CreateRequest prepends the new request so listings stay newest-first.
func (r *requestRepository) CreateRequest(req *models.EmergencyRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	requests, err := r.load()
	if err != nil {
		return err
	}
	requests = append([]models.EmergencyRequest{*req}, requests...)
	if err := r.store.Put(CollectionRequests, requests); err != nil {
		return fmt.Errorf("%w: saving requests: %v", ErrStorageError, err)
	}
	return nil
}

func (r *requestRepository) DeleteRequest(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	requests, err := r.load()
	if err != nil {
		return err
	}
	for i := range requests {
		if requests[i].ID == id {
			requests = append(requests[:i], requests[i+1:]...)
			if err := r.store.Put(CollectionRequests, requests); err != nil {
				return fmt.Errorf("%w: saving requests: %v", ErrStorageError, err)
			}
			return nil
		}
	}
	return ErrNotFound
}
