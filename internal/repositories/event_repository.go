package repositories

import (
	"fmt"
	"sync"

	"bloodlink_backend/internal/models"
	"bloodlink_backend/internal/storage"
)

// EventRepository defines donation camp collection access. ReplaceEvents
// exists for the expiry sweep, which destructively compacts the collection.
type EventRepository interface {
	GetEvents() ([]models.Event, error)
	CreateEvent(event *models.Event) error
	ReplaceEvents(events []models.Event) error
}

type eventRepository struct {
	mu    sync.Mutex
	store storage.Store
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(store storage.Store) EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) load() ([]models.Event, error) {
	events := []models.Event{}
	if err := r.store.Get(CollectionEvents, &events); err != nil {
		return nil, fmt.Errorf("%w: loading events: %v", ErrStorageError, err)
	}
	return events, nil
}

func (r *eventRepository) GetEvents() ([]models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *eventRepository) CreateEvent(event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	events, err := r.load()
	if err != nil {
		return err
	}
	events = append(events, *event)
	if err := r.store.Put(CollectionEvents, events); err != nil {
		return fmt.Errorf("%w: saving events: %v", ErrStorageError, err)
	}
	return nil
}

func (r *eventRepository) ReplaceEvents(events []models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Put(CollectionEvents, events); err != nil {
		return fmt.Errorf("%w: saving events: %v", ErrStorageError, err)
	}
	return nil
}
