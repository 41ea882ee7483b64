package repositories

import (
	"fmt"
	"sync"

	"bloodlink_backend/internal/models"
	"bloodlink_backend/internal/storage"
)

// HistoryRepository tracks per-donor skip records and donation history.
// Skips and history live in separate collections but share an access
// pattern, so one repository covers both.
type HistoryRepository interface {
	GetSkipsByDonor(donorID string) ([]models.DonorSkip, error)
	CreateSkip(skip *models.DonorSkip) error
	GetHistoryByDonor(donorID string) ([]models.DonationRecord, error)
	CreateDonation(record *models.DonationRecord) error
}

type historyRepository struct {
	mu    sync.Mutex
	store storage.Store
}

// NewHistoryRepository creates a new instance of HistoryRepository.
func NewHistoryRepository(store storage.Store) HistoryRepository {
	return &historyRepository{store: store}
}

func (r *historyRepository) loadSkips() ([]models.DonorSkip, error) {
	skips := []models.DonorSkip{}
	if err := r.store.Get(CollectionSkips, &skips); err != nil {
		return nil, fmt.Errorf("%w: loading skips: %v", ErrStorageError, err)
	}
	return skips, nil
}

func (r *historyRepository) loadHistory() ([]models.DonationRecord, error) {
	history := []models.DonationRecord{}
	if err := r.store.Get(CollectionHistory, &history); err != nil {
		return nil, fmt.Errorf("%w: loading history: %v", ErrStorageError, err)
	}
	return history, nil
}

func (r *historyRepository) GetSkipsByDonor(donorID string) ([]models.DonorSkip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	skips, err := r.loadSkips()
	if err != nil {
		return nil, err
	}
	mine := []models.DonorSkip{}
	for _, s := range skips {
		if s.DonorID == donorID {
			mine = append(mine, s)
		}
	}
	return mine, nil
}

func (r *historyRepository) CreateSkip(skip *models.DonorSkip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	skips, err := r.loadSkips()
	if err != nil {
		return err
	}
	for _, s := range skips {
		if s.DonorID == skip.DonorID && s.RequestID == skip.RequestID {
			return nil // already hidden, nothing to record
		}
	}
	skips = append(skips, *skip)
	if err := r.store.Put(CollectionSkips, skips); err != nil {
		return fmt.Errorf("%w: saving skips: %v", ErrStorageError, err)
	}
	return nil
}

func (r *historyRepository) GetHistoryByDonor(donorID string) ([]models.DonationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	history, err := r.loadHistory()
	if err != nil {
		return nil, err
	}
	mine := []models.DonationRecord{}
	for _, h := range history {
		if h.DonorID == donorID {
			mine = append(mine, h)
		}
	}
	return mine, nil
}

func (r *historyRepository) CreateDonation(record *models.DonationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	history, err := r.loadHistory()
	if err != nil {
		return err
	}
	history = append(history, *record)
	if err := r.store.Put(CollectionHistory, history); err != nil {
		return fmt.Errorf("%w: saving history: %v", ErrStorageError, err)
	}
	return nil
}
