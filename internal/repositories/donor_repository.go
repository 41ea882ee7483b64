package repositories

import (
	"fmt"
	"sync"

	"bloodlink_backend/internal/models"
	"bloodlink_backend/internal/storage"
)

// DonorRepository defines donor collection access. The backing store holds
// the whole collection as one document, so mutations are read-modify-write
// cycles guarded by the repository's mutex.
type DonorRepository interface {
	GetDonors() ([]models.Donor, error)
	FindByID(id string) (*models.Donor, error)
	FindByIdentifier(identifier string) (*models.Donor, error)
	CreateDonor(donor *models.Donor) error
	SetLastDonationDate(id, date string) error
}

type donorRepository struct {
	mu    sync.Mutex
	store storage.Store
}

// NewDonorRepository creates a new instance of DonorRepository.
func NewDonorRepository(store storage.Store) DonorRepository {
	return &donorRepository{store: store}
}

func (r *donorRepository) load() ([]models.Donor, error) {
	donors := []models.Donor{}
	if err := r.store.Get(CollectionDonors, &donors); err != nil {
		return nil, fmt.Errorf("%w: loading donors: %v", ErrStorageError, err)
	}
	return donors, nil
}

func (r *donorRepository) GetDonors() ([]models.Donor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *donorRepository) FindByID(id string) (*models.Donor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	donors, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range donors {
		if donors[i].ID == id {
			return &donors[i], nil
		}
	}
	return nil, ErrNotFound
}

// FindByIdentifier matches a donor by email or phone, the two identifiers
// the login form accepts.
func (r *donorRepository) FindByIdentifier(identifier string) (*models.Donor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	donors, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range donors {
		if donors[i].Email == identifier || donors[i].Phone == identifier {
			return &donors[i], nil
		}
	}
	return nil, ErrNotFound
}

// CreateDonor appends a donor, rejecting duplicate phone numbers or emails.
func (r *donorRepository) CreateDonor(donor *models.Donor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	donors, err := r.load()
	if err != nil {
		return err
	}
	for i := range donors {
		if donors[i].Phone == donor.Phone {
			return fmt.Errorf("%w %s", ErrDuplicatePhone, donor.Phone)
		}
		if donor.Email != "" && donors[i].Email == donor.Email {
			return fmt.Errorf("%w %s", ErrDuplicateEmail, donor.Email)
		}
	}
	donors = append(donors, *donor)
	if err := r.store.Put(CollectionDonors, donors); err != nil {
		return fmt.Errorf("%w: saving donors: %v", ErrStorageError, err)
	}
	return nil
}

// SetLastDonationDate stamps the donor's last donation date (YYYY-MM-DD),
// which restarts their eligibility window.
func (r *donorRepository) SetLastDonationDate(id, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	donors, err := r.load()
	if err != nil {
		return err
	}
	for i := range donors {
		if donors[i].ID == id {
			donors[i].LastDonationDate = date
			if err := r.store.Put(CollectionDonors, donors); err != nil {
				return fmt.Errorf("%w: saving donors: %v", ErrStorageError, err)
			}
			return nil
		}
	}
	return ErrNotFound
}
