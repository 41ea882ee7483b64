package repositories

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDuplicateKey is returned when a create would violate a uniqueness
	// rule. The phone and email variants wrap it so callers can match
	// either the family or the exact field.
	ErrDuplicateKey   = errors.New("duplicate key value violates unique constraint")
	ErrDuplicatePhone = fmt.Errorf("%w: phone number", ErrDuplicateKey)
	ErrDuplicateEmail = fmt.Errorf("%w: email", ErrDuplicateKey)

	// ErrStorageError wraps unexpected storage backend errors.
	ErrStorageError = errors.New("storage error")
)

// Collection keys in the backing store. These mirror the keys the browser
// client kept in local storage.
const (
	CollectionDonors       = "donors"
	CollectionRequests     = "emergency_requests"
	CollectionEvents       = "upcoming_events"
	CollectionTestimonials = "testimonials"
	CollectionSkips        = "donor_skips"
	CollectionHistory      = "donor_history"
)
