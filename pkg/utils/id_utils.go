package utils

import (
	"fmt"
	"math/rand"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NanoID returns a new 12-character record identifier. Services take this as
// an injectable hook so record creation is deterministic in tests.
func NanoID() string {
	return gonanoid.Must(12)
}

// NewDonorCode returns a human-readable donor code like DNR-4821, shown on
// the registration confirmation.
func NewDonorCode() string {
	return fmt.Sprintf("DNR-%04d", 1000+rand.Intn(9000))
}
