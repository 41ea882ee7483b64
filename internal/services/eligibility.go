package services

import (
	"strings"
	"time"

	"bloodlink_backend/internal/models"
)

// EligibilityWindowDays is the minimum interval required between two
// donations by the same donor.
const EligibilityWindowDays = 90

const dateLayout = "2006-01-02"

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsEligibleOn reports whether the donor may donate on the reference date.
// A donor with no recorded last donation is eligible; otherwise the
// whole-day difference must exceed the 90-day window. A last donation on
// the reference date itself (0 days) is not eligible, and an unparseable
// stored date is treated as ineligible rather than letting the donor
// through.
func IsEligibleOn(donor models.Donor, ref time.Time) bool {
	if strings.TrimSpace(donor.LastDonationDate) == "" {
		return true
	}
	last, err := time.ParseInLocation(dateLayout, donor.LastDonationDate, ref.Location())
	if err != nil {
		return false
	}
	days := int(midnight(ref).Sub(midnight(last)).Hours() / 24)
	return days > EligibilityWindowDays
}

// DonorQuery is a donor search. Empty fields impose no constraint; filled
// fields are ANDed together.
type DonorQuery struct {
	BloodGroup string
	State      string
	District   string
	City       string
	Gender     string
}

// DonorMatches reports whether a donor satisfies every non-empty criterion.
// Blood group, state, district and gender are exact matches (the dropdowns
// guarantee canonical casing); city is a case-insensitive substring.
func DonorMatches(donor models.Donor, q DonorQuery) bool {
	if q.BloodGroup != "" && donor.BloodGroup != q.BloodGroup {
		return false
	}
	if q.State != "" && donor.State != q.State {
		return false
	}
	if q.District != "" && donor.District != q.District {
		return false
	}
	if q.City != "" && !strings.Contains(strings.ToLower(donor.City), strings.ToLower(q.City)) {
		return false
	}
	if q.Gender != "" && donor.Gender != q.Gender {
		return false
	}
	return true
}

// MergeDonors concatenates local donors first, then external, and collapses
// duplicates by phone number. Local (registered) donors win ties; output
// keeps the order of first occurrence.
func MergeDonors(local, external []models.Donor) []models.Donor {
	merged := make([]models.Donor, 0, len(local)+len(external))
	seen := make(map[string]struct{}, len(local)+len(external))
	for _, d := range append(append([]models.Donor{}, local...), external...) {
		if _, ok := seen[d.Phone]; ok {
			continue
		}
		seen[d.Phone] = struct{}{}
		merged = append(merged, d)
	}
	return merged
}
