package models

import "time"

// BloodGroups lists the eight canonical ABO/Rh combinations. Every donor,
// request and stock record must use one of these exact values.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}

// IsValidBloodGroup reports whether bg is one of the canonical values.
func IsValidBloodGroup(bg string) bool {
	for _, v := range BloodGroups {
		if v == bg {
			return true
		}
	}
	return false
}

// Donor represents a registered blood donor. Phone acts as the natural
// dedup key when merging with the external donor directory.
type Donor struct {
	ID               string    `json:"id"`
	DonorCode        string    `json:"donor_code,omitempty"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	BloodGroup       string    `json:"blood_group"`
	Gender           string    `json:"gender,omitempty"`
	State            string    `json:"state"`
	District         string    `json:"district"`
	City             string    `json:"city"`
	LastDonationDate string    `json:"last_donation_date,omitempty"` // YYYY-MM-DD
	PasswordHash     string    `json:"password_hash,omitempty"`
	RegisteredAt     time.Time `json:"registered_at"`
}
