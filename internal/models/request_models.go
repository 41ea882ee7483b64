package models

import "time"

// EmergencyRequest is a patient/hospital-originated call for blood of a
// specific group, optionally marked urgent.
type EmergencyRequest struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	BloodGroup  string    `json:"blood_group"`
	Hospital    string    `json:"hospital"`
	State       string    `json:"state"`
	District    string    `json:"district"`
	City        string    `json:"city"`
	Contact     string    `json:"contact"`
	Urgent      bool      `json:"urgent"`
	CreatedAt   time.Time `json:"created_at"`
}

// DonorSkip hides a request from one donor's dashboard without touching the
// global request list.
type DonorSkip struct {
	DonorID   string    `json:"donor_id"`
	RequestID string    `json:"request_id"`
	SkippedAt time.Time `json:"skipped_at"`
}

// DonationRecord is one fulfilled request in a donor's history. The hospital
// and location are snapshotted because the request itself is deleted on
// fulfillment.
type DonationRecord struct {
	ID          string    `json:"id"`
	DonorID     string    `json:"donor_id"`
	RequestID   string    `json:"request_id"`
	PatientName string    `json:"patient_name,omitempty"`
	BloodGroup  string    `json:"blood_group"`
	Hospital    string    `json:"hospital"`
	District    string    `json:"district"`
	City        string    `json:"city"`
	DonatedAt   time.Time `json:"donated_at"`
}
