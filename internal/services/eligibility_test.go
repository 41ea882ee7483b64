package services

import (
	"testing"
	"time"

	"bloodlink_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

var eligibilityRef = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func donorLastDonated(daysAgo int) models.Donor {
	return models.Donor{
		Phone:            "9876543210",
		LastDonationDate: eligibilityRef.AddDate(0, 0, -daysAgo).Format("2006-01-02"),
	}
}

func TestIsEligibleOnNoHistory(t *testing.T) {
	assert.True(t, IsEligibleOn(models.Donor{}, eligibilityRef))
	assert.True(t, IsEligibleOn(models.Donor{LastDonationDate: "   "}, eligibilityRef))
}

func TestIsEligibleOnWindowBoundary(t *testing.T) {
	assert.False(t, IsEligibleOn(donorLastDonated(0), eligibilityRef), "donated today")
	assert.False(t, IsEligibleOn(donorLastDonated(89), eligibilityRef))
	assert.False(t, IsEligibleOn(donorLastDonated(90), eligibilityRef), "exactly 90 days is still inside the window")
	assert.True(t, IsEligibleOn(donorLastDonated(91), eligibilityRef))
	assert.True(t, IsEligibleOn(donorLastDonated(365), eligibilityRef))
}

func TestIsEligibleOnIgnoresTimeOfDay(t *testing.T) {
	// The day difference counts calendar days, not 24h periods.
	lateRef := time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC)
	earlyRef := time.Date(2025, time.June, 15, 0, 1, 0, 0, time.UTC)
	d := models.Donor{LastDonationDate: "2025-03-16"} // 91 days before June 15
	assert.True(t, IsEligibleOn(d, lateRef))
	assert.True(t, IsEligibleOn(d, earlyRef))
}

func TestIsEligibleOnMalformedDate(t *testing.T) {
	assert.False(t, IsEligibleOn(models.Donor{LastDonationDate: "15/06/2025"}, eligibilityRef))
	assert.False(t, IsEligibleOn(models.Donor{LastDonationDate: "not-a-date"}, eligibilityRef))
}

func TestDonorMatchesEmptyQuery(t *testing.T) {
	d := models.Donor{BloodGroup: "O+", State: "Tamil Nadu", District: "Chennai", City: "Chennai", Gender: "Male"}
	assert.True(t, DonorMatches(d, DonorQuery{}))
}

func TestDonorMatchesAndSemantics(t *testing.T) {
	d := models.Donor{BloodGroup: "O+", State: "Tamil Nadu", District: "Chennai", City: "Chennai", Gender: "Male"}

	assert.True(t, DonorMatches(d, DonorQuery{BloodGroup: "O+", State: "Tamil Nadu"}))
	assert.False(t, DonorMatches(d, DonorQuery{BloodGroup: "O+", State: "Kerala"}), "one failing criterion rejects")
	assert.False(t, DonorMatches(d, DonorQuery{BloodGroup: "O-"}))
	assert.False(t, DonorMatches(d, DonorQuery{Gender: "Female"}))
}

func TestDonorMatchesCitySubstring(t *testing.T) {
	d := models.Donor{City: "North Chennai"}
	assert.True(t, DonorMatches(d, DonorQuery{City: "chennai"}))
	assert.True(t, DonorMatches(d, DonorQuery{City: "CHEN"}))
	assert.False(t, DonorMatches(d, DonorQuery{City: "Madurai"}))
}

func TestMergeDonorsLocalWins(t *testing.T) {
	local := []models.Donor{
		{ID: "loc_1", FullName: "Asha Registered", Phone: "9000000001"},
	}
	external := []models.Donor{
		{ID: "ext_1", FullName: "Asha Directory", Phone: "9000000001"},
		{ID: "ext_2", FullName: "Ravi Directory", Phone: "9000000002"},
	}

	merged := MergeDonors(local, external)

	assert.Len(t, merged, 2)
	assert.Equal(t, "loc_1", merged[0].ID, "registered record wins the phone tie")
	assert.Equal(t, "ext_2", merged[1].ID)
}

func TestMergeDonorsPreservesOrder(t *testing.T) {
	local := []models.Donor{
		{ID: "a", Phone: "1111111111"},
		{ID: "b", Phone: "2222222222"},
	}
	external := []models.Donor{
		{ID: "c", Phone: "3333333333"},
		{ID: "d", Phone: "1111111111"}, // dropped
	}

	merged := MergeDonors(local, external)

	ids := []string{}
	for _, d := range merged {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestMergeDonorsEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeDonors(nil, nil))
	assert.Len(t, MergeDonors(nil, []models.Donor{{Phone: "1234567890"}}), 1)
}
