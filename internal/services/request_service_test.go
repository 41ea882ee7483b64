package services

import (
	"fmt"
	"testing"
	"time"

	"bloodlink_backend/internal/models"
	"bloodlink_backend/internal/repositories"
	"bloodlink_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestTestEnv struct {
	requestSvc *requestService
	donorSvc   *donorService
	donorRepo  repositories.DonorRepository
	historyRep repositories.HistoryRepository
	clock      *time.Time
	donorSeq   int
}

func newRequestTestEnv(t *testing.T) *requestTestEnv {
	t.Helper()
	st := storage.NewMemory()
	donorRepo := repositories.NewDonorRepository(st)
	requestRepo := repositories.NewRequestRepository(st)
	historyRepo := repositories.NewHistoryRepository(st)

	clock := testNow
	env := &requestTestEnv{donorRepo: donorRepo, historyRep: historyRepo, clock: &clock}

	seq := 0
	nextID := func() string {
		seq++
		return fmt.Sprintf("id_%d", seq)
	}

	env.requestSvc = NewRequestService(requestRepo, donorRepo, historyRepo).(*requestService)
	env.requestSvc.newID = nextID
	env.requestSvc.now = func() time.Time { return *env.clock }

	env.donorSvc = NewDonorService(donorRepo, nil).(*donorService)
	env.donorSvc.newID = nextID
	env.donorSvc.newCode = func() string { return "DNR-1234" }
	env.donorSvc.now = func() time.Time { return *env.clock }
	return env
}

func (env *requestTestEnv) registerDonor(t *testing.T, bloodGroup string) *models.Donor {
	t.Helper()
	env.donorSeq++
	req := validRegistration()
	req.BloodGroup = bloodGroup
	req.Email = fmt.Sprintf("donor%d@example.com", env.donorSeq)
	req.Phone = fmt.Sprintf("98765%05d", env.donorSeq)
	donor, err := env.donorSvc.Register(req)
	require.NoError(t, err)
	return donor
}

func validEmergencyRequest() CreateRequestRequest {
	return CreateRequestRequest{
		PatientName: "Arjun Mehta",
		BloodGroup:  "O+",
		Hospital:    "Apollo Hospitals",
		State:       "Tamil Nadu",
		District:    "Chennai",
		City:        "Chennai",
		Contact:     "9876501234",
		Urgent:      true,
	}
}

func TestCreateRequestValidation(t *testing.T) {
	env := newRequestTestEnv(t)

	_, err := env.requestSvc.Create(CreateRequestRequest{BloodGroup: "XX"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Fields, "patient_name")
	assert.Contains(t, vErr.Fields, "blood_group")
	assert.Contains(t, vErr.Fields, "hospital")
	assert.Contains(t, vErr.Fields, "contact")
}

func TestListRequestsNewestFirst(t *testing.T) {
	env := newRequestTestEnv(t)

	first, err := env.requestSvc.Create(validEmergencyRequest())
	require.NoError(t, err)

	*env.clock = env.clock.Add(2 * time.Hour)
	req2 := validEmergencyRequest()
	req2.PatientName = "Second Patient"
	second, err := env.requestSvc.Create(req2)
	require.NoError(t, err)

	views, err := env.requestSvc.List()
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, second.ID, views[0].ID)
	assert.Equal(t, first.ID, views[1].ID)
	assert.Equal(t, "Just now", views[0].PostedAgo)
	assert.Equal(t, "2h ago", views[1].PostedAgo)
}

func TestMatchingForDonorFiltersBloodGroup(t *testing.T) {
	env := newRequestTestEnv(t)
	donor := env.registerDonor(t, "O+")

	_, err := env.requestSvc.Create(validEmergencyRequest()) // O+
	require.NoError(t, err)

	other := validEmergencyRequest()
	other.BloodGroup = "AB-"
	_, err = env.requestSvc.Create(other)
	require.NoError(t, err)

	views, err := env.requestSvc.MatchingForDonor(donor.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "O+", views[0].BloodGroup)
}

func TestMatchingForDonorUnknownDonor(t *testing.T) {
	env := newRequestTestEnv(t)
	_, err := env.requestSvc.MatchingForDonor("missing")
	assert.ErrorIs(t, err, ErrDonorNotFound)
}

func TestSkipHidesRequestForDonorOnly(t *testing.T) {
	env := newRequestTestEnv(t)
	donorA := env.registerDonor(t, "O+")
	donorB, err := env.donorSvc.AddDonor(AddDonorRequest{
		FullName: "Second Donor", Email: "second@example.com", Phone: "9111111111",
		BloodGroup: "O+", Gender: "Male", State: "Tamil Nadu", District: "Chennai", City: "Chennai",
	})
	require.NoError(t, err)

	created, err := env.requestSvc.Create(validEmergencyRequest())
	require.NoError(t, err)

	require.NoError(t, env.requestSvc.Skip(donorA.ID, created.ID))
	// Skipping twice is harmless.
	require.NoError(t, env.requestSvc.Skip(donorA.ID, created.ID))

	viewsA, err := env.requestSvc.MatchingForDonor(donorA.ID)
	require.NoError(t, err)
	assert.Empty(t, viewsA, "skipped request is hidden for the skipper")

	viewsB, err := env.requestSvc.MatchingForDonor(donorB.ID)
	require.NoError(t, err)
	assert.Len(t, viewsB, 1, "still visible to everyone else")

	all, err := env.requestSvc.List()
	require.NoError(t, err)
	assert.Len(t, all, 1, "skip never removes from the global list")
}

func TestSkipUnknownRequest(t *testing.T) {
	env := newRequestTestEnv(t)
	donor := env.registerDonor(t, "O+")
	err := env.requestSvc.Skip(donor.ID, "missing")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestFulfillClosesRequestAndResetsEligibility(t *testing.T) {
	env := newRequestTestEnv(t)
	donor := env.registerDonor(t, "O+")

	created, err := env.requestSvc.Create(validEmergencyRequest())
	require.NoError(t, err)

	record, err := env.requestSvc.Fulfill(donor.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, donor.ID, record.DonorID)
	assert.Equal(t, created.ID, record.RequestID)
	assert.Equal(t, "Arjun Mehta", record.PatientName)
	assert.Equal(t, *env.clock, record.DonatedAt)

	// Request removed for everyone.
	all, err := env.requestSvc.List()
	require.NoError(t, err)
	assert.Empty(t, all)

	// Donation history records it.
	history, err := env.requestSvc.History(donor.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, record.ID, history[0].ID)

	// The 90-day window restarts today.
	stored, err := env.donorRepo.FindByID(donor.ID)
	require.NoError(t, err)
	assert.Equal(t, env.clock.Format("2006-01-02"), stored.LastDonationDate)
	assert.False(t, IsEligibleOn(*stored, *env.clock))

	results, err := env.donorSvc.Search(DonorQuery{BloodGroup: "O+"})
	require.NoError(t, err)
	assert.Empty(t, results, "fulfilling hides the donor from search until the window passes")
}

func TestFulfillUnknownRequest(t *testing.T) {
	env := newRequestTestEnv(t)
	donor := env.registerDonor(t, "O+")
	_, err := env.requestSvc.Fulfill(donor.ID, "missing")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestHistoryNewestFirst(t *testing.T) {
	env := newRequestTestEnv(t)
	donor := env.registerDonor(t, "O+")

	first, err := env.requestSvc.Create(validEmergencyRequest())
	require.NoError(t, err)
	_, err = env.requestSvc.Fulfill(donor.ID, first.ID)
	require.NoError(t, err)

	*env.clock = env.clock.Add(24 * time.Hour)
	req2 := validEmergencyRequest()
	req2.PatientName = "Later Patient"
	second, err := env.requestSvc.Create(req2)
	require.NoError(t, err)
	_, err = env.requestSvc.Fulfill(donor.ID, second.ID)
	require.NoError(t, err)

	history, err := env.requestSvc.History(donor.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Later Patient", history[0].PatientName)
}
