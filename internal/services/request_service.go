package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"bloodlink_backend/internal/models"
	"bloodlink_backend/internal/repositories"
	"bloodlink_backend/pkg/utils"
)

var (
	ErrRequestNotFound = errors.New("emergency request not found")
)

// CreateRequestRequest mirrors the emergency request form.
type CreateRequestRequest struct {
	PatientName string `json:"patient_name"`
	BloodGroup  string `json:"blood_group"`
	Hospital    string `json:"hospital"`
	State       string `json:"state"`
	District    string `json:"district"`
	City        string `json:"city"`
	Contact     string `json:"contact"`
	Urgent      bool   `json:"urgent"`
}

// RequestView is an emergency request annotated with its relative age for
// display ("Posted 2h ago").
type RequestView struct {
	models.EmergencyRequest
	PostedAgo string `json:"posted_ago"`
}

// --- RequestService Interface ---
type RequestService interface {
	Create(req CreateRequestRequest) (*RequestView, error)
	List() ([]RequestView, error)
	MatchingForDonor(donorID string) ([]RequestView, error)
	Skip(donorID, requestID string) error
	Fulfill(donorID, requestID string) (*models.DonationRecord, error)
	History(donorID string) ([]models.DonationRecord, error)
}

type requestService struct {
	requestRepo repositories.RequestRepository
	donorRepo   repositories.DonorRepository
	historyRepo repositories.HistoryRepository

	newID func() string
	now   func() time.Time
}

// NewRequestService creates a new instance of RequestService.
func NewRequestService(
	requestRepo repositories.RequestRepository,
	donorRepo repositories.DonorRepository,
	historyRepo repositories.HistoryRepository,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		donorRepo:   donorRepo,
		historyRepo: historyRepo,
		newID:       utils.NanoID,
		now:         time.Now,
	}
}

func (s *requestService) validate(req CreateRequestRequest) error {
	fields := map[string]string{}
	if utils.IsEmpty(req.PatientName) {
		fields["patient_name"] = "Patient Name is required"
	}
	if !models.IsValidBloodGroup(req.BloodGroup) {
		fields["blood_group"] = "Select a Blood Group"
	}
	if utils.IsEmpty(req.Hospital) {
		fields["hospital"] = "Hospital Name is required"
	}
	if utils.IsEmpty(req.State) {
		fields["state"] = "State is required"
	}
	if utils.IsEmpty(req.District) {
		fields["district"] = "District is required"
	}
	if utils.IsEmpty(req.Contact) {
		fields["contact"] = "Contact Number is required"
	}
	return newValidationError(fields)
}

func (s *requestService) view(r models.EmergencyRequest) RequestView {
	return RequestView{EmergencyRequest: r, PostedAgo: TimeAgo(r.CreatedAt, s.now())}
}

// Create validates and persists a new emergency request.
func (s *requestService) Create(req CreateRequestRequest) (*RequestView, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	record := &models.EmergencyRequest{
		ID:          s.newID(),
		PatientName: req.PatientName,
		BloodGroup:  req.BloodGroup,
		Hospital:    req.Hospital,
		State:       req.State,
		District:    req.District,
		City:        req.City,
		Contact:     req.Contact,
		Urgent:      req.Urgent,
		CreatedAt:   s.now(),
	}
	if err := s.requestRepo.CreateRequest(record); err != nil {
		return nil, fmt.Errorf("failed to create request in repository: %w", err)
	}
	v := s.view(*record)
	return &v, nil
}

// List returns all open requests, newest first.
func (s *requestService) List() ([]RequestView, error) {
	requests, err := s.requestRepo.GetRequests()
	if err != nil {
		return nil, fmt.Errorf("failed to load requests: %w", err)
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	views := make([]RequestView, 0, len(requests))
	for _, r := range requests {
		views = append(views, s.view(r))
	}
	return views, nil
}

// MatchingForDonor returns requests whose blood group equals the donor's,
// excluding those the donor has skipped or already fulfilled. This is the
// dashboard's poll target.
func (s *requestService) MatchingForDonor(donorID string) ([]RequestView, error) {
	donor, err := s.donorRepo.FindByID(donorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, fmt.Errorf("failed to load donor: %w", err)
	}

	skips, err := s.historyRepo.GetSkipsByDonor(donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load skips: %w", err)
	}
	history, err := s.historyRepo.GetHistoryByDonor(donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	hidden := make(map[string]struct{}, len(skips)+len(history))
	for _, sk := range skips {
		hidden[sk.RequestID] = struct{}{}
	}
	for _, h := range history {
		hidden[h.RequestID] = struct{}{}
	}

	requests, err := s.requestRepo.GetRequests()
	if err != nil {
		return nil, fmt.Errorf("failed to load requests: %w", err)
	}
	views := []RequestView{}
	for _, r := range requests {
		if r.BloodGroup != donor.BloodGroup {
			continue
		}
		if _, ok := hidden[r.ID]; ok {
			continue
		}
		views = append(views, s.view(r))
	}
	return views, nil
}

// Skip hides a request from this donor's dashboard only; the request stays
// in the global list for everyone else.
func (s *requestService) Skip(donorID, requestID string) error {
	if _, err := s.requestRepo.FindByID(requestID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("failed to find request: %w", err)
	}
	skip := &models.DonorSkip{DonorID: donorID, RequestID: requestID, SkippedAt: s.now()}
	if err := s.historyRepo.CreateSkip(skip); err != nil {
		return fmt.Errorf("failed to record skip: %w", err)
	}
	return nil
}

// Fulfill records a donation against the request: it appends a history
// record, stamps the donor's last donation date with today (restarting the
// 90-day window) and removes the request from the global list.
func (s *requestService) Fulfill(donorID, requestID string) (*models.DonationRecord, error) {
	donor, err := s.donorRepo.FindByID(donorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, fmt.Errorf("failed to load donor: %w", err)
	}

	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	now := s.now()
	record := &models.DonationRecord{
		ID:          s.newID(),
		DonorID:     donor.ID,
		RequestID:   request.ID,
		PatientName: request.PatientName,
		BloodGroup:  request.BloodGroup,
		Hospital:    request.Hospital,
		District:    request.District,
		City:        request.City,
		DonatedAt:   now,
	}
	if err := s.historyRepo.CreateDonation(record); err != nil {
		return nil, fmt.Errorf("failed to record donation: %w", err)
	}
	if err := s.donorRepo.SetLastDonationDate(donor.ID, now.Format(dateLayout)); err != nil {
		return nil, fmt.Errorf("failed to update donor eligibility window: %w", err)
	}
	if err := s.requestRepo.DeleteRequest(request.ID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to close fulfilled request: %w", err)
	}
	return record, nil
}

// History returns the donor's donation records, newest first.
func (s *requestService) History(donorID string) ([]models.DonationRecord, error) {
	history, err := s.historyRepo.GetHistoryByDonor(donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].DonatedAt.After(history[j].DonatedAt)
	})
	return history, nil
}
