package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bloodlink_backend/internal/models"
	"bloodlink_backend/internal/repositories"
	"bloodlink_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrDonorNotFound      = errors.New("donor not found")
	ErrAccountNotFound    = errors.New("account not found, please register as a donor")
	ErrInvalidCredentials = errors.New("invalid login details")
	ErrPhoneExists        = errors.New("phone number already registered")
	ErrEmailExists        = errors.New("email already registered")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// --- DTOs ---

// RegisterDonorRequest mirrors the become-a-donor form.
type RegisterDonorRequest struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	BloodGroup       string `json:"blood_group"`
	Gender           string `json:"gender"`
	State            string `json:"state"`
	District         string `json:"district"`
	City             string `json:"city"`
	LastDonationDate string `json:"last_donation_date"` // optional, YYYY-MM-DD
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirm_password"`
}

// AddDonorRequest is the authenticated "add donor" shortcut: a donor record
// without credentials.
type AddDonorRequest struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	BloodGroup       string `json:"blood_group"`
	Gender           string `json:"gender"`
	State            string `json:"state"`
	District         string `json:"district"`
	City             string `json:"city"`
	LastDonationDate string `json:"last_donation_date"`
}

// LoginRequest accepts an email or phone number as the identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// AuthResponse DTO
type AuthResponse struct {
	Donor       *models.Donor `json:"donor"`
	AccessToken string        `json:"access_token"`
}

// --- DonorService Interface ---
type DonorService interface {
	Register(req RegisterDonorRequest) (*models.Donor, error)
	AddDonor(req AddDonorRequest) (*models.Donor, error)
	Login(req LoginRequest) (*AuthResponse, error)
	GetProfile(donorID string) (*models.Donor, error)
	Search(q DonorQuery) ([]models.Donor, error)
}

// --- donorService Implementation ---
type donorService struct {
	donorRepo repositories.DonorRepository
	external  []models.Donor

	newID   func() string
	newCode func() string
	now     func() time.Time
}

// NewDonorService creates a new instance of DonorService. external is the
// bundled donor directory merged into search results.
func NewDonorService(donorRepo repositories.DonorRepository, external []models.Donor) DonorService {
	return &donorService{
		donorRepo: donorRepo,
		external:  external,
		newID:     utils.NanoID,
		newCode:   utils.NewDonorCode,
		now:       time.Now,
	}
}

func (s *donorService) validateRegistration(req RegisterDonorRequest, withCredentials bool) error {
	fields := map[string]string{}
	if utils.IsEmpty(req.FullName) {
		fields["full_name"] = "Full Name is required"
	}
	if !utils.IsValidEmail(req.Email) {
		fields["email"] = "Invalid Email Address"
	}
	if !utils.IsValidPhone(req.Phone) {
		fields["phone"] = "Phone must be 10 digits"
	}
	if !models.IsValidBloodGroup(req.BloodGroup) {
		fields["blood_group"] = "Select a Blood Group"
	}
	if utils.IsEmpty(req.State) {
		fields["state"] = "State is required"
	}
	if utils.IsEmpty(req.District) {
		fields["district"] = "District is required"
	}
	if utils.IsEmpty(req.City) {
		fields["city"] = "City is required"
	}
	if withCredentials {
		if !utils.IsValidPasswordLength(req.Password, 6) {
			fields["password"] = "Min 6 characters required"
		}
		if req.Password != req.ConfirmPassword {
			fields["confirm_password"] = "Passwords do not match"
		}
	}
	if req.LastDonationDate != "" {
		last, err := time.Parse(dateLayout, req.LastDonationDate)
		if err != nil {
			fields["last_donation_date"] = "Date must be YYYY-MM-DD"
		} else if last.After(s.now()) {
			fields["last_donation_date"] = "Date cannot be in the future"
		}
	}
	return newValidationError(fields)
}

func (s *donorService) buildDonor(req RegisterDonorRequest) *models.Donor {
	return &models.Donor{
		ID:               s.newID(),
		DonorCode:        s.newCode(),
		FullName:         strings.TrimSpace(req.FullName),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:            strings.TrimSpace(req.Phone),
		BloodGroup:       req.BloodGroup,
		Gender:           req.Gender,
		State:            req.State,
		District:         req.District,
		City:             strings.TrimSpace(req.City),
		LastDonationDate: req.LastDonationDate,
		RegisteredAt:     s.now(),
	}
}

// Register validates the form, hashes the password and persists the donor.
func (s *donorService) Register(req RegisterDonorRequest) (*models.Donor, error) {
	if err := s.validateRegistration(req, true); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	donor := s.buildDonor(req)
	donor.PasswordHash = string(hash)

	if err := s.createDonor(donor); err != nil {
		return nil, err
	}

	out := *donor
	out.PasswordHash = "" // never returned to clients
	return &out, nil
}

// AddDonor registers a credential-less donor record on someone's behalf.
func (s *donorService) AddDonor(req AddDonorRequest) (*models.Donor, error) {
	reg := RegisterDonorRequest{
		FullName: req.FullName, Email: req.Email, Phone: req.Phone,
		BloodGroup: req.BloodGroup, Gender: req.Gender,
		State: req.State, District: req.District, City: req.City,
		LastDonationDate: req.LastDonationDate,
	}
	if err := s.validateRegistration(reg, false); err != nil {
		return nil, err
	}
	donor := s.buildDonor(reg)
	if err := s.createDonor(donor); err != nil {
		return nil, err
	}
	return donor, nil
}

func (s *donorService) createDonor(donor *models.Donor) error {
	err := s.donorRepo.CreateDonor(donor)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicatePhone) {
			return ErrPhoneExists
		}
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return ErrEmailExists
		}
		return fmt.Errorf("failed to create donor in repository: %w", err)
	}
	return nil
}

// Login matches the identifier against email or phone and distinguishes a
// wrong password from an account that does not exist at all, mirroring the
// login form's two error messages.
func (s *donorService) Login(req LoginRequest) (*AuthResponse, error) {
	donor, err := s.donorRepo.FindByIdentifier(strings.TrimSpace(req.Identifier))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(donor.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(donor.ID, donor.Email, donor.FullName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	out := *donor
	out.PasswordHash = ""
	return &AuthResponse{Donor: &out, AccessToken: token}, nil
}

// GetProfile retrieves a donor by ID, without the password hash.
func (s *donorService) GetProfile(donorID string) (*models.Donor, error) {
	donor, err := s.donorRepo.FindByID(donorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, fmt.Errorf("failed to get donor by ID: %w", err)
	}
	out := *donor
	out.PasswordHash = ""
	return &out, nil
}

// Search merges registered donors with the external directory (phone-keyed,
// local wins), then keeps records that satisfy every filter criterion AND
// are currently eligible to donate. Order-preserving linear scan.
func (s *donorService) Search(q DonorQuery) ([]models.Donor, error) {
	local, err := s.donorRepo.GetDonors()
	if err != nil {
		return nil, fmt.Errorf("failed to load donors for search: %w", err)
	}

	merged := MergeDonors(local, s.external)
	ref := s.now()
	results := []models.Donor{}
	for _, d := range merged {
		if !DonorMatches(d, q) {
			continue
		}
		if !IsEligibleOn(d, ref) {
			continue
		}
		d.PasswordHash = ""
		results = append(results, d)
	}
	return results, nil
}
