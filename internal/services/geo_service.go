package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"bloodlink_backend/pkg/utils"
)

var ErrStateUnknown = errors.New("unknown state")

// DefaultGeoURL is the third-party states-and-districts dataset the location
// dropdowns are built from.
const DefaultGeoURL = "https://cdn.jsdelivr.net/gh/sab99r/Indian-States-And-Districts@master/states-and-districts.json"

// --- GeoService Interface ---

// GeoService provides the state -> district hierarchy. A failed fetch falls
// back to the bundled table; nothing negative is cached, so the next call
// retries the network.
type GeoService interface {
	States() ([]string, error)
	Districts(state string) ([]string, error)
}

type geoPayload struct {
	States []struct {
		State     string   `json:"state"`
		Districts []string `json:"districts"`
	} `json:"states"`
}

type geoService struct {
	client *http.Client
	apiURL string

	mu     sync.Mutex
	cached map[string][]string // state -> districts, nil until a successful fetch
}

// NewGeoService creates a GeoService backed by apiURL. Pass DefaultGeoURL
// outside of tests.
func NewGeoService(apiURL string) GeoService {
	return &geoService{
		client: &http.Client{Timeout: 10 * time.Second},
		apiURL: apiURL,
	}
}

// data returns the state->districts map, fetching and caching on first use.
// On fetch failure it returns the bundled fallback without caching it.
func (s *geoService) data() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached
	}

	fetched, err := s.fetch()
	if err != nil {
		utils.LogWarn("Geography fetch failed, using bundled fallback", map[string]interface{}{"error": err.Error()})
		return fallbackDistricts
	}
	s.cached = fetched
	return s.cached
}

func (s *geoService) fetch() (map[string][]string, error) {
	resp, err := s.client.Get(s.apiURL)
	if err != nil {
		return nil, fmt.Errorf("fetching geography data: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geography endpoint returned status %d", resp.StatusCode)
	}

	var payload geoPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding geography data: %w", err)
	}
	if len(payload.States) == 0 {
		return nil, errors.New("geography data is empty")
	}

	out := make(map[string][]string, len(payload.States))
	for _, st := range payload.States {
		out[st.State] = st.Districts
	}
	return out, nil
}

// States returns all state names, sorted.
func (s *geoService) States() ([]string, error) {
	data := s.data()
	states := make([]string, 0, len(data))
	for st := range data {
		states = append(states, st)
	}
	sort.Strings(states)
	return states, nil
}

// Districts returns the districts of one state, sorted.
func (s *geoService) Districts(state string) ([]string, error) {
	data := s.data()
	districts, ok := data[state]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStateUnknown, state)
	}
	out := append([]string{}, districts...)
	sort.Strings(out)
	return out, nil
}

// fallbackDistricts is the bundled subset served when the CDN is
// unreachable. It covers the states the seed data and mock blood banks use.
var fallbackDistricts = map[string][]string{
	"Tamil Nadu":     {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem", "Tirunelveli", "Tiruppur", "Vellore", "Erode", "Thoothukudi"},
	"Kerala":         {"Thiruvananthapuram", "Ernakulam", "Kozhikode", "Kollam", "Thrissur", "Kannur", "Alappuzha", "Kottayam", "Palakkad", "Malappuram"},
	"Karnataka":      {"Bangalore Urban", "Mysuru", "Hubballi-Dharwad", "Mangaluru", "Belagavi", "Davangere", "Ballari", "Vijayapura", "Shivamogga", "Tumakuru"},
	"Andhra Pradesh": {"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Kurnool", "Rajahmundry", "Tirupati", "Kakinada", "Kadapa", "Anantapur"},
	"Telangana":      {"Hyderabad", "Warangal", "Nizamabad", "Karimnagar", "Ramagundam", "Khammam", "Mahbubnagar", "Nalgonda", "Adilabad", "Suryapet"},
	"Maharashtra":    {"Mumbai City", "Pune", "Nagpur", "Thane", "Nashik", "Aurangabad", "Solapur", "Amravati", "Kolhapur", "Navi Mumbai"},
	"Delhi":          {"Central Delhi", "East Delhi", "New Delhi", "North Delhi", "North East Delhi", "North West Delhi", "Shahdara", "South Delhi", "South East Delhi", "South West Delhi", "West Delhi"},
	"Rajasthan":      {"Jaipur", "Jodhpur", "Udaipur", "Kota", "Ajmer", "Bikaner", "Alwar", "Bharatpur", "Sikar", "Pali"},
	"Gujarat":        {"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar", "Jamnagar", "Junagadh", "Gandhinagar", "Anand", "Kutch"},
	"Uttar Pradesh":  {"Lucknow", "Kanpur Nagar", "Varanasi", "Agra", "Prayagraj", "Ghaziabad", "Meerut", "Gorakhpur", "Noida", "Bareilly"},
	"West Bengal":    {"Kolkata", "Howrah", "Darjeeling", "Hooghly", "Nadia", "Murshidabad", "Bardhaman", "Malda", "Jalpaiguri", "Siliguri"},
	"Odisha":         {"Khordha", "Cuttack", "Ganjam", "Puri", "Sambalpur", "Balasore", "Mayurbhanj", "Sundargarh", "Kendrapara", "Angul"},
}
