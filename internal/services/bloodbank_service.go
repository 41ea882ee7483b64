package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"bloodlink_backend/internal/models"
	"bloodlink_backend/pkg/utils"
)

// Upstream blood bank datasets. Both are fetched per lookup; a failure of
// either falls back to the bundled mock directory.
const (
	DefaultBanksURL = "https://bloodbankdata.s3.ap-south-1.amazonaws.com/blood_banks.json"
	DefaultStockURL = "https://bloodbankdata.s3.ap-south-1.amazonaws.com/blood_stock.json"
)

// Stock status classification thresholds: more than 10 units is Available,
// 1-10 is Low, none is Critical.
const (
	StockAvailable = "Available"
	StockLow       = "Low"
	StockCritical  = "Critical"
)

// StockLevel is one blood group's inventory at a bank.
type StockLevel struct {
	Units  int    `json:"units"`
	Status string `json:"status"`
}

// BloodBank is a physical bank with per-group stock levels.
type BloodBank struct {
	ID        int                   `json:"id"`
	Name      string                `json:"name"`
	Type      string                `json:"type"`
	Address   string                `json:"address"`
	Phone     string                `json:"phone"`
	Latitude  float64               `json:"latitude"`
	Longitude float64               `json:"longitude"`
	Timing    string                `json:"timing"`
	Stock     map[string]StockLevel `json:"stock"`
}

// --- BloodBankService Interface ---
type BloodBankService interface {
	Find(state, district string) ([]BloodBank, error)
}

type upstreamBank struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timing    string  `json:"timing"`
	State     string  `json:"state"`
	District  string  `json:"district"`
}

type upstreamStock struct {
	BankID int `json:"bank_id"`
	APos   int `json:"A_pos"`
	ANeg   int `json:"A_neg"`
	BPos   int `json:"B_pos"`
	BNeg   int `json:"B_neg"`
	OPos   int `json:"O_pos"`
	ONeg   int `json:"O_neg"`
	ABPos  int `json:"AB_pos"`
	ABNeg  int `json:"AB_neg"`
}

type bloodBankService struct {
	client   *http.Client
	banksURL string
	stockURL string
}

// NewBloodBankService creates a BloodBankService against the given upstream
// URLs. Pass the Default*URL constants outside of tests.
func NewBloodBankService(banksURL, stockURL string) BloodBankService {
	return &bloodBankService{
		client:   &http.Client{Timeout: 10 * time.Second},
		banksURL: banksURL,
		stockURL: stockURL,
	}
}

func classifyStock(units int) StockLevel {
	switch {
	case units > 10:
		return StockLevel{Units: units, Status: StockAvailable}
	case units > 0:
		return StockLevel{Units: units, Status: StockLow}
	default:
		return StockLevel{Units: 0, Status: StockCritical}
	}
}

func (s *bloodBankService) fetchJSON(url string, into interface{}) error {
	resp, err := s.client.Get(url)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(into)
}

// Find returns the banks in a state, narrowed to a district when one is
// given (case-insensitive match, the upstream dataset's casing is uneven),
// with their stock joined in by bank id. On upstream failure the bundled
// mock directory answers instead.
func (s *bloodBankService) Find(state, district string) ([]BloodBank, error) {
	var banks []upstreamBank
	var stocks []upstreamStock
	if err := s.fetchJSON(s.banksURL, &banks); err != nil {
		utils.LogWarn("Blood bank fetch failed, using mock directory", map[string]interface{}{"error": err.Error()})
		return mockBanksFor(state, district), nil
	}
	if err := s.fetchJSON(s.stockURL, &stocks); err != nil {
		utils.LogWarn("Blood stock fetch failed, using mock directory", map[string]interface{}{"error": err.Error()})
		return mockBanksFor(state, district), nil
	}

	stockByBank := make(map[int]upstreamStock, len(stocks))
	for _, st := range stocks {
		stockByBank[st.BankID] = st
	}

	results := []BloodBank{}
	for _, b := range banks {
		if !strings.EqualFold(b.State, state) {
			continue
		}
		if district != "" && !strings.EqualFold(b.District, district) {
			continue
		}
		st := stockByBank[b.ID]
		bankType := b.Type
		if bankType == "" {
			bankType = "Hospital"
		}
		timing := b.Timing
		if timing == "" {
			timing = "24/7"
		}
		results = append(results, BloodBank{
			ID:        b.ID,
			Name:      b.Name,
			Type:      bankType,
			Address:   b.Address,
			Phone:     b.Phone,
			Latitude:  b.Latitude,
			Longitude: b.Longitude,
			Timing:    timing,
			Stock: map[string]StockLevel{
				"A+":  classifyStock(st.APos),
				"A-":  classifyStock(st.ANeg),
				"B+":  classifyStock(st.BPos),
				"B-":  classifyStock(st.BNeg),
				"O+":  classifyStock(st.OPos),
				"O-":  classifyStock(st.ONeg),
				"AB+": classifyStock(st.ABPos),
				"AB-": classifyStock(st.ABNeg),
			},
		})
	}
	return results, nil
}

func mockBanksFor(state, district string) []BloodBank {
	byDistrict, ok := mockBanks[state]
	if !ok {
		return []BloodBank{}
	}
	if district == "" {
		all := []BloodBank{}
		for _, banks := range byDistrict {
			all = append(all, banks...)
		}
		sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
		return all
	}
	banks, ok := byDistrict[district]
	if !ok {
		return []BloodBank{}
	}
	return banks
}

func fullStock(units map[string]int) map[string]StockLevel {
	stock := make(map[string]StockLevel, len(models.BloodGroups))
	for _, bg := range models.BloodGroups {
		stock[bg] = classifyStock(units[bg])
	}
	return stock
}

// mockBanks is the bundled fallback directory, keyed state -> district.
var mockBanks = map[string]map[string][]BloodBank{
	"Tamil Nadu": {
		"Chennai": {
			{
				ID: 1, Name: "Rajiv Gandhi Government General Hospital", Type: "Government",
				Address: "Poonamallee High Road, Park Town, Chennai", Phone: "044-25305000",
				Latitude: 13.0827, Longitude: 80.2707, Timing: "24/7",
				Stock: fullStock(map[string]int{"A+": 15, "A-": 2, "B+": 28, "B-": 5, "O+": 45, "AB+": 12, "AB-": 1}),
			},
			{
				ID: 2, Name: "Apollo Hospitals Blood Centre", Type: "Private",
				Address: "Greams Lane, 21, Greams Rd, Thousand Lights, Chennai", Phone: "044-28290200",
				Latitude: 13.0405, Longitude: 80.2505, Timing: "24/7",
				Stock: fullStock(map[string]int{"A+": 35, "A-": 8, "B+": 42, "B-": 12, "O+": 50, "O-": 4, "AB+": 20, "AB-": 3}),
			},
			{
				ID: 3, Name: "Rotary Central TTK Voluntary Blood Bank", Type: "Charitable",
				Address: "VHS Campus, Taramani, Chennai", Phone: "044-22542031",
				Latitude: 12.9866, Longitude: 80.2427, Timing: "9:00 AM - 6:00 PM",
				Stock: fullStock(map[string]int{"A+": 5, "B+": 12, "B-": 2, "O+": 15, "O-": 1, "AB+": 8}),
			},
		},
		"Coimbatore": {
			{
				ID: 4, Name: "Coimbatore Medical College Hospital", Type: "Government",
				Address: "Trichy Road, Coimbatore", Phone: "0422-2301393",
				Latitude: 10.998, Longitude: 76.966, Timing: "24/7",
				Stock: fullStock(map[string]int{"A+": 22, "B+": 18, "O+": 30, "O-": 3}),
			},
		},
	},
	"Maharashtra": {
		"Mumbai City": {
			{
				ID: 5, Name: "KEM Hospital Blood Bank", Type: "Government",
				Address: "Acharya Donde Marg, Parel, Mumbai", Phone: "022-24107000",
				Latitude: 19.0028, Longitude: 72.8415, Timing: "24/7",
				Stock: fullStock(map[string]int{"A+": 50, "O+": 65, "AB+": 15, "B-": 2}),
			},
			{
				ID: 6, Name: "Lilavati Hospital Blood Centre", Type: "Private",
				Address: "Bandra West, Mumbai", Phone: "022-26751000",
				Latitude: 19.0514, Longitude: 72.8277, Timing: "24/7",
				Stock: fullStock(map[string]int{"A+": 25, "B+": 30, "O-": 8}),
			},
		},
	},
	"Karnataka": {
		"Bangalore Urban": {
			{
				ID: 7, Name: "Rashtrotthana Blood Bank", Type: "Charitable",
				Address: "Kempe Gowda Nagar, Bangalore", Phone: "080-26612730",
				Latitude: 12.956, Longitude: 77.574, Timing: "24/7",
				Stock: fullStock(map[string]int{"O+": 100, "A+": 80, "B+": 85}),
			},
		},
	},
	"Delhi": {
		"New Delhi": {
			{
				ID: 8, Name: "AIIMS Blood Bank", Type: "Government",
				Address: "Ansari Nagar, New Delhi", Phone: "011-26594400",
				Latitude: 28.5672, Longitude: 77.21, Timing: "24/7",
				Stock: fullStock(map[string]int{"A+": 45, "AB+": 20, "O-": 12}),
			},
		},
	},
}
