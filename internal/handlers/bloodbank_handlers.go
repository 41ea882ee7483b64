package handlers

import (
	"net/http"

	"bloodlink_backend/internal/services"
	"bloodlink_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BloodBankHandler serves the blood bank availability lookup.
type BloodBankHandler struct {
	bankService services.BloodBankService
}

// NewBloodBankHandler creates a new BloodBankHandler.
func NewBloodBankHandler(bs services.BloodBankService) *BloodBankHandler {
	return &BloodBankHandler{bankService: bs}
}

// FindBloodBanks returns blood banks in a state, optionally narrowed to a
// district, with per-group stock levels.
func (h *BloodBankHandler) FindBloodBanks(c *gin.Context) {
	state := c.Query("state")
	district := c.Query("district")

	if utils.IsEmpty(state) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "state query parameter is required.", "missing state"))
		return
	}

	banks, err := h.bankService.Find(state, district)
	if err != nil {
		utils.LogError(err, "FindBloodBanks: Error from bankService.Find")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch blood banks.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"blood_banks": banks, "count": len(banks)})
}
