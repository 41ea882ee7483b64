package handlers

import (
	"errors"
	"net/http"

	"bloodlink_backend/internal/services"
	"bloodlink_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DonorHandler holds the donor service for search and admin-style inserts.
type DonorHandler struct {
	donorService services.DonorService
}

// NewDonorHandler creates a new DonorHandler.
func NewDonorHandler(ds services.DonorService) *DonorHandler {
	return &DonorHandler{donorService: ds}
}

// SearchDonors returns eligible donors matching the query parameters.
// All filters are optional and compose with AND semantics.
func (h *DonorHandler) SearchDonors(c *gin.Context) {
	query := services.DonorQuery{
		BloodGroup: c.Query("blood_group"),
		State:      c.Query("state"),
		District:   c.Query("district"),
		City:       c.Query("city"),
		Gender:     c.Query("gender"),
	}

	donors, err := h.donorService.Search(query)
	if err != nil {
		utils.LogError(err, "SearchDonors: Error from donorService.Search")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to search donors.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"donors": donors, "count": len(donors)})
}

// AddDonor inserts a donor record without credentials, the quick-add path.
func (h *DonorHandler) AddDonor(c *gin.Context) {
	var req services.AddDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	donor, err := h.donorService.AddDonor(req)
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		utils.LogError(err, "AddDonor: Error from donorService.AddDonor")
		if errors.Is(err, services.ErrPhoneExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Phone number already registered.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to add donor.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, donor)
}
