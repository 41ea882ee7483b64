package handlers

import (
	"errors"
	"net/http"

	"bloodlink_backend/internal/services"
	"bloodlink_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GeoHandler serves the state and district dropdown data.
type GeoHandler struct {
	geoService services.GeoService
}

// NewGeoHandler creates a new GeoHandler.
func NewGeoHandler(gs services.GeoService) *GeoHandler {
	return &GeoHandler{geoService: gs}
}

// ListStates returns the list of Indian states.
func (h *GeoHandler) ListStates(c *gin.Context) {
	states, err := h.geoService.States()
	if err != nil {
		utils.LogError(err, "ListStates: Error from geoService.States")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch states.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"states": states})
}

// ListDistricts returns the districts of a given state.
func (h *GeoHandler) ListDistricts(c *gin.Context) {
	state := c.Param("state")

	districts, err := h.geoService.Districts(state)
	if err != nil {
		if errors.Is(err, services.ErrStateUnknown) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Unknown state.", err.Error()))
			return
		}
		utils.LogError(err, "ListDistricts: Error from geoService.Districts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch districts.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state, "districts": districts})
}
