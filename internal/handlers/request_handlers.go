package handlers

import (
	"errors"
	"net/http"

	"bloodlink_backend/internal/services"
	"bloodlink_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RequestHandler holds the emergency request service.
type RequestHandler struct {
	requestService services.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(rs services.RequestService) *RequestHandler {
	return &RequestHandler{requestService: rs}
}

// CreateRequest posts a new emergency blood request.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req services.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	created, err := h.requestService.Create(req)
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		utils.LogError(err, "CreateRequest: Error from requestService.Create")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to post request.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListRequests returns all open requests, newest first, with posted-ago labels.
func (h *RequestHandler) ListRequests(c *gin.Context) {
	views, err := h.requestService.List()
	if err != nil {
		utils.LogError(err, "ListRequests: Error from requestService.List")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch requests.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": views, "count": len(views)})
}

// MatchingRequests returns open requests matching the logged-in donor's blood
// group, excluding requests the donor skipped or already fulfilled.
func (h *RequestHandler) MatchingRequests(c *gin.Context) {
	donorID := c.GetString("donorID")

	views, err := h.requestService.MatchingForDonor(donorID)
	if err != nil {
		if errors.Is(err, services.ErrDonorNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Donor not found.", err.Error()))
			return
		}
		utils.LogError(err, "MatchingRequests: Error from requestService.MatchingForDonor")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch matching requests.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": views, "count": len(views)})
}

// SkipRequest hides a request from the logged-in donor's matching list.
func (h *RequestHandler) SkipRequest(c *gin.Context) {
	donorID := c.GetString("donorID")
	requestID := c.Param("id")

	if err := h.requestService.Skip(donorID, requestID); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Request not found.", err.Error()))
			return
		}
		utils.LogError(err, "SkipRequest: Error from requestService.Skip")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to skip request.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request skipped"})
}

// FulfillRequest records a donation against a request: the request is removed
// for everyone, a donation record is written, and the donor's last-donation
// date resets the eligibility window.
func (h *RequestHandler) FulfillRequest(c *gin.Context) {
	donorID := c.GetString("donorID")
	requestID := c.Param("id")

	record, err := h.requestService.Fulfill(donorID, requestID)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Request not found.", err.Error()))
		} else if errors.Is(err, services.ErrDonorNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Donor not found.", err.Error()))
		} else {
			utils.LogError(err, "FulfillRequest: Error from requestService.Fulfill")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record donation.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, record)
}

// DonationHistory returns the logged-in donor's past donation records.
func (h *RequestHandler) DonationHistory(c *gin.Context) {
	donorID := c.GetString("donorID")

	records, err := h.requestService.History(donorID)
	if err != nil {
		utils.LogError(err, "DonationHistory: Error from requestService.History")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch donation history.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": records, "count": len(records)})
}
