package handlers

import (
	"errors"
	"net/http"

	"bloodlink_backend/internal/services"
	"bloodlink_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the donor service for the registration/login endpoints.
type AuthHandler struct {
	donorService services.DonorService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ds services.DonorService) *AuthHandler {
	return &AuthHandler{donorService: ds}
}

// respondValidation surfaces a service ValidationError as a 400 with the
// field-keyed error map, or reports false if err is something else.
func respondValidation(c *gin.Context, err error) bool {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		utils.RespondWithError(c, utils.NewValidationAPIError("Please fix the errors in the form.", vErr.Fields))
		return true
	}
	return false
}

// RegisterDonor handles the become-a-donor form submission.
func (h *AuthHandler) RegisterDonor(c *gin.Context) {
	var req services.RegisterDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	donor, err := h.donorService.Register(req)
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		utils.LogError(err, "RegisterDonor: Error from donorService.Register")
		if errors.Is(err, services.ErrPhoneExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Phone number already registered.", err.Error()))
		} else if errors.Is(err, services.ErrEmailExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Email already registered.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to register donor.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, donor)
}

// LoginDonor authenticates by email or phone plus password.
func (h *AuthHandler) LoginDonor(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Please fill in all fields", err.Error()))
		return
	}

	resp, err := h.donorService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Account not found. Please register as a donor.", err.Error()))
		} else if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid login details.", err.Error()))
		} else {
			utils.LogError(err, "LoginDonor: Error from donorService.Login")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to log in.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCurrentDonor returns the profile of the donor identified by the token.
func (h *AuthHandler) GetCurrentDonor(c *gin.Context) {
	donorID := c.GetString("donorID")

	donor, err := h.donorService.GetProfile(donorID)
	if err != nil {
		if errors.Is(err, services.ErrDonorNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Donor not found.", err.Error()))
		} else {
			utils.LogError(err, "GetCurrentDonor: Error from donorService.GetProfile")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch profile.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, donor)
}
