package handlers

import (
	"net/http"

	"bloodlink_backend/internal/services"
	"bloodlink_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TestimonialHandler holds the testimonial service.
type TestimonialHandler struct {
	testimonialService services.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler.
func NewTestimonialHandler(ts services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: ts}
}

// CreateTestimonial submits a new testimonial.
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req services.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	created, err := h.testimonialService.Create(req)
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		utils.LogError(err, "CreateTestimonial: Error from testimonialService.Create")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to submit testimonial.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListTestimonials returns testimonials, optionally filtered by subject and
// sorted by submission time.
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	query := services.TestimonialQuery{
		FeedbackFor: c.Query("feedback_for"),
		Sort:        c.Query("sort"),
	}

	views, err := h.testimonialService.List(query)
	if err != nil {
		utils.LogError(err, "ListTestimonials: Error from testimonialService.List")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch testimonials.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": views, "count": len(views)})
}
