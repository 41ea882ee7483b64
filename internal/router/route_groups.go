package router

import (
	"bloodlink_backend/internal/handlers"
	"bloodlink_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the registration and login routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.RegisterDonor)
		authRoutes.POST("/login", authHandler.LoginDonor)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.GET("/me", authHandler.GetCurrentDonor)
		}
	}
}

// SetupDonorRoutes sets up the donor search and insert routes. Search is
// public; inserting a record on someone's behalf needs a logged-in donor.
func SetupDonorRoutes(apiGroup *gin.RouterGroup, donorHandler *handlers.DonorHandler) {
	donorRoutes := apiGroup.Group("/donors")
	{
		donorRoutes.GET("/search", donorHandler.SearchDonors)

		authRequiredRoutes := donorRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.POST("", donorHandler.AddDonor)
		}
	}
}

// SetupRequestRoutes sets up the emergency request routes. Posting and
// listing are public; matching, skipping, and fulfilling need a logged-in
// donor.
func SetupRequestRoutes(apiGroup *gin.RouterGroup, requestHandler *handlers.RequestHandler) {
	requestRoutes := apiGroup.Group("/requests")
	{
		requestRoutes.POST("", requestHandler.CreateRequest)
		requestRoutes.GET("", requestHandler.ListRequests)

		authRequiredRoutes := requestRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.GET("/matching", requestHandler.MatchingRequests)
			authRequiredRoutes.POST("/:id/skip", requestHandler.SkipRequest)
			authRequiredRoutes.POST("/:id/fulfill", requestHandler.FulfillRequest)
		}
	}

	donationRoutes := apiGroup.Group("/donations")
	donationRoutes.Use(middleware.AuthMiddleware())
	{
		donationRoutes.GET("", requestHandler.DonationHistory)
	}
}

// SetupEventRoutes sets up the donation event routes. Listing is public;
// creating a drive needs a logged-in donor to attribute it to.
func SetupEventRoutes(apiGroup *gin.RouterGroup, eventHandler *handlers.EventHandler) {
	eventRoutes := apiGroup.Group("/events")
	{
		eventRoutes.GET("", eventHandler.ListEvents)

		authRequiredRoutes := eventRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.POST("", eventHandler.CreateEvent)
		}
	}
}

// SetupTestimonialRoutes sets up the testimonial routes.
func SetupTestimonialRoutes(apiGroup *gin.RouterGroup, testimonialHandler *handlers.TestimonialHandler) {
	testimonialRoutes := apiGroup.Group("/testimonials")
	{
		testimonialRoutes.POST("", testimonialHandler.CreateTestimonial)
		testimonialRoutes.GET("", testimonialHandler.ListTestimonials)
	}
}

// SetupGeoRoutes sets up the state and district lookup routes.
func SetupGeoRoutes(apiGroup *gin.RouterGroup, geoHandler *handlers.GeoHandler) {
	geoRoutes := apiGroup.Group("/geo")
	{
		geoRoutes.GET("/states", geoHandler.ListStates)
		geoRoutes.GET("/states/:state/districts", geoHandler.ListDistricts)
	}
}

// SetupBloodBankRoutes sets up the blood bank availability routes.
func SetupBloodBankRoutes(apiGroup *gin.RouterGroup, bankHandler *handlers.BloodBankHandler) {
	bankRoutes := apiGroup.Group("/blood-banks")
	{
		bankRoutes.GET("", bankHandler.FindBloodBanks)
	}
}
