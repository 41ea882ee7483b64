package router

import (
	"bloodlink_backend/internal/data"
	"bloodlink_backend/internal/handlers"
	"bloodlink_backend/internal/repositories"
	"bloodlink_backend/internal/services"
	"bloodlink_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. It wires repositories,
// services, and handlers against the given store and returns the event
// service so the caller can run the expiry sweeper.
func Setup(engine *gin.Engine, st storage.Store) services.EventService {
	// Initialize Repositories
	donorRepo := repositories.NewDonorRepository(st)
	requestRepo := repositories.NewRequestRepository(st)
	eventRepo := repositories.NewEventRepository(st)
	testimonialRepo := repositories.NewTestimonialRepository(st)
	historyRepo := repositories.NewHistoryRepository(st)

	// Initialize Services
	donorService := services.NewDonorService(donorRepo, data.ExternalDonors())
	requestService := services.NewRequestService(requestRepo, donorRepo, historyRepo)
	eventService := services.NewEventService(eventRepo)
	testimonialService := services.NewTestimonialService(testimonialRepo)
	geoService := services.NewGeoService(services.DefaultGeoURL)
	bankService := services.NewBloodBankService(services.DefaultBanksURL, services.DefaultStockURL)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(donorService)
	donorHandler := handlers.NewDonorHandler(donorService)
	requestHandler := handlers.NewRequestHandler(requestService)
	eventHandler := handlers.NewEventHandler(eventService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)
	geoHandler := handlers.NewGeoHandler(geoService)
	bankHandler := handlers.NewBloodBankHandler(bankService)

	apiV1 := engine.Group("/api/v1")

	SetupAuthRoutes(apiV1, authHandler)
	SetupDonorRoutes(apiV1, donorHandler)
	SetupRequestRoutes(apiV1, requestHandler)
	SetupEventRoutes(apiV1, eventHandler)
	SetupTestimonialRoutes(apiV1, testimonialHandler)
	SetupGeoRoutes(apiV1, geoHandler)
	SetupBloodBankRoutes(apiV1, bankHandler)

	return eventService
}
