package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bloodlink_backend/internal/router"
	"bloodlink_backend/internal/storage"
	"bloodlink_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const eventSweepInterval = time.Minute

func openStore() (storage.Store, error) {
	driver := utils.Getenv("STORE_DRIVER", "badger")
	switch driver {
	case "postgres":
		dbHost := utils.Getenv("DB_HOST", "localhost")
		dbPort := utils.Getenv("DB_PORT", "5432")
		dbUser := utils.Getenv("DB_USER", "bloodlink_user")
		dbPassword := utils.Getenv("DB_PASSWORD", "bloodlink_password")
		dbName := utils.Getenv("DB_NAME", "bloodlink_db")
		dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
		connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)
		return storage.OpenPostgres(connStr)
	case "badger":
		return storage.OpenBadger(utils.Getenv("BADGER_PATH", "./data/bloodlink"))
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Initialize Logger
	utils.InitLogger()

	st, err := openStore()
	if err != nil {
		utils.LogError(err, "Failed to open store")
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()
	utils.LogInfo("Store opened", map[string]interface{}{"driver": utils.Getenv("STORE_DRIVER", "badger")})

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	eventService := router.Setup(engine, st)

	// Sweep expired events in the background until shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go eventService.RunSweeper(ctx, eventSweepInterval)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
