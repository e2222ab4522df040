package main

import (
	"net/http"
	"os"

	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/api"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/config"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/database"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/handler"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/leaderboard"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/logger"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/middleware"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/services"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Wire the store and the scoring engine
	dataStore := store.New(db)
	engine := leaderboard.NewEngine(dataStore)

	// Cloudinary est optionnel, l'upload d'avatar est désactivé sans lui
	avatarService, err := services.NewCloudinaryService(cfg)
	if err != nil {
		logger.Warning("Avatar upload disabled: %v", err)
		avatarService = nil
	}

	handler.Init(dataStore, engine, avatarService)

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
