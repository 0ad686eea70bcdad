package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	api "internship-board-backend/internal/api/http"
	"internship-board-backend/internal/config"
	"internship-board-backend/internal/logger"
	"internship-board-backend/internal/repository/postgres"
	"internship-board-backend/internal/security"
	"internship-board-backend/internal/service"
	"internship-board-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Internship Board Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Resume Storage
	localStorage, err := storage.NewLocalStorageService(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize resume storage", "error", err)
		log.Fatalf("Failed to initialize resume storage: %v", err)
	}
	logger.Info("Using local resume storage", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	authSvc := service.NewAuthService(store.UserRepository, store.ProfileRepository, tokenManager)
	profileSvc := service.NewProfileService(store.ProfileRepository, store.UserRepository)
	listingSvc := service.NewListingService(store.ListingRepository, store.ProfileRepository, store.UserRepository)
	appSvc := service.NewApplicationService(
		store.ApplicationRepository,
		store.ListingRepository,
		store.ProfileRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailSvc,
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	resumeSvc := service.NewResumeService(store.ProfileRepository, store.UserRepository, localStorage)

	// Initialize HTTP handlers and router
	router := api.NewRouter(api.RouterDependencies{
		Auth:         api.NewAuthHandler(authSvc),
		Profile:      api.NewProfileHandler(profileSvc),
		Listing:      api.NewListingHandler(listingSvc),
		Application:  api.NewApplicationHandler(appSvc),
		Notification: api.NewNotificationHandler(noteSvc),
		Resume:       api.NewResumeHandler(resumeSvc, cfg.Storage.MaxFileSize),
		AuthMW:       api.NewAuthMiddleware(tokenManager),
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
