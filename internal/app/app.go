package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"torami_backend/database"
	"torami_backend/internal/auth"
	"torami_backend/internal/config"
	"torami_backend/internal/email"
	"torami_backend/internal/handlers"
	"torami_backend/internal/logger"
	"torami_backend/internal/middleware"
	"torami_backend/internal/models"
	"torami_backend/internal/repositories"
	"torami_backend/internal/routes"
	"torami_backend/internal/services"
	"torami_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	// TranslateError maps driver errors onto gorm sentinels, which the
	// repositories rely on for duplicate-key detection.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}
	logger.Info("AutoMigrate completed")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.Enabled {
		emailService = email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		logger.Info("Email provider: SMTP", "host", cfg.Email.SMTPHost)
	} else {
		emailService = email.NewNoopProvider()
		logger.Warn("Email disabled, outgoing mail is logged and dropped")
	}

	userRepo := repositories.NewUserRepository(gormDB)
	standRepo := repositories.NewStandRepository(gormDB)
	cosplayRepo := repositories.NewCosplayRepository(gormDB)
	messageRepo := repositories.NewMessageRepository(gormDB)
	galleryRepo := repositories.NewGalleryRepository(gormDB)
	giveawayRepo := repositories.NewGiveawayRepository(gormDB)
	eventRepo := repositories.NewEventRepository(gormDB)
	sponsorRepo := repositories.NewSponsorRepository(gormDB)
	stampRepo := repositories.NewStampRepository(gormDB)
	configRepo := repositories.NewAppConfigRepository(gormDB)
	statsRepo := repositories.NewStatsRepository(gormDB)

	standWorkflow := services.NewSubmissionWorkflow(services.StandPolicy, standRepo, messageRepo, userRepo, emailService)
	cosplayWorkflow := services.NewSubmissionWorkflow(services.CosplayPolicy, cosplayRepo, messageRepo, userRepo, emailService)

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(userRepo),
		StandService:     services.NewStandService(standWorkflow, standRepo),
		CosplayService:   services.NewCosplayService(cosplayWorkflow, cosplayRepo),
		GalleryService:   services.NewGalleryService(galleryRepo),
		GiveawayService:  services.NewGiveawayService(giveawayRepo),
		EventService:     services.NewEventService(eventRepo),
		SponsorService:   services.NewSponsorService(sponsorRepo),
		StampService:     services.NewStampService(stampRepo),
		AppConfigService: services.NewAppConfigService(configRepo),
		StatsService:     services.NewStatsService(statsRepo),
		EmailService:     emailService,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, container.AuthService),
		StandHandler:    handlers.NewStandHandler(baseHandler, container.StandService),
		CosplayHandler:  handlers.NewCosplayHandler(baseHandler, container.CosplayService),
		GalleryHandler:  handlers.NewGalleryHandler(baseHandler, container.GalleryService),
		GiveawayHandler: handlers.NewGiveawayHandler(baseHandler, container.GiveawayService),
		EventHandler:    handlers.NewEventHandler(baseHandler, container.EventService),
		SponsorHandler:  handlers.NewSponsorHandler(baseHandler, container.SponsorService),
		StampHandler:    handlers.NewStampHandler(baseHandler, container.StampService),
		ConfigHandler:   handlers.NewConfigHandler(baseHandler, container.AppConfigService),
		StatsHandler:    handlers.NewStatsHandler(baseHandler, container.StatsService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin creates the bootstrap admin account when configured and
// absent. Without it a fresh deploy has no way to moderate anything.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
