package app

import (
	"fmt"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/database"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires storage, email, services and handlers onto a gin
// engine. Shared with the test server.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	provider := newEmailProvider(cfg)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance, provider)
	appHandlers := initializeHandlers(cfg, serviceContainer, provider)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, cfg.Admin.Secret)

	return ginRouter
}

func newEmailProvider(cfg *config.Config) email.Provider {
	switch cfg.Email.Provider {
	case "smtp":
		return email.NewSMTPProvider(&email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
		})
	default:
		return email.NewSendGridProvider(cfg.Email.SendGridAPIKey)
	}
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage, provider email.Provider) *services.ServiceContainer {
	jobRepo := repositories.NewJobRepository(gormDB)
	jobTypeRepo := repositories.NewJobTypeRepository(gormDB)
	appRepo := repositories.NewApplicationRepository(gormDB)

	jobService := services.NewJobService(jobRepo)
	jobTypeService := services.NewJobTypeService(jobTypeRepo)
	applicationService := services.NewApplicationService(appRepo, jobRepo, storageInstance, provider, services.ApplicationConfig{
		FromEmail:         cfg.Email.FromEmail,
		ToEmail:           cfg.Email.ToEmail,
		MaxUploadSize:     cfg.Upload.MaxSize,
		AllowedExtensions: cfg.Upload.AllowedExtensions,
		SignedURLExpires:  cfg.Upload.SignedURLExpires,
		StorageConfigured: cfg.HasStorageConfig(),
	})

	return &services.ServiceContainer{
		JobService:         jobService,
		JobTypeService:     jobTypeService,
		ApplicationService: applicationService,
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer, provider email.Provider) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		JobHandler:         handlers.NewJobHandler(baseHandler, container.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		AdminHandler:       handlers.NewAdminHandler(baseHandler, container.JobService, container.JobTypeService, container.ApplicationService),
		FunctionHandler:    handlers.NewFunctionHandler(cfg, container.ApplicationService, provider),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	return router
}
