package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/anantsaxena14/campus-sphere/internal/app/controllers"
	appMigrations "github.com/anantsaxena14/campus-sphere/internal/app/migrations"
	appRepos "github.com/anantsaxena14/campus-sphere/internal/app/repositories"
	appRoutes "github.com/anantsaxena14/campus-sphere/internal/app/routes"
	appServices "github.com/anantsaxena14/campus-sphere/internal/app/services"
	"github.com/anantsaxena14/campus-sphere/internal/config"
	"github.com/anantsaxena14/campus-sphere/internal/db"
	appMiddleware "github.com/anantsaxena14/campus-sphere/internal/middleware"
	pkgAuth "github.com/anantsaxena14/campus-sphere/internal/pkg/auth"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/email"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/filestorage"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/gemini"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/logger"
	"github.com/anantsaxena14/campus-sphere/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos               *appRepos.Repositories
	TokenService        *pkgAuth.TokenService
	EmailService        email.Service
	FileStorage         *filestorage.LocalStorage
	GeminiClient        *gemini.Client
	AuthService         *appServices.AuthService
	UserService         *appServices.UserService
	BusService          *appServices.BusService
	DriverService       *appServices.DriverService
	ResourceService     *appServices.ResourceService
	CampusService       *appServices.CampusService
	CommunityService    *appServices.CommunityService
	AdminService        *appServices.AdminService
	TutorService        *appServices.TutorService
	AuthController      *appControllers.AuthController
	UserController      *appControllers.UserController
	BusController       *appControllers.BusController
	DriverController    *appControllers.DriverController
	ResourceController  *appControllers.ResourceController
	CampusController    *appControllers.CampusController
	CommunityController *appControllers.CommunityController
	AdminController     *appControllers.AdminController
	TutorController     *appControllers.TutorController
	SessionGuard        *appMiddleware.SessionGuard
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and
// controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.TokenService = pkgAuth.NewTokenService(cfg.Session.Secret)

	deps.EmailService = email.NewService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
		BaseURL:   cfg.Server.BaseURL,
	}, lgr)

	geminiTimeout, _ := time.ParseDuration(cfg.Gemini.Timeout)
	deps.GeminiClient = gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: geminiTimeout,
	})
	if !deps.GeminiClient.Configured() {
		lgr.Warn().Msg("GEMINI_API_KEY not set, AI tutor endpoints will fail")
	}

	ttls := appServices.SessionTTLs{
		User:   cfg.SessionTTL(cfg.Session.UserTTL),
		Driver: cfg.SessionTTL(cfg.Session.DriverTTL),
		Admin:  cfg.SessionTTL(cfg.Session.AdminTTL),
	}

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.DriverRepository,
		deps.Repos.AdminRepository,
		deps.Repos.SessionRepository,
		deps.TokenService,
		deps.EmailService,
		ttls,
		lgr,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.BusRepository,
		deps.Repos.EventRepository,
		deps.Repos.PostRepository,
		lgr,
	)
	deps.BusService = appServices.NewBusService(deps.Repos.BusRepository, deps.Repos.DriverRepository, lgr)
	deps.DriverService = appServices.NewDriverService(deps.Repos.DriverRepository, deps.Repos.BusRepository, lgr)
	deps.ResourceService = appServices.NewResourceService(deps.Repos.ResourceRepository, deps.FileStorage, lgr)
	deps.CampusService = appServices.NewCampusService(deps.Repos.EventRepository, deps.Repos.DirectoryRepository, lgr)
	deps.CommunityService = appServices.NewCommunityService(deps.Repos.PostRepository, deps.Repos.ClubRepository, lgr)
	deps.AdminService = appServices.NewAdminService(
		deps.Repos.UserRepository,
		deps.Repos.BusRepository,
		deps.Repos.ResourceRepository,
		deps.Repos.EventRepository,
		deps.Repos.ClubRepository,
		deps.Repos.PostRepository,
		lgr,
	)
	deps.TutorService = appServices.NewTutorService(
		deps.Repos.ChatRepository,
		deps.Repos.UserRepository,
		deps.Repos.EventRepository,
		deps.Repos.ResourceRepository,
		deps.Repos.ClubRepository,
		deps.Repos.DirectoryRepository,
		deps.GeminiClient,
		lgr,
	)

	deps.SessionGuard = appMiddleware.NewSessionGuard(deps.TokenService, deps.Repos.SessionRepository)

	cookieSecure := strings.ToLower(cfg.Server.Mode) == "production"
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cookieSecure, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.BusController = appControllers.NewBusController(deps.BusService, lgr)
	deps.DriverController = appControllers.NewDriverController(deps.AuthService, deps.DriverService, cookieSecure, lgr)
	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService, lgr)
	deps.CampusController = appControllers.NewCampusController(deps.CampusService, lgr)
	deps.CommunityController = appControllers.NewCommunityController(deps.CommunityService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AuthService, deps.AdminService, cookieSecure, lgr)
	deps.TutorController = appControllers.NewTutorController(deps.TutorService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.BusController,
		deps.DriverController,
		deps.ResourceController,
		deps.CampusController,
		deps.CommunityController,
		deps.AdminController,
		deps.TutorController,
		deps.SessionGuard,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
