package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kerem/notesphere/internal/app/controllers"
	appMigrations "github.com/kerem/notesphere/internal/app/migrations"
	appRepos "github.com/kerem/notesphere/internal/app/repositories"
	appRoutes "github.com/kerem/notesphere/internal/app/routes"
	appServices "github.com/kerem/notesphere/internal/app/services"
	"github.com/kerem/notesphere/internal/config"
	"github.com/kerem/notesphere/internal/db"
	appMiddleware "github.com/kerem/notesphere/internal/middleware"
	pkgAuth "github.com/kerem/notesphere/internal/pkg/auth"
	"github.com/kerem/notesphere/internal/pkg/filestorage"
	"github.com/kerem/notesphere/internal/pkg/helpers"
	"github.com/kerem/notesphere/internal/pkg/logger"
	"github.com/kerem/notesphere/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos               *appRepos.Repositories
	Storage             filestorage.BlobStorage
	LocalStorage        *filestorage.LocalStorage // non-nil only with the local driver
	JWTService          *pkgAuth.JWTService
	CatalogService      appServices.CatalogService
	NoteService         appServices.NoteService
	ReviewService       appServices.ReviewService
	UploadService       appServices.UploadService
	StatsService        appServices.StatsService
	AuthService         appServices.DeveloperAuthService
	HealthController    *appControllers.HealthController
	CatalogController   *appControllers.CatalogController
	NoteController      *appControllers.NoteController
	ReviewController    *appControllers.ReviewController
	UploadController    *appControllers.UploadController
	DeveloperController *appControllers.DeveloperController
	AuthController      *appControllers.AuthController
	AuthMiddleware      *appMiddleware.AuthMiddleware
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default catalog rows.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	// Fresh databases get the default departments/courses/tags so the
	// frontend dropdowns are never empty.
	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	switch strings.ToLower(cfg.Storage.Driver) {
	case "firebase":
		deps.Storage = filestorage.NewFirebaseStorage(filestorage.FirebaseConfig{
			Bucket:        cfg.Storage.Firebase.Bucket,
			Endpoint:      cfg.Storage.Firebase.Endpoint,
			AuthToken:     cfg.Storage.Firebase.AuthToken,
			UploadTimeout: helpers.ParseDuration(cfg.Storage.Firebase.UploadTimeout, 30*time.Second),
			MaxAttempts:   uint(cfg.Storage.Firebase.MaxAttempts),
		})
		lgr.Info().Str("bucket", cfg.Storage.Firebase.Bucket).Msg("Using Firebase blob storage")
	case "local":
		baseURL := cfg.Storage.Local.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:" + cfg.Server.Port + "/uploads"
		}
		local, err := filestorage.NewLocalStorage(cfg.Storage.Local.BasePath, baseURL)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to initialize file storage")
			return nil, fmt.Errorf("failed to initialize file storage: %w", err)
		}
		deps.Storage = local
		deps.LocalStorage = local
		lgr.Info().Str("path", local.BasePath()).Msg("Using local blob storage")
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 1*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.CatalogService = appServices.NewCatalogService(
		deps.Repos.DepartmentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.TagRepository,
	)
	deps.NoteService = appServices.NewNoteService(deps.Repos.NoteRepository)
	deps.ReviewService = appServices.NewReviewService(deps.Repos.ReviewRepository)
	deps.UploadService = appServices.NewUploadService(deps.Repos.NoteRepository, deps.Storage)
	deps.StatsService = appServices.NewStatsService(deps.Repos.StatsRepository)
	deps.AuthService = appServices.NewDeveloperAuthService(cfg.Developer.PasswordHash, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.Developer.AuthEnabled)

	deps.HealthController = appControllers.NewHealthController()
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.NoteController = appControllers.NewNoteController(deps.NoteService)
	deps.ReviewController = appControllers.NewReviewController(deps.ReviewService)
	deps.UploadController = appControllers.NewUploadController(deps.UploadService)
	deps.DeveloperController = appControllers.NewDeveloperController(deps.StatsService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)

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

	// Local driver serves the uploaded blobs itself
	if deps.LocalStorage != nil {
		router.Static("/uploads", deps.LocalStorage.BasePath())
	}

	appRoutes.SetupRouter(router,
		deps.HealthController,
		deps.CatalogController,
		deps.NoteController,
		deps.ReviewController,
		deps.UploadController,
		deps.DeveloperController,
		deps.AuthController,
		deps.AuthMiddleware,
	)

	return router
}
