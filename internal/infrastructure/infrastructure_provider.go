package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/eappleew/Chat-Cheappt/internal/config"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/database"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/database/repository"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/inference"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/logger"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/storage"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideLogger builds the configured logger
func ProvideLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
		log.Info().Msg("Database migrations completed successfully")
	}

	return db, nil
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(db *gorm.DB, logger zerolog.Logger) *Infrastructure {
	return &Infrastructure{
		DB:     db,
		Logger: logger,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Logger
	ProvideLogger,

	// Database
	ProvideDatabase,

	// Repositories
	repository.RepositoryProvider,

	// Upstream clients
	inference.NewInferenceProvider,
	wire.Bind(new(inference.ClientProvider), new(*inference.InferenceProvider)),
	inference.NewAssetDownloader,

	// Image storage
	storage.NewLocalStorage,

	// Infrastructure struct
	NewInfrastructure,
)
