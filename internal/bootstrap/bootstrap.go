// Package bootstrap assembles the application: config, logger, the
// configured storage backend and the data layer on top of it.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iiuc/alumnihub/internal/app/repositories"
	"github.com/iiuc/alumnihub/internal/app/services"
	"github.com/iiuc/alumnihub/internal/app/session"
	"github.com/iiuc/alumnihub/internal/config"
	"github.com/iiuc/alumnihub/internal/kvstore"
	"github.com/iiuc/alumnihub/internal/pkg/auth"
	"github.com/iiuc/alumnihub/internal/pkg/logger"
	"github.com/iiuc/alumnihub/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Config     *config.Config
	Store      kvstore.Store
	Records    *store.RecordStore
	Repos      *repositories.Repositories
	Session    *session.Provider
	Directory  services.DirectoryService
	Moderation services.ModerationService
	Logger     zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("ALUMNIHUB_CONFIG", filepath.Join("configs", "config.yaml"))
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

// OpenStore builds the key-value store the config selects
func OpenStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (kvstore.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		return kvstore.NewFileStore(cfg.Storage.Path)

	case config.DriverMemory:
		lgr.Warn().Msg("Memory storage selected, data will not survive a restart")
		return kvstore.NewMemoryStore(), nil

	case config.DriverRedis:
		return kvstore.NewRedisStore(ctx, cfg.Storage.RedisURL)

	case config.DriverPostgres:
		maxLifetime, err := time.ParseDuration(cfg.Storage.Postgres.ConnMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("invalid connection max lifetime: %w", err)
		}
		return kvstore.NewPostgresStore(ctx, kvstore.PostgresConfig{
			ConnString:      cfg.GetPostgresConnectionString(),
			MaxOpenConns:    cfg.Storage.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Storage.Postgres.MaxIdleConns,
			ConnMaxLifetime: maxLifetime,
		})

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// BuildDependencies wires the full data layer over the configured store
func BuildDependencies(ctx context.Context) (*Dependencies, error) {
	cfg, lgr, err := LoadConfigAndSetupLogger()
	if err != nil {
		return nil, err
	}

	kv, err := OpenStore(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to open storage")
		return nil, err
	}
	lgr.Info().Str("driver", cfg.Storage.Driver).Msg("Storage opened")

	records := store.NewRecordStore(kv, cfg.Storage.Prefix, lgr)
	repos := repositories.NewRepositories(records, lgr)

	tokens := auth.NewTokenService(auth.TokenConfig{
		SecretKey:   cfg.Auth.TokenSecret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.Auth.TokenIssuer,
	})
	creds := session.NewCredentialStore(records, lgr)
	sess := session.NewProvider(kv, creds, tokens, session.Mode(cfg.Auth.Mode), lgr)

	return &Dependencies{
		Config:     cfg,
		Store:      kv,
		Records:    records,
		Repos:      repos,
		Session:    sess,
		Directory:  services.NewDirectoryService(repos.Submissions, lgr),
		Moderation: services.NewModerationService(repos.Submissions, repos.Reports, repos.Posts, lgr),
		Logger:     lgr,
	}, nil
}

// Close releases the underlying storage
func (d *Dependencies) Close() {
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error().Err(err).Msg("Failed to close storage")
		}
	}
}
