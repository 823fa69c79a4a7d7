package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"user-query-service/internal/config"
	"user-query-service/internal/usecase/user"
	"user-query-service/pkg/logger"
)

// App wires configuration, logging and the user query service together
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Users  user.Usecase
}

// New creates an application using the config directory named by CONFIG_PATH,
// or the working directory when it is unset.
func New() (*App, error) {
	return NewWithConfigPath(getConfigPath())
}

// NewWithConfigPath creates an application reading app.env from path
func NewWithConfigPath(path string) (*App, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	l, err := initLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("user query service ready",
		zap.String("service", cfg.Logger.ServiceName),
		zap.String("version", cfg.Logger.ServiceVersion),
		zap.String("environment", cfg.App.Env),
	)

	return &App{
		Config: cfg,
		Logger: l,
		Users:  user.New(l.Named("users")),
	}, nil
}

// Close flushes buffered log entries
func (a *App) Close() error {
	if a.Logger == nil {
		return nil
	}

	if err := a.Logger.Sync(); err != nil && !logger.IsStdSyncError(err) {
		return fmt.Errorf("logger sync: %w", err)
	}
	return nil
}

// initLogger initializes the application logger
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.NewWithConfig(logger.Config{
		Level:          cfg.Logger.Level,
		Format:         cfg.Logger.Format,
		OutputPath:     cfg.Logger.OutputPath,
		EnableSampling: cfg.Logger.EnableSampling,
		ServiceName:    cfg.Logger.ServiceName,
		ServiceVersion: cfg.Logger.ServiceVersion,
		Environment:    cfg.App.Env,
	})
}

// getConfigPath returns the configuration path
func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "."
}
