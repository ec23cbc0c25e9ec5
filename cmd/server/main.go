package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pokearch/registry/internal/api"
	"github.com/pokearch/registry/internal/config"
	"github.com/pokearch/registry/internal/factory"
	"github.com/pokearch/registry/internal/model"
	redisstorage "github.com/pokearch/registry/internal/storage/redis"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		cfg = config.Default()
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	owner, err := model.ParsePrincipal(cfg.Registry.Owner)
	if err != nil {
		logger.Error("invalid owner principal", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var self model.Principal
	if cfg.Registry.SelfAddress != "" {
		self, err = model.ParsePrincipal(cfg.Registry.SelfAddress)
		if err != nil {
			logger.Error("invalid self address", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Build factory config
	factoryCfg := factory.Config{
		Owner:       owner,
		SelfAddress: self,
		Logger:      logger,
		StorageType: cfg.Storage.Backend,
	}

	if cfg.Storage.Backend == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		redisCfg.PoolSize = cfg.Storage.RedisPoolSize
		redisCfg.MinIdleConns = cfg.Storage.RedisMinIdleConns
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		AccessService:   app.AccessService,
		RegistryService: app.RegistryService,
		GrantsService:   app.GrantsService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Server.Host
	serverConfig.Port = cfg.Server.Port
	serverConfig.ReadTimeout = cfg.Server.ReadTimeout
	serverConfig.WriteTimeout = cfg.Server.WriteTimeout
	serverConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// newLogger builds the application logger from the logging config
func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
