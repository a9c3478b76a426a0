package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"mergington/internal/adapters/httpapi"
	"mergington/internal/adapters/notify"
	"mergington/internal/application"
	"mergington/internal/config"
	"mergington/internal/infrastructure/database"
	"mergington/internal/infrastructure/i18n"
	"mergington/internal/infrastructure/logging"
	"mergington/internal/infrastructure/memory"
	"mergington/internal/infrastructure/seed"
	"mergington/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	var activityRepo output.ActivityRepository
	if cfg.DatabaseURL != "" {
		version, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
		if err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
		logger.Info("migrations applied", zap.Uint("version", version))

		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("database connection failed", zap.Error(err))
		}
		defer pool.Close()

		repo := database.NewActivityRepository(pool)
		if err := repo.Seed(ctx, seed.Activities()); err != nil {
			logger.Fatal("seeding failed", zap.Error(err))
		}
		activityRepo = repo
		logger.Info("using postgres store")
	} else {
		activityRepo = memory.NewActivityRepository(seed.Activities())
		logger.Info("using in-memory store")
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale, logger)

	var notifier output.Notifier = notify.Noop{}
	if cfg.DiscordToken != "" {
		announcer, err := notify.NewAnnouncer(cfg.DiscordToken, cfg.DiscordChannelID, logger)
		if err != nil {
			logger.Warn("discord announcements disabled", zap.Error(err))
		} else {
			defer func() { _ = announcer.Close() }()
			notifier = announcer
			logger.Info("discord announcements enabled", zap.String("channel", cfg.DiscordChannelID))
		}
	}

	registry := application.NewRegistryService(activityRepo, translator, notifier)

	srv := httpapi.NewServer(cfg, registry, translator, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
