package main

import (
	"context"
	"os"

	"tourism-server/config"
	"tourism-server/di"
	"tourism-server/logger"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log := logger.Component("main")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container, err := di.NewContainer(ctx, cfg, logger.L())
	if err != nil {
		log.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}

	log.Info("refreshing catalogs")
	if err := container.CatalogRefresherService.RefreshCatalogs(ctx); err != nil {
		log.Warn("initial catalog refresh incomplete", "error", err)
	}
	container.CatalogRefresherService.StartPeriodicJob(ctx, cfg.RefreshInterval)

	if err := container.TourismHttpServer.Start(ctx); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
