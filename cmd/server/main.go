package main

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/fanout"
	"github.com/MKhiriev/go-clip-sync/internal/gateway"
	"github.com/MKhiriev/go-clip-sync/internal/handler"
	"github.com/MKhiriev/go-clip-sync/internal/idempotency"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/presence"
	"github.com/MKhiriev/go-clip-sync/internal/server"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/internal/workers"
	"github.com/MKhiriev/go-clip-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-clip-sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configs")
	}
	cfg.App.Version = buildInfo.BuildVersion()

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}
	repos := store.NewRepositories(db, log)

	keys, err := idempotency.New(ctx, cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating idempotency store")
	}

	registry := presence.NewRegistry(log)
	broadcaster := fanout.NewBroadcaster(registry, cfg.Realtime.DeliveryTimeout, log)

	services, err := service.NewServices(repos, broadcaster, registry, keys, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	hub := gateway.NewHub(registry, broadcaster, services, cfg.Realtime, log)

	handlers, err := handler.NewHandlers(services, hub, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(
		workers.NewLedgerJanitor(repos.SyncLedger, cfg.Workers, log),
	)

	srv, err := server.NewServer(handlers, server.Dependencies{
		Realtime: hub,
		Workers:  background,
		Closers:  []io.Closer{keys, db},
	}, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
