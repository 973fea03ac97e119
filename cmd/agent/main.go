package main

import (
	"context"
	"fmt"

	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/internal/crypto"
	"github.com/rvanwijk/pii-guard/internal/detector"
	handler "github.com/rvanwijk/pii-guard/internal/handler/http"
	"github.com/rvanwijk/pii-guard/internal/llm"
	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/metrics"
	"github.com/rvanwijk/pii-guard/internal/redaction"
	"github.com/rvanwijk/pii-guard/internal/server"
	"github.com/rvanwijk/pii-guard/internal/service"
	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/internal/vault"
	"github.com/rvanwijk/pii-guard/internal/workers"
	"github.com/rvanwijk/pii-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pii-guard-agent")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// The full config carries the vault passphrase; log the shape, not
	// the values.
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("detector", cfg.Detector.BaseURL).
		Str("llm_mode", cfg.LLM.Mode).
		Msg("received configs")

	// Packaged builds stamp the version through ldflags; an explicit
	// APP_VERSION still wins.
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	unlocked, err := vault.Open(ctx, cfg.Vault.Passphrase, storages, crypto.NewKeyChainService(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error unlocking vault")
	}

	registry, err := redaction.NewRegistry(ctx, storages.Terms, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading redaction terms")
	}

	entityDetector, err := detector.New(cfg.Detector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating entity detector")
	}

	pool := workers.NewDocumentPool(cfg.Workers, log)
	workers.NewWorkers(pool).Run()
	defer pool.Shutdown()

	m := metrics.New()

	services, err := service.NewServices(unlocked, registry, entityDetector, llm.New(cfg.LLM, log), pool, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	handlers := handler.NewHandler(services, m, build, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
