// Package main - Entry point for the practice-pricing API server
package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"practice-pricing/adapters/hclfile"
	"practice-pricing/api"
	"practice-pricing/core/catalog"
	"practice-pricing/core/pricing"
	"practice-pricing/db/postgres"
	"practice-pricing/internal/config"
	"practice-pricing/internal/logging"
)

const version = "0.1.0"

// providers is the read-only catalog surface the server needs,
// satisfied by both the postgres store and the hclfile catalog
type providers interface {
	pricing.CatalogProvider
	pricing.RuleProvider
	catalog.Source
}

func main() {
	cfgPath := flag.String("config", "practice-pricing.json", "config file path")
	flag.Parse()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logging.Error("cannot load config", zap.Error(err))
		os.Exit(1)
	}
	cfg.FromEnv()

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Error("cannot initialize logging", zap.Error(err))
		os.Exit(1)
	}
	defer logging.Sync()

	ctx := context.Background()
	store, err := openProviders(ctx, cfg)
	if err != nil {
		logging.Error("cannot open catalog store", zap.Error(err))
		os.Exit(1)
	}

	engine := pricing.New(store, store,
		pricing.WithConfig(cfg.EngineConfig()),
		pricing.WithLogger(logging.Logger))

	server := api.NewServer(engine, store, store, version, logging.Logger)

	logging.Info("practice-pricing server listening",
		zap.String("addr", cfg.Server.Listen),
		zap.String("version", version))

	if err := http.ListenAndServe(cfg.Server.Listen, server.Handler()); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

// openProviders prefers the Postgres store and falls back to the HCL
// catalog file for single-tenant setups without a database.
func openProviders(ctx context.Context, cfg *config.Config) (providers, error) {
	if cfg.Database.URL != "" {
		return postgres.Connect(ctx, cfg.Database.URL)
	}
	return hclfile.Load(cfg.Catalog.Path)
}
