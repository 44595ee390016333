// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/abiflix/internal/api"
	"github.com/tomtom215/abiflix/internal/assistant"
	"github.com/tomtom215/abiflix/internal/catalog"
	"github.com/tomtom215/abiflix/internal/config"
	"github.com/tomtom215/abiflix/internal/logging"
	"github.com/tomtom215/abiflix/internal/storage"
	"github.com/tomtom215/abiflix/internal/supervisor"
	"github.com/tomtom215/abiflix/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("storage", cfg.Storage.Type).
		Bool("strict_persistence", cfg.Catalog.StrictPersistence).
		Bool("assistant", cfg.Assistant.Enabled()).
		Msg("Starting Abiflix")

	if cfg.IsProduction() && cfg.UsesDefaultAdminCredentials() {
		logging.Warn().Msg("Default admin credentials are active in production; set ADMIN_IDENTIFIER and ADMIN_SECRET")
	}

	kv, err := storage.Open(storage.Type(cfg.Storage.Type), cfg.Storage.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("Failed to open storage")
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing storage")
		}
	}()

	store, err := catalog.New(kv, storeOptions(cfg)...)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize catalog")
		return
	}
	logging.Info().Int("titles", len(store.ListAll())).Msg("Catalog loaded")

	session, err := newAssistantSession(cfg, store)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize assistant")
		return
	}

	mwConfig := api.DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.LoginRequests = cfg.Security.LoginRateLimit
	mwConfig.LoginWindow = cfg.Security.LoginRateWindow

	router := api.NewRouter(api.NewHandler(store, session), api.NewChiMiddleware(mwConfig))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		// Assistant replies can take as long as the completion timeout.
		WriteTimeout: cfg.Server.Timeout + cfg.Assistant.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + time.Second,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return
	}

	if gc, ok := kv.(*storage.BadgerKV); ok {
		tree.AddDataService(services.NewStorageGCService(gc, cfg.Storage.GCInterval, cfg.Storage.GCRatio))
		logging.Info().Dur("interval", cfg.Storage.GCInterval).Msg("Storage GC service added")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Abiflix stopped")
}

func storeOptions(cfg *config.Config) []catalog.Option {
	opts := []catalog.Option{
		catalog.WithKeys(cfg.Catalog.ContentKey, cfg.Catalog.UserKey),
		catalog.WithAdminCredentials(cfg.Security.AdminIdentifier, cfg.Security.AdminSecret),
		catalog.WithLogger(logging.WithComponent("catalog")),
	}
	if cfg.Catalog.StrictPersistence {
		opts = append(opts, catalog.WithStrictPersistence())
	}
	return opts
}

// newAssistantSession returns a session without a completer when no API key
// is configured; the session then answers with the not-configured text.
func newAssistantSession(cfg *config.Config, store *catalog.Store) (*assistant.Session, error) {
	logger := logging.WithComponent("assistant")
	if !cfg.Assistant.Enabled() {
		logger.Info().Msg("Assistant disabled (API_KEY not set)")
		return assistant.NewSession(store, nil, assistant.WithSessionLogger(logger)), nil
	}

	completer, err := assistant.NewOpenAICompleter(assistant.OpenAIConfig{
		APIKey:          cfg.Assistant.APIKey,
		BaseURL:         cfg.Assistant.BaseURL,
		Model:           cfg.Assistant.Model,
		Timeout:         cfg.Assistant.Timeout,
		RateLimit:       cfg.Assistant.RateLimit,
		Burst:           cfg.Assistant.Burst,
		BreakerFailures: cfg.Assistant.BreakerFailures,
		BreakerTimeout:  cfg.Assistant.BreakerTimeout,
	})
	if err != nil {
		return nil, err
	}
	logger.Info().Str("model", cfg.Assistant.Model).Msg("Assistant enabled")
	return assistant.NewSession(store, completer, assistant.WithSessionLogger(logger)), nil
}
