// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/patent-search/internal/metrics"
	"github.com/pdiddy/patent-search/internal/search"
	"github.com/pdiddy/patent-search/internal/session"
	"github.com/pdiddy/patent-search/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the patent search web application",
	Long: `Serve starts the browser application. Each browser gets its own
session holding its results, selection and open record; sessions idle for
longer than server.session_ttl are dropped. Prometheus metrics are served
at /metrics.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :5000)")
	serveCmd.Flags().Float64("rps", 0, "maximum requests per second to the API (0 = unlimited)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("search.requests_per_second", serveCmd.Flags().Lookup("rps"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cfg, log, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return err
	}

	backend := search.NewDSAPIBackend(cfg.Search)
	store := session.NewStore(cfg.Server.SessionTTL, cfg.Server.NoticeTTL)
	server := web.NewServer(store, backend, backend, cfg.Server.NoticeTTL, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info("Starting patent-search",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
		zap.String("dataset", cfg.Search.Dataset),
		zap.String("base_url", cfg.Search.BaseURL),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("HTTP server error", zap.Error(err))
		}
		return err
	case <-ctx.Done():
		log.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during shutdown", zap.Error(err))
		return err
	}
	log.Info("Server stopped gracefully")
	return nil
}
