package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sagarc03/romserve/config"
	romhttp "github.com/sagarc03/romserve/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Load the asset table and serve it over HTTP with the JSON API mounted under the API prefix.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "HTTP server port (env: ROMSERVE_SERVER_PORT)")
	serveCmd.Flags().String("adapter", "chi", "request pipeline: chi or chain (env: ROMSERVE_SERVER_ADAPTER)")
	serveCmd.Flags().String("api-prefix", "/api", "JSON API prefix, always ignored by the asset router (env: ROMSERVE_API_PREFIX)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	router, err := newRouter(cfg)
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}
	slog.Info("asset table loaded",
		"assets", router.Table().Len(),
		"ignored_prefixes", router.IgnoredPrefixes(),
	)

	handler := romhttp.NewHandler(&romhttp.HandlerConfig{
		APIPrefix: cfg.API.Prefix,
		Metrics:   cfg.API.Metrics,
		CORS:      cfg.CORS,
	}, router)

	var h http.Handler
	if cfg.Server.Adapter == "chain" {
		h = handler.ChainRouter()
	} else {
		h = handler.Router()
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
	}()

	slog.Info("starting server", "addr", addr, "adapter", cfg.Server.Adapter, "api_prefix", cfg.API.Prefix)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
