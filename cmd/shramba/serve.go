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

	"github.com/erazemk/shramba/internal/api"
	"github.com/erazemk/shramba/internal/config"
	"github.com/erazemk/shramba/internal/logging"
	"github.com/erazemk/shramba/internal/metrics"
	"github.com/erazemk/shramba/internal/model"
	"github.com/erazemk/shramba/internal/session"
	"github.com/erazemk/shramba/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringP("addr", "a", ":8080", "listen address")
	f.String("log-level", "info", "minimum log level: debug, info, warn or error")
	f.StringP("log-file", "l", "", "also write logs to this file")
	f.Bool("seed", true, "load sample owners and items on start")
	f.String("actor", "admin", "name of the signed-in actor")
	f.String("role", model.RoleAdmin, "role of the signed-in actor: admin or user")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.Sources{
		ConfigFile: flagConfigFile,
		EnvFile:    flagEnvFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	closeLog, err := logging.Setup(level, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	st := store.New()
	if cfg.Seed {
		if err := store.Seed(st); err != nil {
			return fmt.Errorf("seeding store: %w", err)
		}
		stats := st.Stats()
		slog.Info("store seeded", "owners", stats.Owners, "items", stats.Items)
	}

	sess, err := session.New(model.Actor{Name: cfg.Actor, Role: cfg.Role})
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewRouter(st, sess, metrics.New(st)),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr, "actor", cfg.Actor, "role", cfg.Role)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		return err
	}

	slog.Info("server stopped")
	return nil
}
