// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/inkpost/inkpost/internal/blog"
	blogpostgres "github.com/inkpost/inkpost/internal/blog/postgres"
	"github.com/inkpost/inkpost/internal/logging"
	"github.com/inkpost/inkpost/internal/observability"
	"github.com/inkpost/inkpost/internal/security"
	"github.com/inkpost/inkpost/internal/store"
	"github.com/inkpost/inkpost/internal/web"
	"github.com/inkpost/inkpost/pkg/errutil"
)

// Default values for serve command flags.
const (
	defaultListenAddr  = ":8080"
	defaultMetricsAddr = "127.0.0.1:9090"
	defaultLogFormat   = "json"

	shutdownTimeout = 10 * time.Second
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the blog server",
		Long: `Start the HTTP frontend and, unless disabled, the metrics/health
endpoint on its own listener.`,
		RunE: runServe,
	}

	cmd.Flags().String("server.addr", defaultListenAddr, "HTTP listen address")
	cmd.Flags().String("server.metrics_addr", defaultMetricsAddr, "metrics/health HTTP address (empty = disabled)")
	cmd.Flags().String("database.url", "", "PostgreSQL connection URL (or DATABASE_URL)")
	cmd.Flags().String("session.secret", "", "cookie-signing secret (or INKPOST_SECRET)")
	cmd.Flags().String("log.format", defaultLogFormat, "log format (json or text)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.SetDefault("inkpost", version, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	slog.Info("starting inkpost",
		"addr", cfg.Server.Addr,
		"log_format", cfg.Log.Format,
	)

	pool, err := store.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to database").Wrap(err)
	}
	defer pool.Close()
	slog.Info("connected to database")

	service, err := blog.NewService(
		blogpostgres.NewUserRepository(pool),
		blogpostgres.NewPostRepository(pool),
		blogpostgres.NewCommentRepository(pool),
		blogpostgres.NewLikeRepository(pool),
	)
	if err != nil {
		return oops.Code("SERVICE_INIT_FAILED").Wrap(err)
	}

	secCtx, err := security.NewContext(cfg.Session.Secret)
	if err != nil {
		return oops.Code("SECURITY_INIT_FAILED").Wrap(err)
	}

	// Observability server is optional; without it the frontend runs unmetered.
	var metrics *observability.Metrics
	var obsServer *observability.Server
	if cfg.Server.MetricsAddr != "" {
		obsServer = observability.NewServer(cfg.Server.MetricsAddr, func() bool {
			pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer pingCancel()
			return pool.Ping(pingCtx) == nil
		})
		obsErrCh, obsErr := obsServer.Start()
		if obsErr != nil {
			return oops.Code("OBSERVABILITY_START_FAILED").Wrap(obsErr)
		}
		go monitorServerErrors(ctx, cancel, obsErrCh, "observability")
		metrics = obsServer.Metrics()
	}

	webServer, err := web.NewServer(cfg.Server.Addr, service, secCtx, metrics, slog.Default())
	if err != nil {
		stopServer(obsServer)
		return oops.Code("WEB_INIT_FAILED").Wrap(err)
	}
	webErrCh, err := webServer.Start()
	if err != nil {
		stopServer(obsServer)
		return oops.Code("WEB_START_FAILED").Wrap(err)
	}
	go monitorServerErrors(ctx, cancel, webErrCh, "web")

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if stopErr := webServer.Stop(shutdownCtx); stopErr != nil {
		errutil.LogError(slog.Default(), "web server shutdown failed", stopErr)
	}
	if obsServer != nil {
		if stopErr := obsServer.Stop(shutdownCtx); stopErr != nil {
			errutil.LogError(slog.Default(), "observability server shutdown failed", stopErr)
		}
	}
	return nil
}

// stopServer best-effort stops the observability server during startup
// cleanup.
func stopServer(s *observability.Server) {
	if s == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		slog.Warn("failed to stop observability server during cleanup", "error", err)
	}
}

// monitorServerErrors cancels the run context when a server reports a fatal
// error, triggering graceful shutdown of everything else.
func monitorServerErrors(ctx context.Context, cancel context.CancelFunc, errCh <-chan error, name string) {
	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			slog.Error("server failed", "server", name, "error", err)
			cancel()
		}
	case <-ctx.Done():
	}
}
