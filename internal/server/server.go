// Package server owns the process lifecycle: configuration, subsystem
// boot, the HTTP and gRPC listeners, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/goldenaura/config"
	"github.com/shashiranjanraj/goldenaura/pkg/cache"
	"github.com/shashiranjanraj/goldenaura/pkg/database"
	grpcserver "github.com/shashiranjanraj/goldenaura/pkg/grpc"
	"github.com/shashiranjanraj/goldenaura/pkg/logger"
	"github.com/shashiranjanraj/goldenaura/pkg/notification"
	"github.com/shashiranjanraj/goldenaura/pkg/queue"
	"github.com/shashiranjanraj/goldenaura/pkg/schedule"
	"github.com/shashiranjanraj/goldenaura/pkg/storage"
)

const (
	queueWorkers    = 5
	shutdownTimeout = 10 * time.Second
)

// Start boots every subsystem, serves handler over HTTP alongside the
// gRPC health endpoint, and blocks until SIGINT/SIGTERM. Redis-backed
// subsystems degrade gracefully when Redis is unreachable; the database
// is mandatory.
func Start(handler http.Handler) error {
	if err := config.Load(); err != nil {
		return err
	}
	bootAuditLog()

	if err := database.Connect(); err != nil {
		return err
	}
	queue.UseDB(database.DB)

	if err := cache.Connect(); err != nil {
		logger.Warn("server: cache unavailable, falling back", "error", err)
	} else {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}

	storage.Connect()
	notification.SetSlackWebhook(config.Get("SLACK_WEBHOOK_URL", ""))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	queue.StartWorkers(ctx, queueWorkers)
	schedule.Start(ctx)

	grpcSrv, _, err := grpcserver.Start(config.GRPCPort())
	if err != nil {
		return err
	}
	defer grpcserver.Stop(grpcSrv)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// bootAuditLog tees log output into MongoDB when MONGO_LOG_URI is set.
// Local and test runs keep the plain stdout handler.
func bootAuditLog() {
	uri := config.MongoLogURI()
	if uri == "" {
		return
	}

	mh, err := logger.NewMongoHandler(uri, "goldenaura", "logs")
	if err != nil {
		logger.Warn("server: mongo log sink disabled", "error", err)
		return
	}

	logger.L = slog.New(logger.NewMultiHandler(logger.L.Handler(), mh))
	slog.SetDefault(logger.L)
}
