package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"salesspark_backend/internal/adapters"
	analyticsservice "salesspark_backend/internal/analytics/service"
	"salesspark_backend/internal/events"
	"salesspark_backend/internal/reports"
	"salesspark_backend/internal/scheduler"
	"salesspark_backend/internal/store"
	"salesspark_backend/internal/telemetry"
	"salesspark_backend/platform/config"
	"salesspark_backend/platform/logger"
	"salesspark_backend/platform/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env, "cron", cfg.GetWeeklyReportCron())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var stores *store.Stores
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		s, err := store.Open(ctx, cfg)
		if err != nil {
			return err
		}
		stores = s
		return nil
	}); err != nil {
		log.Error("failed to open database", "error", err)
		panic("failed to open database: " + err.Error())
	}
	defer stores.Close()

	eventBus := events.NewInMemoryBus(log)
	workerMetrics := metrics.New()
	telemetry.NewRecorder(workerMetrics).RegisterHandlers(eventBus)

	archive, err := reports.NewMinIOArchive(cfg)
	if err != nil {
		log.Error("failed to initialize report archive", "error", err)
		panic("failed to initialize report archive: " + err.Error())
	}
	var reportArchive reports.Archive
	if archive != nil {
		if err := withRetry(ctx, log, "ensure reports bucket", 5, 2*time.Second, func() error {
			return archive.EnsureBucketExists(ctx)
		}); err != nil {
			log.Error("failed to ensure storage bucket exists", "error", err, "bucket", cfg.GetMinioBucketReports())
			panic("failed to ensure storage bucket exists: " + err.Error())
		}
		reportArchive = archive
	}

	recipient := ""
	if cfg.IsReportEmailEnabled() {
		recipient = cfg.GetReportRecipient()
	}
	reports.New(reports.NewSender(cfg), recipient, reportArchive, log).RegisterHandlers(eventBus)

	pipelineReader := adapters.NewPipelineReader(stores.Leads, stores.Campaigns)
	analyticsSvc := analyticsservice.New(pipelineReader, eventBus, cfg.GetSyntheticMinLeads(), log)

	periodic, err := scheduler.NewPeriodic(cfg, log)
	if err != nil {
		log.Error("failed to initialize periodic scheduler", "error", err)
		panic("failed to initialize periodic scheduler: " + err.Error())
	}
	go periodic.Run(ctx)

	metricsSrv := &http.Server{
		Addr:              getEnv("SCHEDULER_METRICS_ADDR", ":9091"),
		Handler:           workerMetrics.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}()

	worker, err := scheduler.NewWorker(cfg, analyticsSvc, workerMetrics, log)
	if err != nil {
		log.Error("failed to initialize scheduler worker", "error", err)
		panic("failed to initialize scheduler worker: " + err.Error())
	}

	worker.Run(ctx)
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return errors.New(name + ": invalid retry attempts")
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s: %w", name, lastErr)
}

func getEnv(key, fallback string) string {
	if raw := strings.TrimSpace(os.Getenv(key)); raw != "" {
		return raw
	}
	return fallback
}
