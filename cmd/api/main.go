package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesspark_backend/internal/adapters"
	"salesspark_backend/internal/analytics"
	"salesspark_backend/internal/assistant"
	"salesspark_backend/internal/assistant/sessions"
	"salesspark_backend/internal/campaigns"
	"salesspark_backend/internal/content"
	"salesspark_backend/internal/events"
	apphttp "salesspark_backend/internal/http"
	"salesspark_backend/internal/http/router"
	"salesspark_backend/internal/leads"
	leadrepo "salesspark_backend/internal/leads/repository"
	"salesspark_backend/internal/reports"
	"salesspark_backend/internal/scheduler"
	"salesspark_backend/internal/store"
	"salesspark_backend/internal/telemetry"
	"salesspark_backend/platform/config"
	"salesspark_backend/platform/logger"
	"salesspark_backend/platform/metrics"
	"salesspark_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "driver", cfg.DatabaseDriver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

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
	log.Info("database ready", "driver", stores.Driver)

	if cfg.ShouldSeedDemoData() {
		inserted, err := leadrepo.SeedDemoLeads(ctx, stores.Leads, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
		if err != nil {
			log.Error("failed to seed demo leads", "error", err)
			panic("failed to seed demo leads: " + err.Error())
		}
		if inserted > 0 {
			log.Info("demo leads seeded", "count", inserted)
		}
	}

	sessionStore, closeSessions := initSessionStore(ctx, cfg, log)
	defer closeSessions()

	eventBus := events.NewInMemoryBus(log)
	appMetrics := metrics.New()
	telemetry.NewRecorder(appMetrics).RegisterHandlers(eventBus)

	reportDelivery, err := initReportDelivery(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize report delivery", "error", err)
		panic("failed to initialize report delivery: " + err.Error())
	}
	reportDelivery.RegisterHandlers(eventBus)

	// ========================================================================
	// Domain Modules
	// ========================================================================

	val := validator.New()

	leadsModule := leads.NewModule(stores.Leads, eventBus, val, log)
	campaignsModule := campaigns.NewModule(stores.Campaigns, eventBus, val, log)

	contentModule, err := content.NewModule(nil, val, log)
	if err != nil {
		log.Error("failed to initialize content module", "error", err)
		panic("failed to initialize content module: " + err.Error())
	}

	pipelineReader := adapters.NewPipelineReader(leadsModule.Repository(), campaignsModule.Repository())
	analyticsModule := analytics.NewModule(pipelineReader, eventBus, cfg, val, log)

	reportClient, closeReportClient := initReportScheduler(cfg, log)
	defer closeReportClient()
	if reportClient != nil {
		analyticsModule.SetReportScheduler(reportClient)
	}

	assistantModule := assistant.NewModule(
		sessionStore,
		analyticsModule.Service(),
		adapters.NewTopLeads(leadsModule.Repository()),
		eventBus,
		val,
		log,
	)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   stores.Health,
		Metrics:  appMetrics,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			leadsModule,
			campaignsModule,
			contentModule,
			analyticsModule,
			assistantModule,
		},
	}

	engine := router.New(app)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
		eventBus.Wait()
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initSessionStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (sessions.Store, func()) {
	if cfg.GetSessionStore() != config.SessionStoreRedis {
		log.Info("chat sessions kept in memory")
		return sessions.NewMemoryStore(), func() {}
	}

	redisStore, err := sessions.NewRedisStore(cfg.GetRedisURL(), cfg.GetSessionTTL())
	if err != nil {
		log.Error("failed to initialize redis session store", "error", err)
		panic("failed to initialize redis session store: " + err.Error())
	}
	if err := withRetry(ctx, log, "redis session store", 5, time.Second, func() error {
		return redisStore.Ping(ctx)
	}); err != nil {
		log.Error("redis session store unreachable", "error", err)
		panic("redis session store unreachable: " + err.Error())
	}

	log.Info("chat sessions kept in redis", "ttl", cfg.GetSessionTTL().String())
	return redisStore, func() { _ = redisStore.Close() }
}

func initReportDelivery(ctx context.Context, cfg *config.Config, log *logger.Logger) (*reports.Module, error) {
	var archive reports.Archive
	minioArchive, err := reports.NewMinIOArchive(cfg)
	if err != nil {
		return nil, err
	}
	if minioArchive != nil {
		if err := withRetry(ctx, log, "ensure reports bucket", 5, 2*time.Second, func() error {
			return minioArchive.EnsureBucketExists(ctx)
		}); err != nil {
			return nil, fmt.Errorf("failed to ensure storage bucket exists: %w", err)
		}
		archive = minioArchive
	} else {
		log.Info("MINIO_ENDPOINT not configured; weekly reports are not archived")
	}

	recipient := ""
	if cfg.IsReportEmailEnabled() {
		recipient = cfg.GetReportRecipient()
	} else {
		log.Info("SMTP not configured; weekly reports are not emailed")
	}

	return reports.New(reports.NewSender(cfg), recipient, archive, log), nil
}

func initReportScheduler(cfg config.SchedulerConfig, log *logger.Logger) (*scheduler.Client, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; weekly reports are generated inline")
		return nil, func() {}
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize report scheduler client", "error", err)
		return nil, func() {}
	}

	return client, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
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
