package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trust-engine/config"
	httpHandler "trust-engine/internal/adapter/http/handler"
	pgStorage "trust-engine/internal/adapter/storage/postgres"
	redisStorage "trust-engine/internal/adapter/storage/redis"
	"trust-engine/internal/core/ports"
	"trust-engine/internal/metrics"
	"trust-engine/internal/service"
	"trust-engine/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Trust Engine")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	profileRepo := pgStorage.NewProfileRepo(pool)
	bookingRepo := pgStorage.NewBookingRepo(pool)
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	sessionRepo := pgStorage.NewSessionLogRepo(pool)
	trackingRepo := pgStorage.NewTrackingRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)

	// Initialize Redis stores
	velocityStore := redisStorage.NewVelocityStore(rdb)

	// Initialize metrics
	m := metrics.New()

	// Initialize analyzers (fixed factor order)
	analyzers := []service.Analyzer{
		service.NewUserBehaviorAnalyzer(profileRepo, bookingRepo, cfg.Fraud, log),
		service.NewDeviceRiskAnalyzer(trackingRepo, sessionRepo, cfg.Fraud, log),
		service.NewIPRiskAnalyzer(trackingRepo, sessionRepo, cfg.Fraud, log),
		service.NewPaymentPatternAnalyzer(paymentRepo, cfg.Fraud, log),
		service.NewContentAnalyzer(cfg.Fraud, log),
		service.NewVelocityAnalyzer(velocityStore, sessionRepo, cfg.Fraud, log),
	}

	// Initialize the async audit write path
	writer := service.NewAuditWriter(auditRepo, trackingRepo, sessionRepo, velocityStore, cfg.Fraud, log)
	writer.SetMetricsHooks(m.AuditRetry, m.AuditFailure)

	// Initialize business services
	fraudSvc := service.NewFraudCheckService(analyzers, writer, cfg.Fraud, m, log)
	reportingSvc := service.NewReportingService(auditRepo, cfg.Fraud.Audit.RecentLimit, log)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		FraudSvc:       fraudSvc,
		ReportingSvc:   reportingSvc,
		TokenSvc:       tokenSvc,
		Counters:       velocityStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		MetricsHandler: m.Handler(),
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Drain queued audit writes before releasing connections
	if err := writer.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Audit writer did not drain cleanly")
	}

	log.Info().Msg("Server exited")
}
