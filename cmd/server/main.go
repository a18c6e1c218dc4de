package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightdesk/scheduler/internal/api"
	"flightdesk/scheduler/internal/auth"
	"flightdesk/scheduler/internal/common"
	"flightdesk/scheduler/internal/config"
	"flightdesk/scheduler/internal/db"
	"flightdesk/scheduler/internal/events"
	"flightdesk/scheduler/internal/logging"
	"flightdesk/scheduler/internal/metrics"
	"flightdesk/scheduler/internal/routes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Flight scheduler starting up",
		"environment", cfg.AppEnv,
		"timezone", cfg.Schedule.Location.String(),
		"timestamp", time.Now().Format(time.RFC3339),
	)

	orm, err := db.InitORM(&cfg.Database)
	if err != nil {
		logging.Fatal("Failed to open entity store", "error", err.Error())
	}

	reports, err := db.InitReportDB(&cfg.Database, orm)
	if err != nil {
		logging.Fatal("Failed to open report connection", "error", err.Error())
	}
	defer reports.Close()
	logging.Info("Database ready", "driver", cfg.Database.Driver)

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	publisher, err := events.New(cfg.NATS.URL, cfg.NATS.SubjectPrefix)
	if err != nil {
		// flight writes do not depend on the bus
		logging.Warn("NATS unavailable, flight events disabled", "error", err.Error())
		publisher = events.NoopPublisher{}
	}
	defer publisher.Close()

	var limiter common.RateLimiter
	if cfg.Redis.Enabled() {
		client := common.NewRedisClient(cfg.Redis)
		defer client.Close()
		limiter = common.NewRedisRateLimiter(client, int64(cfg.RateLimit.Burst), time.Second)
		logging.Info("Rate limiting via Redis", "addr", cfg.Redis.Addr(), "limit_per_second", cfg.RateLimit.Burst)
	} else {
		limiter = common.NewMemoryRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst, 10*time.Minute)
		logging.Info("Rate limiting in memory", "per_second", cfg.RateLimit.PerSecond, "burst", cfg.RateLimit.Burst)
	}

	deps := api.InitDependencies(orm, reports, cfg.Schedule.Location, publisher, metricsReg, time.Now)

	router := routes.RegisterRoutes(routes.Options{
		Deps:           deps,
		Tokens:         auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
		Limiter:        limiter,
		Metrics:        metricsReg,
		MetricsHandler: promhttp.Handler(),
		CORSOrigins:    cfg.Server.CORSOrigins,
		UpSince:        time.Now(),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info("Server starting", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server stopped with error", "error", err.Error())
		os.Exit(1)
	}
	logging.Info("Server stopped")
}
