// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dheerghayush/storefront-api/internal/admin"
	"github.com/dheerghayush/storefront-api/internal/auth"
	"github.com/dheerghayush/storefront-api/internal/banner"
	"github.com/dheerghayush/storefront-api/internal/catalog"
	"github.com/dheerghayush/storefront-api/internal/config"
	"github.com/dheerghayush/storefront-api/internal/core"
	"github.com/dheerghayush/storefront-api/internal/events"
	"github.com/dheerghayush/storefront-api/internal/health"
	"github.com/dheerghayush/storefront-api/internal/middleware"
	"github.com/dheerghayush/storefront-api/internal/order"
	"github.com/dheerghayush/storefront-api/internal/payment"
	"github.com/dheerghayush/storefront-api/internal/seed"
	"github.com/dheerghayush/storefront-api/internal/server"
	"github.com/dheerghayush/storefront-api/internal/statuscheck"
	"github.com/dheerghayush/storefront-api/internal/user"
)

const (
	drainDelay = 5 * time.Second

	credentialRequests = 10
	credentialBurst    = 5

	apiVersion = "1.0"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.AutoMigrate {
		if err := core.Migrate(ctx, db.DB); err != nil {
			return err
		}
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "HS256",
		"expires_in", cfg.JWT.AccessTokenExpire,
	)

	var publisher events.Publisher = events.Noop{}
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(cfg.Kafka, logger)
		logger.Info("kafka publisher started",
			"brokers", cfg.Kafka.Brokers,
			"topic", cfg.Kafka.Topic,
		)
	}

	var catalogCache catalog.Cache
	if cfg.Cache.Enabled {
		catalogCache = catalog.NewRedisCache(redis.Client, cfg.Cache.CatalogTTL)
	}

	userSvc := user.NewService(user.NewRepository(db.DB))

	authSvc := auth.NewService(
		auth.NewRepository(db.DB),
		jwtManager,
		userSvc,
		redis.Client,
	)
	authHandler := auth.NewHandler(authSvc)

	adminSvc := admin.NewService(admin.NewRepository(db.DB))

	catalogSvc := catalog.NewService(catalog.NewRepository(db.DB), catalogCache)
	catalogHandler := catalog.NewHandler(catalogSvc)

	bannerRepo := banner.NewRepository(db.DB)
	bannerHandler := banner.NewHandler(banner.NewService(bannerRepo))

	statusHandler := statuscheck.NewHandler(
		statuscheck.NewService(statuscheck.NewRepository(db.DB)),
	)

	signer := payment.NewSigner(cfg.Payment.KeySecret)

	orderSvc := order.NewService(
		order.NewRepository(db.DB),
		publisher,
		signer,
		catalogSvc,
	)
	orderHandler := order.NewHandler(orderSvc)

	paymentHandler := payment.NewHandler(payment.NewService(payment.ServiceConfig{
		Gateway: payment.NewRazorpayGateway(
			cfg.Payment.KeyID,
			cfg.Payment.KeySecret,
			cfg.Payment.Timeout,
		),
		Signer:          signer,
		Orders:          orderSvc,
		KeyID:           cfg.Payment.KeyID,
		DefaultCurrency: cfg.Payment.DefaultCurrency,
	}))

	seedSvc := seed.NewService(seed.ServiceConfig{
		Store:     seed.NewStore(db),
		Admins:    adminSvc,
		Banners:   bannerRepo,
		Cache:     catalogSvc,
		Bootstrap: cfg.Bootstrap,
	})
	seedHandler := seed.NewHandler(seedSvc)

	if _, err := seedSvc.Bootstrap(ctx); err != nil {
		logger.Error("bootstrap failed", "error", err)
	}

	healthHandler := health.NewHandler(
		health.Dependency{Name: "database", Checker: db},
		health.Dependency{Name: "redis", Checker: redis},
	)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Dashboard:  orderSvc.Dashboard,
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Name: "api",
			Limit: middleware.Every(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(authSvc)
	adminOnly := middleware.RequireAdmin
	credentialLimiter := middleware.NewRateLimiter(
		redis.Client,
		middleware.RateLimitConfig{
			Name:     "credentials",
			Limit:    middleware.PerMinute(credentialRequests, credentialBurst),
			KeyFunc:  middleware.KeyByIPAndEndpoint,
			FailOpen: true,
		},
	).Handler

	router.Route("/api", func(r chi.Router) {
		r.Get("/", rootHandler(cfg.App.Name))
		statusHandler.RegisterRoutes(r)

		authHandler.RegisterRoutes(r, authenticator, credentialLimiter)
		catalogHandler.RegisterRoutes(r)
		bannerHandler.RegisterRoutes(r)
		orderHandler.RegisterRoutes(r)
		paymentHandler.RegisterRoutes(r)

		r.Route("/admin", func(r chi.Router) {
			authHandler.RegisterAdminRoutes(r, authenticator, adminOnly, credentialLimiter)

			r.Group(func(r chi.Router) {
				r.Use(authenticator, adminOnly)

				adminHandler.RegisterRoutes(r)
				catalogHandler.RegisterAdminRoutes(r)
				bannerHandler.RegisterAdminRoutes(r)
				orderHandler.RegisterAdminRoutes(r)
				seedHandler.RegisterAdminRoutes(r)
			})
		})
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := publisher.Close(shutdownCtx); err != nil {
		logger.Error("event publisher close error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

func rootHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		core.OK(w, rootResponse{Message: name, Version: apiVersion})
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
