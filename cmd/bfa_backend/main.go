package main

import (
	"context"
	"log/slog"
	"os"

	amqppub "github.com/SscSPs/budget_forecast_app/internal/adapters/messaging/amqp"
	"github.com/SscSPs/budget_forecast_app/internal/cache"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/core/services"
	"github.com/SscSPs/budget_forecast_app/internal/handlers"
	"github.com/SscSPs/budget_forecast_app/internal/middleware"
	"github.com/SscSPs/budget_forecast_app/internal/platform/config"
	"github.com/SscSPs/budget_forecast_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/budget_forecast_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Budget Forecast API
// @version 1.0
// @description Budget, forecast and actuals engine for organizations.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Database migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var wsCache *cache.WorkingSetCache
	if cfg.WorkingSetCacheMaxCost > 0 {
		wsCache, err = cache.NewWorkingSetCache(cfg.WorkingSetCacheMaxCost, cfg.WorkingSetCacheTTL)
		if err != nil {
			logger.Error("Failed to initialize working set cache", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer wsCache.Close()
	}

	var publisher portssvc.EventPublisher = amqppub.NoopPublisher{}
	if cfg.AMQPURL != "" {
		p, err := amqppub.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			logger.Error("Failed to connect event publisher", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer p.Close()
		publisher = p
		logger.Info("Publishing budget events", slog.String("exchange", cfg.AMQPExchange))
	}

	repos := pgsql.NewRepositoryProvider(dbPool, cfg.DBQueryTimeout)
	serviceContainer := services.NewServiceContainer(repos, wsCache, publisher)

	// Writes from the CLI or other replicas drop this process's cached working sets.
	if cfg.AMQPURL != "" && wsCache != nil {
		sub, err := amqppub.NewSubscriber(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			logger.Error("Failed to subscribe to budget events", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer sub.Close()

		subCtx, cancelSub := context.WithCancel(context.Background())
		defer cancelSub()
		go func() {
			err := sub.Run(subCtx, func(_ context.Context, event domain.BudgetEvent) {
				serviceContainer.WorkingSet.Invalidate(event.OrganizationID)
			})
			if err != nil {
				logger.Error("Budget event subscription stopped, cached working sets now expire by TTL only",
					slog.String("error", err.Error()))
			}
		}()
	}

	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AddAllowHeaders("Authorization")

	// Global middleware (logging, recovery, cors, rate limit)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig),
		middleware.RateLimit(limiterInstance),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
