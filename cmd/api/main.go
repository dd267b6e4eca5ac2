package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/goshophq/marketplace-backend/api/routes"
	"github.com/goshophq/marketplace-backend/internal/cart"
	"github.com/goshophq/marketplace-backend/internal/catalog"
	"github.com/goshophq/marketplace-backend/internal/checkout"
	"github.com/goshophq/marketplace-backend/internal/coupons"
	"github.com/goshophq/marketplace-backend/pkg/config"
	"github.com/goshophq/marketplace-backend/pkg/db"
	"github.com/goshophq/marketplace-backend/pkg/logger"
	"github.com/goshophq/marketplace-backend/pkg/metrics"
	"github.com/goshophq/marketplace-backend/pkg/migrate"
	"github.com/goshophq/marketplace-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	quoteMetrics := metrics.NewQuoteMetrics(registry)

	catalogRepo := catalog.NewRepository(dbClient.DB())
	reconciler := cart.NewReconciler(catalogRepo, logg)
	couponResolver := coupons.NewCachedResolver(
		coupons.NewRepository(dbClient.DB()),
		redisClient,
		cfg.Quote.CouponCacheTTL,
		logg,
	)
	quoteService := checkout.NewService(reconciler, couponResolver, cfg.Quote, logg, quoteMetrics)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, quoteService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
