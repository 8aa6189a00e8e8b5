package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stockpilot-erp/stockpilot-erp/internal/activity"
	"github.com/stockpilot-erp/stockpilot-erp/internal/analytics"
	"github.com/stockpilot-erp/stockpilot-erp/internal/app"
	"github.com/stockpilot-erp/stockpilot-erp/internal/categories"
	"github.com/stockpilot-erp/stockpilot-erp/internal/gst"
	"github.com/stockpilot-erp/stockpilot-erp/internal/inventory"
	"github.com/stockpilot-erp/stockpilot-erp/internal/locations"
	"github.com/stockpilot-erp/stockpilot-erp/internal/observability"
	"github.com/stockpilot-erp/stockpilot-erp/internal/payments"
	"github.com/stockpilot-erp/stockpilot-erp/internal/platform/cache"
	"github.com/stockpilot-erp/stockpilot-erp/internal/products"
	"github.com/stockpilot-erp/stockpilot-erp/internal/seed"
	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
	"github.com/stockpilot-erp/stockpilot-erp/internal/suppliers"
	"github.com/stockpilot-erp/stockpilot-erp/internal/transactions"
	"github.com/stockpilot-erp/stockpilot-erp/internal/users"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient, stopRedis, err := connectRedis(ctx, logger, cfg)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer stopRedis()

	validator := shared.NewValidator()
	metrics := observability.NewMetrics()

	usersService := users.NewService(users.NewRepository())
	usersHandler := users.NewHandler(logger, usersService, validator)

	locationsService := locations.NewService(locations.NewRepository())
	locationsHandler := locations.NewHandler(logger, locationsService, validator)

	categoriesService := categories.NewService(categories.NewRepository())
	categoriesHandler := categories.NewHandler(logger, categoriesService, validator)

	productsService := products.NewService(products.NewRepository())
	productsHandler := products.NewHandler(logger, productsService, validator)

	suppliersService := suppliers.NewService(suppliers.NewRepository())
	suppliersHandler := suppliers.NewHandler(logger, suppliersService, validator)

	inventoryService := inventory.NewService(inventory.NewRepository(), inventory.ServiceConfig{
		AllowNegativeStock: cfg.AllowNegativeStock,
	})
	inventoryHandler := inventory.NewHandler(logger, inventoryService, validator)

	transactionsService := transactions.NewService(transactions.NewRepository(), inventoryService, validator)
	transactionsHandler := transactions.NewHandler(logger, transactionsService, validator)

	paymentsService := payments.NewService(payments.NewRepository())
	paymentsHandler := payments.NewHandler(logger, paymentsService, validator)

	activityService := activity.NewService(activity.NewStore(redisClient))
	activityHandler := activity.NewHandler(logger, activityService, validator)

	analyticsService := analytics.NewService(productsService, inventoryService, activityService)
	analyticsHandler := analytics.NewHandler(logger, analyticsService)

	gstHandler := gst.NewHandler(validator)

	if cfg.SeedDemoData {
		err := seed.DemoData(ctx, logger, seed.Services{
			Users:      usersService,
			Locations:  locationsService,
			Categories: categoriesService,
			Products:   productsService,
			Inventory:  inventoryService,
			Suppliers:  suppliersService,
			Activity:   activityService,
		})
		if err != nil {
			logger.Error("seed demo data", slog.Any("error", err))
			os.Exit(1)
		}
	}

	router := app.NewRouter(app.RouterParams{
		Logger:              logger,
		Config:              cfg,
		UsersHandler:        usersHandler,
		LocationsHandler:    locationsHandler,
		CategoriesHandler:   categoriesHandler,
		ProductsHandler:     productsHandler,
		SuppliersHandler:    suppliersHandler,
		InventoryHandler:    inventoryHandler,
		TransactionsHandler: transactionsHandler,
		PaymentsHandler:     paymentsHandler,
		ActivityHandler:     activityHandler,
		AnalyticsHandler:    analyticsHandler,
		GstHandler:          gstHandler,
		Metrics:             metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

// connectRedis dials an external redis when configured, otherwise starts an
// embedded in-process one.
func connectRedis(ctx context.Context, logger *slog.Logger, cfg *app.Config) (*redis.Client, func(), error) {
	if cfg.RedisAddr != "" {
		client, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		stop := func() {
			if err := client.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}
		return client, stop, nil
	}
	client, stopEmbedded, err := cache.NewEmbedded(ctx)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using embedded redis")
	stop := func() {
		if err := client.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
		stopEmbedded()
	}
	return client, stop, nil
}
