package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ordertrack/ordertrack/internal/app"
	"github.com/ordertrack/ordertrack/internal/orders"
	"github.com/ordertrack/ordertrack/internal/platform/workbook"
	"github.com/ordertrack/ordertrack/internal/reports"
	"github.com/ordertrack/ordertrack/internal/salesmen"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	store, err := workbook.Open(cfg.WorkbookPath)
	if err != nil {
		logger.Error("open workbook", slog.Any("error", err), slog.String("path", cfg.WorkbookPath))
		os.Exit(1)
	}

	salesmenRepo := salesmen.NewRepository(store)
	salesmenService := salesmen.NewService(salesmenRepo)
	salesmenHandler := salesmen.NewHandler(logger, salesmenService)

	ordersRepo := orders.NewRepository(store)
	ordersService := orders.NewService(ordersRepo, salesmenService)
	ordersHandler := orders.NewHandler(logger, ordersService)

	reportsService := reports.NewService(ordersRepo)
	reportsHandler := reports.NewHandler(logger, reportsService)

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		OrdersHandler:   ordersHandler,
		SalesmenHandler: salesmenHandler,
		ReportsHandler:  reportsHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("workbook", cfg.WorkbookPath))
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
