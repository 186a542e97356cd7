package main

import (
	"context"
	"fmt"
	"log"
	appmetrics "myBestDeals/app/echo-server/metrics"
	"myBestDeals/app/echo-server/router"
	"myBestDeals/business/deals"
	"myBestDeals/internal/middleware"
	"myBestDeals/internal/repository"
	"myBestDeals/internal/rest"
	"myBestDeals/pkg/config"
	"myBestDeals/pkg/logger"
	"myBestDeals/pkg/metrics"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Best Deals Finder", "version", cfg.App.Version, "store", cfg.Store.Driver)

	source, closeSource, err := repository.OpenProductSource(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to product store", "error", err)
	}

	logger.Info("Product store connected successfully", "platforms", cfg.Store.Platforms)

	metrics.Init()

	// Init service
	dealService := deals.NewDealService(source, repository.DealsConfig(cfg))

	// Init handler
	dealsHandler := rest.NewDealsHandler(dealService, cfg.Deals.DefaultLimit, cfg.Deals.MaxLimit)
	healthHandler := rest.NewHealthHandler(cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.MetricsMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8501"},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	appmetrics.Register(e)
	router.SetupHealthRoutes(e, healthHandler)

	api := e.Group("/api/v1")
	router.SetupDealsRoutes(api, dealsHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := closeSource(ctx); err != nil {
		logger.Error("Product store close error", "error", err)
	}

	logger.Info("Server stopped")
}
