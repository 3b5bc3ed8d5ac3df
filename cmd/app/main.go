package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/courierrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/jobs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config, err := loadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	gormDB, err := connectDB(config)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		logger.Error("Failed to build application", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(
		root.CreateAssignCouriersCommandHandler(),
		config.AssignmentSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := newEcho(&root)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a shutdown signal, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

// loadConfig reads settings from the environment, seeded from .env when present.
func loadConfig() (cmd.Config, error) {
	// Missing .env is fine in containerized deployments.
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := env.Parse(&config); err != nil {
		return cmd.Config{}, err
	}
	return config, nil
}

func connectDB(config cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgresdriver.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &courierrepo.CourierDTO{}); err != nil {
		return nil, err
	}

	return gormDB, nil
}

func newEcho(root *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	server := httpadapter.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateVerifyPaymentCommandHandler(),
		root.CreateRefundOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateCompleteDeliveryCommandHandler(),
		root.CreateCreateCourierCommandHandler(),
		root.CreateSetCourierAvailabilityCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetCustomerOrdersQueryHandler(),
		root.CreateTrackOrderQueryHandler(),
		root.CreateGetPaymentStatusQueryHandler(),
		root.CreateGetAllCouriersQueryHandler(),
		root.CreateGetAvailableCouriersQueryHandler(),
		root.CouponEvaluator(),
	)
	server.RegisterRoutes(e)

	return e
}
