package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/costeam/cos-backend/config"
	"github.com/costeam/cos-backend/internal/mailer"
	"github.com/costeam/cos-backend/internal/payment"
	"github.com/costeam/cos-backend/internal/server"
	"github.com/costeam/cos-backend/pkg/logger"
	"github.com/costeam/cos-backend/pkg/metrics"
	"github.com/costeam/cos-backend/pkg/postgres"

	authH "github.com/costeam/cos-backend/internal/auth/handler"
	authRepoPkg "github.com/costeam/cos-backend/internal/auth/repository"
	authUCPkg "github.com/costeam/cos-backend/internal/auth/usecase"

	eventH "github.com/costeam/cos-backend/internal/event/handler"
	eventRepoPkg "github.com/costeam/cos-backend/internal/event/repository"
	eventUCPkg "github.com/costeam/cos-backend/internal/event/usecase"

	indexSwapH "github.com/costeam/cos-backend/internal/indexswap/handler"
	indexSwapRepoPkg "github.com/costeam/cos-backend/internal/indexswap/repository"
	indexSwapUCPkg "github.com/costeam/cos-backend/internal/indexswap/usecase"

	merchH "github.com/costeam/cos-backend/internal/merch/handler"
	merchRepoPkg "github.com/costeam/cos-backend/internal/merch/repository"
	merchUCPkg "github.com/costeam/cos-backend/internal/merch/usecase"

	orderH "github.com/costeam/cos-backend/internal/order/handler"
	orderRepoPkg "github.com/costeam/cos-backend/internal/order/repository"
	orderUCPkg "github.com/costeam/cos-backend/internal/order/usecase"

	checkoutH "github.com/costeam/cos-backend/internal/checkout/handler"
	checkoutUCPkg "github.com/costeam/cos-backend/internal/checkout/usecase"

	uploadH "github.com/costeam/cos-backend/internal/upload/handler"
	uploadS3 "github.com/costeam/cos-backend/internal/upload/s3"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	eventRepo := eventRepoPkg.NewPGRepository(db)
	indexSwapRepo := indexSwapRepoPkg.NewPGRepository(db)
	merchRepo := merchRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db)
	authRepo := authRepoPkg.NewPGRepository(db)

	// 5. Initialize Collaborators
	notifier := mailer.NewSMTPNotifier(&cfg.SMTP)
	gateway := payment.NewStripeGateway(&cfg.Stripe)

	objectStore, err := uploadS3.NewStore(&cfg.S3)
	if err != nil {
		appLogger.Fatal("Could not initialize object store", zap.Error(err))
	}

	// 6. Initialize UseCases
	eventUC := eventUCPkg.NewEventUseCase(eventRepo, appLogger)
	indexSwapUC := indexSwapUCPkg.NewIndexSwapUseCase(indexSwapRepo, appLogger)
	merchUC := merchUCPkg.NewMerchUseCase(merchRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, appLogger)
	authUC := authUCPkg.NewAuthUseCase(authRepo, notifier, cfg.JWT.SecretKey, appLogger)
	checkoutUC := checkoutUCPkg.NewCheckoutUseCase(gateway, merchRepo, orderUC, notifier, checkoutUCPkg.Options{
		Currency:   cfg.Stripe.Currency,
		SuccessURL: cfg.Stripe.SuccessURL,
		CancelURL:  cfg.Stripe.CancelURL,
	}, appLogger)

	// 7. Initialize Handlers
	handlers := server.Handlers{
		Event:     eventH.NewEventHandler(eventUC, appLogger),
		IndexSwap: indexSwapH.NewIndexSwapHandler(indexSwapUC, appLogger),
		Merch:     merchH.NewMerchHandler(merchUC, appLogger),
		Checkout:  checkoutH.NewCheckoutHandler(checkoutUC, appLogger),
		Order:     orderH.NewOrderHandler(orderUC, appLogger),
		Auth:      authH.NewAuthHandler(authUC, appLogger),
		Upload:    uploadH.NewUploadHandler(objectStore, appLogger),
	}

	serverMetrics := metrics.NewServerMetrics("api")
	srv := server.NewServer(handlers, serverMetrics)

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	httpServer := &http.Server{
		Addr:    port,
		Handler: srv.Handler(),
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
