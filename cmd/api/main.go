package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/thrivesecure/thrivesecure-backend/api/routes"
	"github.com/thrivesecure/thrivesecure-backend/internal/config"
	"github.com/thrivesecure/thrivesecure-backend/internal/handlers"
	"github.com/thrivesecure/thrivesecure-backend/internal/repositories/mongodb"
	"github.com/thrivesecure/thrivesecure-backend/internal/services"
	mongoclient "github.com/thrivesecure/thrivesecure-backend/pkg/mongodb"
	"github.com/thrivesecure/thrivesecure-backend/pkg/payments"
	"go.uber.org/zap"
)

func main() {
	// A missing .env is fine, real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := mongoclient.NewClient(ctx, cfg.MongoDB.URI)
	cancel()
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("Error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	userRepo := mongodb.NewUserRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	policyRepo := mongodb.NewPolicyRepository(db)
	txnRepo := mongodb.NewTransactionRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	claimRepo := mongodb.NewClaimRepository(db)
	newsletterRepo := mongodb.NewNewsletterRepository(db)

	// Services
	userService := services.NewUserService(userRepo)
	appService := services.NewApplicationService(appRepo, policyRepo, logger)
	policyService := services.NewPolicyService(policyRepo)
	txnService := services.NewTransactionService(txnRepo)
	blogService := services.NewBlogService(blogRepo)
	reviewService := services.NewReviewService(reviewRepo)
	claimService := services.NewClaimService(claimRepo)
	newsletterService := services.NewNewsletterService(newsletterRepo)
	paymentService := services.NewPaymentService(payments.NewClient(cfg.Stripe.SecretKey))

	// Handlers
	deps := routes.HandlerDependencies{
		UserHandler:        handlers.NewUserHandler(userService, cfg),
		ApplicationHandler: handlers.NewApplicationHandler(appService),
		PolicyHandler:      handlers.NewPolicyHandler(policyService),
		TransactionHandler: handlers.NewTransactionHandler(txnService),
		BlogHandler:        handlers.NewBlogHandler(blogService),
		ReviewHandler:      handlers.NewReviewHandler(reviewService),
		ClaimHandler:       handlers.NewClaimHandler(claimService),
		NewsletterHandler:  handlers.NewNewsletterHandler(newsletterService),
		PaymentHandler:     handlers.NewPaymentHandler(paymentService),
	}

	router := routes.SetupRouter(cfg, logger, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}

func newLogger(level string) (*zap.Logger, error) {
	logCfg := zap.NewProductionConfig()
	if level != "" {
		parsed, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}
		logCfg.Level = parsed
	}
	return logCfg.Build()
}
