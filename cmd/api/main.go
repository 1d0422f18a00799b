package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/bookline/gateway/internal/adapter/backend"
	"github.com/bookline/gateway/internal/adapter/handler"
	"github.com/bookline/gateway/internal/adapter/repository/postgres"
	"github.com/bookline/gateway/internal/infrastructure/auth"
	"github.com/bookline/gateway/internal/infrastructure/cache"
	"github.com/bookline/gateway/internal/infrastructure/config"
	"github.com/bookline/gateway/internal/infrastructure/database"
	"github.com/bookline/gateway/internal/infrastructure/middleware"
	"github.com/bookline/gateway/internal/infrastructure/observability"
	"github.com/bookline/gateway/internal/infrastructure/queue"
	"github.com/bookline/gateway/internal/infrastructure/server"
	"github.com/bookline/gateway/internal/infrastructure/storage"
	"github.com/bookline/gateway/internal/usecase/booking"
	"github.com/bookline/gateway/internal/usecase/catalog"
	"github.com/bookline/gateway/internal/usecase/imgsign"
	"github.com/bookline/gateway/internal/usecase/media"
	"github.com/bookline/gateway/internal/usecase/payment"
	"github.com/bookline/gateway/internal/usecase/subscription"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, "migrations"); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Repositories
	subscriberRepo := postgres.NewSubscriberRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey)

	queueClient := queue.NewClient(cfg.Redis)
	defer queueClient.Close()

	s3Storage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}
	imageProcessor := storage.NewImageProcessor()

	backendClient := backend.NewClient(cfg.Backend)

	// Use cases
	signSvc, err := imgsign.NewService(cfg.ImageProxy.Key, cfg.ImageProxy.Salt, cfg.ImageProxy.BaseURL)
	if err != nil {
		logger.Fatal("failed to initialize url signer", zap.Error(err))
	}
	bookingSvc, err := booking.NewService(backendClient, cfg.Booking)
	if err != nil {
		logger.Fatal("failed to initialize booking service", zap.Error(err))
	}
	paymentSvc := payment.NewService(backendClient, backendClient)
	catalogSvc := catalog.NewService(backendClient)
	subscriptionSvc := subscription.NewService(subscriberRepo, queueClient, logger)
	mediaSvc := media.NewService(s3Storage, imageProcessor)

	// Handlers
	imgproxyHandler := handler.NewImgproxyHandler(signSvc, logger)
	bookingHandler := handler.NewBookingHandler(bookingSvc)
	paymentHandler := handler.NewPaymentHandler(paymentSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	profileHandler := handler.NewProfileHandler(backendClient)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionSvc)
	mediaHandler := handler.NewMediaHandler(mediaSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		ImgproxyHandler:     imgproxyHandler,
		BookingHandler:      bookingHandler,
		PaymentHandler:      paymentHandler,
		CatalogHandler:      catalogHandler,
		ProfileHandler:      profileHandler,
		SubscriptionHandler: subscriptionHandler,
		MediaHandler:        mediaHandler,
		AuthMiddleware:      authMiddleware,
		RateLimiter:         rateLimiter,
		Logger:              logger,
		Environment:         cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
