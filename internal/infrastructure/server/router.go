package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/bookline/gateway/internal/adapter/handler"
	"github.com/bookline/gateway/internal/infrastructure/middleware"
)

type Router struct {
	engine              *gin.Engine
	imgproxyHandler     *handler.ImgproxyHandler
	bookingHandler      *handler.BookingHandler
	paymentHandler      *handler.PaymentHandler
	catalogHandler      *handler.CatalogHandler
	profileHandler      *handler.ProfileHandler
	subscriptionHandler *handler.SubscriptionHandler
	mediaHandler        *handler.MediaHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         *middleware.RateLimiter
	logger              *zap.Logger
}

type RouterConfig struct {
	ImgproxyHandler     *handler.ImgproxyHandler
	BookingHandler      *handler.BookingHandler
	PaymentHandler      *handler.PaymentHandler
	CatalogHandler      *handler.CatalogHandler
	ProfileHandler      *handler.ProfileHandler
	SubscriptionHandler *handler.SubscriptionHandler
	MediaHandler        *handler.MediaHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimiter         *middleware.RateLimiter
	Logger              *zap.Logger
	Environment         string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:              engine,
		imgproxyHandler:     cfg.ImgproxyHandler,
		bookingHandler:      cfg.BookingHandler,
		paymentHandler:      cfg.PaymentHandler,
		catalogHandler:      cfg.CatalogHandler,
		profileHandler:      cfg.ProfileHandler,
		subscriptionHandler: cfg.SubscriptionHandler,
		mediaHandler:        cfg.MediaHandler,
		authMiddleware:      cfg.AuthMiddleware,
		rateLimiter:         cfg.RateLimiter,
		logger:              cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}
	{
		api.GET("/signed-imgproxy", r.imgproxyHandler.Sign)

		bookings := api.Group("/bookings")
		bookings.Use(r.authMiddleware.RequireSession())
		{
			bookings.POST("", r.bookingHandler.Book)
		}

		payments := api.Group("/payments")
		payments.Use(r.authMiddleware.RequireSession())
		{
			payments.POST("", r.paymentHandler.Pay)
			payments.GET("/status", r.paymentHandler.Status)
		}

		api.GET("/businesses", r.catalogHandler.ListBusinesses)
		api.GET("/businesses/:publicId", r.catalogHandler.GetBusiness)
		api.GET("/services/:id/unavailable-times", r.catalogHandler.UnavailableTimes)

		profile := api.Group("/profile")
		profile.Use(r.authMiddleware.RequireSession())
		{
			profile.PATCH("", r.profileHandler.Update)
		}

		subscriptions := api.Group("/subscriptions")
		{
			subscriptions.POST("", r.subscriptionHandler.Subscribe)
			subscriptions.GET("/confirm", r.subscriptionHandler.Confirm)
		}

		media := api.Group("/media")
		{
			media.GET("", r.mediaHandler.Fetch)
			media.POST("", r.authMiddleware.RequireSession(), r.mediaHandler.Upload)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
