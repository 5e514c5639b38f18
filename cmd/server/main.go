package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	catalogapp "github.com/washpos/backend/internal/application/catalog"
	checkoutapp "github.com/washpos/backend/internal/application/checkout"
	orderapp "github.com/washpos/backend/internal/application/order"
	partnerapp "github.com/washpos/backend/internal/application/partner"
	"github.com/washpos/backend/internal/domain/sequence"
	"github.com/washpos/backend/internal/domain/shared"
	"github.com/washpos/backend/internal/infrastructure/auth"
	"github.com/washpos/backend/internal/infrastructure/cache"
	"github.com/washpos/backend/internal/infrastructure/config"
	"github.com/washpos/backend/internal/infrastructure/logger"
	"github.com/washpos/backend/internal/infrastructure/persistence"
	"github.com/washpos/backend/internal/infrastructure/retry"
	"github.com/washpos/backend/internal/interfaces/http/handler"
	"github.com/washpos/backend/internal/interfaces/http/middleware"
	"github.com/washpos/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting WashPOS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	returnRepo := persistence.NewGormReturnRepository(db.DB)

	// Document number sequence backed by the database counter table
	counterStore := persistence.NewGormCounterStore(db.DB, retry.Policy{
		MaxAttempts: cfg.Sequence.MaxAttempts,
		BaseDelay:   cfg.Sequence.RetryDelay,
		Multiplier:  2,
	})
	numbers := sequence.NewGenerator(counterStore)

	// Idempotency store for return processing
	var idempotencyStore shared.IdempotencyStore
	if cfg.Idempotency.Backend == "redis" {
		redisStore, err := cache.NewRedisIdempotencyStore(cache.RedisConfig{
			Addr:     cfg.Redis.GetRedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		idempotencyStore = redisStore
		log.Info("Using Redis idempotency store", zap.String("addr", cfg.Redis.GetRedisAddr()))
	} else {
		idempotencyStore = cache.NewInMemoryIdempotencyStore()
		log.Info("Using in-memory idempotency store")
	}
	defer func() {
		if err := idempotencyStore.Close(); err != nil {
			log.Error("Error closing idempotency store", zap.Error(err))
		}
	}()

	idemConfig := shared.IdempotencyConfig{
		TTL:     cfg.Idempotency.TTL,
		Enabled: cfg.Idempotency.Enabled,
	}

	taxRate := decimal.NewFromFloat(cfg.Tax.RatePercent)

	// Application services
	productService := catalogapp.NewProductService(productRepo)
	customerService := partnerapp.NewCustomerService(customerRepo, numbers)
	checkoutService := checkoutapp.NewCheckoutService(orderRepo, productRepo, customerRepo, numbers, taxRate, log)
	returnService := orderapp.NewReturnService(orderRepo, returnRepo, productRepo, numbers, idempotencyStore, idemConfig, log)

	jwtService := auth.NewJWTService(cfg.JWT)

	// Handlers
	productHandler := handler.NewProductHandler(productService)
	customerHandler := handler.NewCustomerHandler(customerService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	returnHandler := handler.NewReturnHandler(returnService)
	systemHandler := handler.NewSystemHandler()

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}))

	// Catalog: garments and their per-service rates
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.GET("/products/barcode/:barcode", productHandler.GetByBarcode)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.PUT("/products/:id/rates", productHandler.UpdateRates)
	catalogRoutes.POST("/products/:id/deactivate", productHandler.Deactivate)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)

	// Partner: the customer book
	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/customers", customerHandler.Create)
	partnerRoutes.GET("/customers", customerHandler.List)
	partnerRoutes.GET("/customers/:id", customerHandler.GetByID)
	partnerRoutes.GET("/customers/number/:number", customerHandler.GetByNumber)
	partnerRoutes.PUT("/customers/:id", customerHandler.Update)
	partnerRoutes.DELETE("/customers/:id", customerHandler.Delete)

	// Checkout: order placement and lifecycle
	checkoutRoutes := router.NewDomainGroup("checkout", "/checkout")
	checkoutRoutes.POST("/orders", checkoutHandler.CreateOrder)
	checkoutRoutes.GET("/orders", checkoutHandler.List)
	checkoutRoutes.GET("/orders/:id", checkoutHandler.GetByID)
	checkoutRoutes.GET("/orders/number/:number", checkoutHandler.GetByNumber)
	checkoutRoutes.GET("/orders/number/:number/billing", checkoutHandler.BillingBreakdown)
	checkoutRoutes.POST("/orders/:id/complete", checkoutHandler.Complete)
	checkoutRoutes.POST("/orders/:id/cancel", checkoutHandler.Cancel)
	checkoutRoutes.POST("/orders/:id/delivered", checkoutHandler.MarkDelivered)
	checkoutRoutes.POST("/orders/:id/cod-paid", checkoutHandler.MarkCODPaid)

	// Returns: refunds against placed orders
	returnRoutes := router.NewDomainGroup("returns", "/returns")
	returnRoutes.POST("", returnHandler.Process)
	returnRoutes.GET("", returnHandler.List)
	returnRoutes.GET("/:id", returnHandler.GetByID)
	returnRoutes.GET("/number/:number", returnHandler.GetByNumber)
	returnRoutes.GET("/order/:number", returnHandler.ListForOrder)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(catalogRoutes)
	r.Register(partnerRoutes)
	r.Register(checkoutRoutes)
	r.Register(returnRoutes)
	r.Register(systemRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness of the process and its database
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
