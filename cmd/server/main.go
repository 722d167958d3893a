package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/storecore/backend/internal/application/catalog"
	channelapp "github.com/storecore/backend/internal/application/channel"
	orderingapp "github.com/storecore/backend/internal/application/ordering"
	pricingapp "github.com/storecore/backend/internal/application/pricing"
	"github.com/storecore/backend/internal/infrastructure/cache"
	"github.com/storecore/backend/internal/infrastructure/config"
	"github.com/storecore/backend/internal/infrastructure/event"
	"github.com/storecore/backend/internal/infrastructure/logger"
	"github.com/storecore/backend/internal/infrastructure/persistence"
	infrastrategy "github.com/storecore/backend/internal/infrastructure/strategy"
	"github.com/storecore/backend/internal/infrastructure/tax"
	"github.com/storecore/backend/internal/infrastructure/telemetry"
	"github.com/storecore/backend/internal/interfaces/http/handler"
	"github.com/storecore/backend/internal/interfaces/http/middleware"
	"github.com/storecore/backend/internal/interfaces/http/router"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting StoreCore Pricing API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down telemetry", zap.Error(err))
		}
	}()

	// Database
	gormLog := logger.NewGormLogger(log, gormlogger.Warn)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if tracerProvider.IsEnabled() {
		if err := db.EnableTracing(); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}
	log.Info("Database connected successfully")

	// Repositories
	variantRepo := persistence.NewGormVariantRepository(db.DB)
	channelRepo := persistence.NewGormChannelRepository(db.DB)
	priceRepo := persistence.NewGormVariantPriceRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	uow := persistence.NewGormUnitOfWork(db.DB)

	// Pricing strategies
	registry, err := infrastrategy.NewRegistryWithDefaults()
	if err != nil {
		log.Fatal("Failed to build strategy registry", zap.Error(err))
	}

	// Application services
	priceService := pricingapp.NewPriceService(priceRepo, channelRepo, variantRepo, registry, uow)
	priceService.SetStrategyNames(cfg.Pricing.UpdateStrategy, cfg.Pricing.SelectionStrategy)
	priceService.SetTaxRateResolver(tax.NewConfigResolver(&cfg.Tax, channelRepo))

	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisPriceCache(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Pricing.CacheTTL, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			_ = redisCache.Close()
		}()
		priceService.SetCache(redisCache)
		log.Info("Redis price cache enabled", zap.String("addr", cfg.Redis.Addr()))
	} else {
		memoryCache := cache.NewMemoryPriceCache(
			cache.WithMemoryTTL(cfg.Pricing.CacheTTL),
			cache.WithMemoryLogger(log),
		)
		defer func() {
			_ = memoryCache.Close()
		}()
		priceService.SetCache(memoryCache)
	}

	variantService := catalogapp.NewVariantService(variantRepo)
	channelService := channelapp.NewChannelService(channelRepo, variantRepo, priceRepo, priceService)
	orderService := orderingapp.NewOrderService(orderRepo, channelRepo, priceService, uow)

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewAuditLogHandler(log))
	priceService.SetEventPublisher(eventBus)
	variantService.SetEventPublisher(eventBus)
	channelService.SetEventPublisher(eventBus)
	orderService.SetEventPublisher(eventBus)

	// HTTP server
	if cfg.IsProduction() {
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
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogger(log))
	if tracerProvider.IsEnabled() {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	engine.Use(middleware.ChannelToken(channelRepo))

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewSystemHandler(db)).
		Register(handler.NewVariantHandler(variantService)).
		Register(handler.NewChannelHandler(channelService)).
		Register(handler.NewPriceHandler(priceService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewStrategyHandler(registry)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
