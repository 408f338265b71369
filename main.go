package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-service/controllers"
	"catalog-service/database"
	"catalog-service/feed"
	"catalog-service/middleware"
	"catalog-service/models"
	"catalog-service/repository"
	"catalog-service/routes"
	"catalog-service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	_ = godotenv.Load()
	cfg := LoadConfig()

	if err := database.Connect(logger, &models.Product{}, &models.Variant{}); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close() //nolint:errcheck

	// Optional fragment cache; absent REDIS_URL disables it.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warn("Failed to parse REDIS_URL, cache disabled", zap.Error(err))
		} else {
			redisClient = redis.NewClient(redisOpts)
		}
	}

	// DI chain
	productRepo := repository.NewGormProductRepository(
		database.DB,
		repository.NewIDGenerator(),
		repository.DefaultSortConfig(),
	)
	catalogService := services.NewCatalogService(productRepo)
	cacheManager := controllers.NewCacheManager(redisClient)
	productController := controllers.NewProductController(catalogService, cacheManager)

	// One-time sample import when the catalog is empty; never blocks or
	// crashes startup.
	importer := services.NewImporter(productRepo, feed.NewClient(cfg.FeedURL), cfg.FeedImportLimit, logger)
	go func() {
		importCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		importer.ImportSampleProducts(importCtx)
	}()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "catalog-service"})
	})

	routes.RegisterRoutes(r, productController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Catalog service started", zap.String("port", cfg.Port))
	<-quit
	logger.Info("Shutting down catalog service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis", zap.Error(err))
		}
	}

	logger.Info("Catalog service stopped gracefully")
}
