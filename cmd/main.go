package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "shop-ledger/internal/catalog/adapter/http"
	"shop-ledger/internal/catalog/config"
	"shop-ledger/internal/di"
	"shop-ledger/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const startupTimeout = 30 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	appLogger := logger.NewLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLogger.Info("Application configuration loaded successfully")

	container := di.NewContainer(appLogger)
	defer func() {
		if err := container.Close(); err != nil {
			appLogger.Errorf("Failed to close container: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true)
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI()).SetServerAPIOptions(serverAPI))
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}

	// An unreachable store is not fatal: requests fail with 500 until it is back.
	if err := mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Errorf("MongoDB ping failed, continuing without a verified connection: %v", err)
	} else {
		appLogger.Info("Pinged your deployment. You successfully connected to MongoDB!")
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = config.NewRedisClient(&cfg.Redis)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			appLogger.Warnf("Redis ping failed at %s: %v", cfg.Redis.GetAddr(), err)
		}
	}

	if err := container.InitializeCatalog(cfg, mongoClient, redisClient); err != nil {
		log.Fatalf("Failed to initialize catalog module: %v", err)
	}
	catalogModule := container.GetCatalogModule()

	if err := catalogModule.EnsureIndexes(ctx); err != nil {
		appLogger.Warnf("Index creation incomplete: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Shop Ledger API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: httpadapter.ErrorHandler(appLogger),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + httpadapter.RequestIDHeader,
		ExposeHeaders: httpadapter.RequestIDHeader,
	}))
	app.Use(httpadapter.RequestIDMiddleware())
	app.Use(httpadapter.RequestLogger(appLogger.WithComponent("http")))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		healthCtx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		if err := container.HealthCheck(healthCtx); err != nil {
			appLogger.Errorf("Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "UNHEALTHY",
				"error":   err.Error(),
				"message": "One or more services are unhealthy",
			})
		}

		return c.JSON(fiber.Map{
			"status":    "HEALTHY",
			"message":   "Shop Ledger API is running",
			"timestamp": time.Now().UTC(),
			"database":  cfg.DatabaseName,
		})
	})

	catalogModule.RegisterRoutes(app)
	appLogger.Info("Catalog routes registered")

	serverAddr := cfg.ListenAddr()
	appLogger.Infof("Starting HTTP server on %s", serverAddr)

	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(serverAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			appLogger.Errorf("Server failed: %v", err)
		}
	case sig := <-quit:
		appLogger.Infof("Received shutdown signal: %v", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Errorf("Server forced to shutdown: %v", err)
		}
		appLogger.Info("HTTP server stopped")
	}
}
