package di

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"shop-ledger/internal/catalog"
	"shop-ledger/internal/catalog/config"
	"shop-ledger/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const shutdownTimeout = 30 * time.Second

// Container owns the process-wide clients and the catalog module.
type Container struct {
	mu sync.RWMutex

	CatalogModule *catalog.CatalogModule

	MongoClient *mongo.Client
	MongoDB     *mongo.Database
	RedisClient *redis.Client

	Config *config.Config
	Logger logger.Logger
}

// NewContainer creates an empty container.
func NewContainer(log logger.Logger) *Container {
	if log == nil {
		log = logger.NewLogger()
	}
	return &Container{Logger: log}
}

// InitializeCatalog builds the catalog module on top of the given clients.
// redisClient may be nil.
func (c *Container) InitializeCatalog(cfg *config.Config, mongoClient *mongo.Client, redisClient *redis.Client) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if mongoClient == nil {
		return errors.New("MongoDB client must be initialized before the catalog module")
	}
	if cfg == nil {
		return errors.New("catalog configuration is required")
	}

	c.Config = cfg
	c.MongoClient = mongoClient
	c.MongoDB = mongoClient.Database(cfg.DatabaseName)
	c.RedisClient = redisClient

	module, err := catalog.NewCatalogModule(cfg, c.Logger, mongoClient, c.MongoDB, redisClient)
	if err != nil {
		return fmt.Errorf("failed to create catalog module: %w", err)
	}
	c.CatalogModule = module
	return nil
}

// GetCatalogModule returns the catalog module instance
func (c *Container) GetCatalogModule() *catalog.CatalogModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CatalogModule
}

// HealthCheck pings the store and, when configured, redis.
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MongoClient == nil {
		return errors.New("MongoDB client not initialized")
	}
	if err := c.MongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB health check failed: %w", err)
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis health check failed: %w", err)
		}
	}
	return nil
}

// Cleanup stops the module and closes the clients in reverse order of creation.
func (c *Container) Cleanup(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.CatalogModule != nil {
		c.CatalogModule.Stop()
		c.CatalogModule = nil
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
		c.RedisClient = nil
	}
	if c.MongoClient != nil {
		if err := c.MongoClient.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("disconnect MongoDB: %w", err))
		}
		c.MongoClient = nil
		c.MongoDB = nil
	}

	return errors.Join(errs...)
}

// Close gracefully shuts down all services in the container with timeout
func (c *Container) Close() error {
	c.Logger.Info("Closing DI container resources...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := c.Cleanup(ctx); err != nil {
		c.Logger.Warnf("Cleanup errors occurred: %v", err)
		return err
	}

	c.Logger.Info("DI container resources closed")
	return nil
}
