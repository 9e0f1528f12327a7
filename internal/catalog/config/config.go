package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Import write modes.
const (
	ImportWriteTransaction = "transaction"
	ImportWriteSequential  = "sequential"
)

// Config holds all configuration for the catalog module.
type Config struct {
	// Server
	Host           string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port           string        `env:"PORT" envDefault:"3000"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// MongoDB. MongoDBURI wins over the credentials when both are set.
	MongoDBURI   string `env:"MONGODB_URI"`
	DBUser       string `env:"DB_USER"`
	DBPass       string `env:"DB_PASS"`
	MongoDBHost  string `env:"MONGODB_HOST" envDefault:"cluster0.3iytmoo.mongodb.net"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"shopDB"`

	ProductsCollection string `env:"PRODUCTS_COLLECTION" envDefault:"allproducts"`
	ImportsCollection  string `env:"IMPORTS_COLLECTION" envDefault:"Imports"`
	ExportsCollection  string `env:"EXPORTS_COLLECTION" envDefault:"Exports"`
	UsersCollection    string `env:"USERS_COLLECTION" envDefault:"Users"`

	// Catalog behaviour
	PopularProductsLimit int64  `env:"POPULAR_PRODUCTS_LIMIT" envDefault:"6"`
	ImportWriteMode      string `env:"IMPORT_WRITE_MODE" envDefault:"transaction"`

	// Event bus
	EventMaxRetries int           `env:"EVENT_MAX_RETRIES" envDefault:"2"`
	EventRetryDelay time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"50ms"`

	Redis RedisConfig
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load catalog configuration from environment: " + err.Error())
	}
	if err := env.Parse(&cfg.Redis); err != nil {
		return nil, errors.New("failed to load redis configuration from environment: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes and checks the loaded values.
func (c *Config) Validate() error {
	c.ImportWriteMode = strings.ToLower(strings.TrimSpace(c.ImportWriteMode))
	switch c.ImportWriteMode {
	case ImportWriteTransaction, ImportWriteSequential:
	case "":
		c.ImportWriteMode = ImportWriteTransaction
	default:
		return fmt.Errorf("import_write_mode must be %q or %q, got %q",
			ImportWriteTransaction, ImportWriteSequential, c.ImportWriteMode)
	}

	if c.PopularProductsLimit <= 0 {
		return errors.New("popular_products_limit must be positive")
	}
	if c.DatabaseName == "" {
		return errors.New("database_name is required")
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 10 * time.Second
	}
	if c.EventMaxRetries < 0 {
		return errors.New("event_max_retries must not be negative")
	}
	if c.MongoDBURI == "" && (c.DBUser == "" || c.DBPass == "") {
		return errors.New("either MONGODB_URI or both DB_USER and DB_PASS must be set")
	}
	return nil
}

// MongoURI returns the connection string, building an SRV target from the
// credentials when no explicit URI is configured.
func (c *Config) MongoURI() string {
	if c.MongoDBURI != "" {
		return c.MongoDBURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPass), c.MongoDBHost)
}

// ListenAddr is the address handed to the HTTP server.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
