// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Storage     StorageConfig
	Database    DatabaseConfig
	Shop        ShopConfig
	Session     SessionConfig
	Email       EmailConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type StorageConfig struct {
	Driver string // memory, file or postgres
	Path   string // backing file for the file driver
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type ShopConfig struct {
	BrandName         string
	BrandPhone        string
	ShippingFee       int
	MaxImageDimension int
	JPEGQuality       int
	CatalogPath       string
}

type SessionConfig struct {
	DebounceInterval time.Duration
	SettleDelay      time.Duration
	BannerWindow     time.Duration
}

type EmailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	OwnerEmail   string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", "file"),
			Path:   getEnv("STORAGE_PATH", "./data/storefront.json"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "storefront"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		Shop: ShopConfig{
			BrandName:         getEnv("BRAND_NAME", "Euphoria"),
			BrandPhone:        getEnv("BRAND_PHONE", "0584892346"),
			ShippingFee:       getEnvAsInt("SHOP_SHIPPING_FEE", 40),
			MaxImageDimension: getEnvAsInt("SHOP_MAX_IMAGE_DIMENSION", 1200),
			JPEGQuality:       getEnvAsInt("SHOP_JPEG_QUALITY", 60),
			CatalogPath:       getEnv("CATALOG_PATH", ""),
		},
		Session: SessionConfig{
			DebounceInterval: getEnvAsDuration("SESSION_DEBOUNCE_MS", 500),
			SettleDelay:      getEnvAsDuration("SESSION_SETTLE_MS", 2000),
			BannerWindow:     getEnvAsDuration("SESSION_BANNER_MS", 8000),
		},
		Email: EmailConfig{
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnv("SMTP_PORT", "587"),
			SMTPUsername: getEnv("SMTP_USERNAME", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			FromEmail:    getEnv("FROM_EMAIL", "noreply@euphoria.shop"),
			OwnerEmail:   getEnv("OWNER_EMAIL", "orders@euphoria.shop"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory", "file", "postgres":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Storage.Driver == "file" && c.Storage.Path == "" {
		return fmt.Errorf("STORAGE_PATH is required for the file storage driver")
	}

	if c.Storage.Driver == "postgres" && c.Database.Password == "" && c.Environment == "production" {
		return fmt.Errorf("database password is required in production")
	}

	if c.Shop.MaxImageDimension <= 0 {
		return fmt.Errorf("SHOP_MAX_IMAGE_DIMENSION must be positive")
	}

	if c.Shop.JPEGQuality < 1 || c.Shop.JPEGQuality > 100 {
		return fmt.Errorf("SHOP_JPEG_QUALITY must be between 1 and 100")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultMillis int) time.Duration {
	return time.Duration(getEnvAsInt(key, defaultMillis)) * time.Millisecond
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
