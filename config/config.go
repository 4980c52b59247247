package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Uploads  UploadsConfig
	Checkout CheckoutConfig
	TryOn    TryOnConfig
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type ServerConfig struct {
	Port          string
	PublicBaseURL string
}

type UploadsConfig struct {
	Dir             string
	BackupDir       string
	BackupRetention time.Duration
}

type CheckoutConfig struct {
	ShippingFlatRate float64
	ShippingMethod   string
	BankAccountName  string
	BankAccountNo    string
	BankName         string
}

type TryOnConfig struct {
	Endpoint string
	Timeout  time.Duration
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "glemora"),
		},
		Server: ServerConfig{
			Port:          getEnv("PORT", "8080"),
			PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		},
		Uploads: UploadsConfig{
			Dir:             getEnv("UPLOADS_DIR", "./uploads"),
			BackupDir:       getEnv("UPLOADS_BACKUP_DIR", "./backup/uploads"),
			BackupRetention: getEnvDuration("UPLOADS_BACKUP_RETENTION", 4*24*time.Hour),
		},
		Checkout: CheckoutConfig{
			ShippingFlatRate: getEnvFloat("SHIPPING_FLAT_RATE", 300),
			ShippingMethod:   getEnv("SHIPPING_METHOD", "Standard Delivery"),
			BankAccountName:  getEnv("BANK_ACCOUNT_NAME", "Glemora Clothing (Pvt) Ltd"),
			BankAccountNo:    getEnv("BANK_ACCOUNT_NO", "8001234567"),
			BankName:         getEnv("BANK_NAME", "Commercial Bank"),
		},
		TryOn: TryOnConfig{
			Endpoint: os.Getenv("TRYON_API_URL"),
			Timeout:  getEnvDuration("TRYON_TIMEOUT", 60*time.Second),
		},
	}
}

// DSN builds the postgres connection string, preferring DATABASE_URL.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		d.Host, d.User, d.Password, d.Name, d.Port,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
