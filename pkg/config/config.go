package config

import (
	"errors"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Store    StoreConfig
	Mongo    MongoConfig
	Database DatabaseConfig
	Scoring  ScoringConfig
	Deals    DealsConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type StoreConfig struct {
	Driver    string
	ScanLimit int
	Timeout   time.Duration
	Platforms []string
}

type MongoConfig struct {
	URI              string
	Database         string
	CollectionSuffix string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type ScoringConfig struct {
	WeightDiscount float64
	WeightSavings  float64
	WeightRating   float64
	SavingsNorm    float64
	SavingsCap     float64
}

type DealsConfig struct {
	DefaultLimit int
	MaxLimit     int
	Concurrency  int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Best Deals Finder"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Store: StoreConfig{
			Driver:    strings.ToLower(getEnv("STORE_DRIVER", StoreDriverMongo)),
			ScanLimit: getEnvInt("STORE_SCAN_LIMIT", 200),
			Timeout:   getEnvDuration("STORE_TIMEOUT", 10*time.Second),
			Platforms: splitList(getEnv("DEAL_PLATFORMS", "amazon,flipkart")),
		},
		Mongo: MongoConfig{
			URI:              getEnv("MONGODB_URI", ""),
			Database:         getEnv("MONGODB_DATABASE", "scraperhive"),
			CollectionSuffix: getEnv("MONGODB_COLLECTION_SUFFIX", "_products"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "scraperhive"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Scoring: ScoringConfig{
			WeightDiscount: getEnvFloat("SCORE_WEIGHT_DISCOUNT", 0.5),
			WeightSavings:  getEnvFloat("SCORE_WEIGHT_SAVINGS", 0.3),
			WeightRating:   getEnvFloat("SCORE_WEIGHT_RATING", 0.2),
			SavingsNorm:    getEnvFloat("SCORE_SAVINGS_NORM", 20),
			SavingsCap:     getEnvFloat("SCORE_SAVINGS_CAP", 100),
		},
		Deals: DealsConfig{
			DefaultLimit: getEnvInt("DEALS_DEFAULT_LIMIT", 10),
			MaxLimit:     getEnvInt("DEALS_MAX_LIMIT", 50),
			Concurrency:  getEnvInt("DEALS_CONCURRENCY", 2),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverMongo:
		if c.Mongo.URI == "" {
			return errors.New("missing mongodb uri")
		}
	case StoreDriverPostgres:
		if c.Database.Password == "" {
			return errors.New("missing database password")
		}
	default:
		return errors.New("unknown store driver: " + c.Store.Driver)
	}

	if len(c.Store.Platforms) == 0 {
		return errors.New("no deal platforms configured")
	}

	if c.Store.ScanLimit <= 0 {
		return errors.New("store scan limit must be greater than 0")
	}

	sum := c.Scoring.WeightDiscount + c.Scoring.WeightSavings + c.Scoring.WeightRating
	if math.Abs(sum-1) > 1e-6 {
		return errors.New("scoring weights must sum to 1")
	}

	if c.Scoring.SavingsNorm <= 0 || c.Scoring.SavingsCap <= 0 {
		return errors.New("savings normalization must be greater than 0")
	}

	if c.Deals.DefaultLimit <= 0 || c.Deals.MaxLimit < c.Deals.DefaultLimit {
		return errors.New("invalid deals limits")
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}

	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}

	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(strings.ToLower(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
