package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Limits    LimitsConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// CatalogConfig selects where the product catalog is loaded from at
// startup: a CSV file ("csv") or the products table ("postgres"). With
// a missing CSV file the built-in sample catalog is used.
type CatalogConfig struct {
	Source  string
	CSVPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Schema   string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerWindow int
	WindowSeconds     int
}

// LimitsConfig carries the per-endpoint default and maximum limit
// values for result list sizes.
type LimitsConfig struct {
	DefaultRecommendations int
	MaxRecommendations     int
	DefaultPageSize        int
	MaxPageSize            int
}

type CORSConfig struct {
	Origins []string
}

func Load() *Config {
	// .env is optional; viper picks the same values up from the
	// environment in containerized deployments.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("CATALOG_SOURCE", "csv")
	viper.SetDefault("CATALOG_CSV_PATH", "data/sample_products.csv")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	viper.SetDefault("DEFAULT_RECOMMENDATIONS_LIMIT", 5)
	viper.SetDefault("MAX_RECOMMENDATIONS_LIMIT", 50)
	viper.SetDefault("DEFAULT_PAGE_SIZE", 10)
	viper.SetDefault("MAX_PAGE_SIZE", 100)
	viper.SetDefault("CORS_ORIGINS", "*")

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Catalog: CatalogConfig{
			Source:  viper.GetString("CATALOG_SOURCE"),
			CSVPath: viper.GetString("CATALOG_CSV_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_DATABASE"),
			Schema:   viper.GetString("DB_SCHEMA"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:           viper.GetBool("RATE_LIMIT_ENABLED"),
			RequestsPerWindow: viper.GetInt("RATE_LIMIT_REQUESTS"),
			WindowSeconds:     viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		Limits: LimitsConfig{
			DefaultRecommendations: viper.GetInt("DEFAULT_RECOMMENDATIONS_LIMIT"),
			MaxRecommendations:     viper.GetInt("MAX_RECOMMENDATIONS_LIMIT"),
			DefaultPageSize:        viper.GetInt("DEFAULT_PAGE_SIZE"),
			MaxPageSize:            viper.GetInt("MAX_PAGE_SIZE"),
		},
		CORS: CORSConfig{
			Origins: strings.Split(viper.GetString("CORS_ORIGINS"), ","),
		},
	}
}
