package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	DBQueryTimeout    time.Duration

	CORSAllowedOrigins []string
	RateLimit          string // ulule formatted rate, e.g. "100-M"

	// Working set cache. Without AMQP, writes from other processes become visible after the TTL.
	WorkingSetCacheMaxCost int64
	WorkingSetCacheTTL     time.Duration

	// Budget events; publishing and cache invalidation from other processes are disabled when AMQPURL is empty
	AMQPURL      string
	AMQPExchange string

	MigrationsPath string
	LogLevel       string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "budget-forecast-app")
	v.SetDefault("DB_QUERY_TIMEOUT", "5s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("WORKING_SET_CACHE_MAX_COST", 100000)
	v.SetDefault("WORKING_SET_CACHE_TTL", "1m")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "budget.events")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("LOG_LEVEL", "info")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:            v.GetString("PGSQL_URL"),
		Port:                   v.GetString("PORT"),
		IsProduction:           v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:          v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		JWTIssuer:              v.GetString("JWT_ISSUER"),
		RateLimit:              v.GetString("RATE_LIMIT"),
		WorkingSetCacheMaxCost: v.GetInt64("WORKING_SET_CACHE_MAX_COST"),
		AMQPURL:                v.GetString("AMQP_URL"),
		AMQPExchange:           v.GetString("AMQP_EXCHANGE"),
		MigrationsPath:         v.GetString("MIGRATIONS_PATH"),
		LogLevel:               strings.ToLower(v.GetString("LOG_LEVEL")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = durationOr(v, "JWT_EXPIRY_DURATION", time.Hour)
	cfg.DBQueryTimeout = durationOr(v, "DB_QUERY_TIMEOUT", 5*time.Second)
	cfg.WorkingSetCacheTTL = durationOr(v, "WORKING_SET_CACHE_TTL", time.Minute)

	if cfg.WorkingSetCacheMaxCost <= 0 {
		log.Printf("Warning: WORKING_SET_CACHE_MAX_COST must be positive (got %d). Working set caching disabled.\n", cfg.WorkingSetCacheMaxCost)
		cfg.WorkingSetCacheMaxCost = 0
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg
}

// durationOr parses key as a duration (e.g. "60m", "1h"), falling back to def.
func durationOr(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
