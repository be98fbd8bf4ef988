package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	MigrationsDir string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RefreshTokenExpiryDuration time.Duration

	UploadDir string

	RateLimitPeriod   time.Duration
	RateLimitRequests int64
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables take precedence over .env values.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MIGRATIONS_DIR", "migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "orgadmin-backend")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("RATE_LIMIT_PERIOD", "1m")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 30)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MigrationsDir = viper.GetString("MIGRATIONS_DIR")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		jwtExpiry = time.Hour
		log.Printf("Warning: invalid JWT_EXPIRY_DURATION, defaulting to %s.\n", jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	refreshExpiry, err := time.ParseDuration(viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION"))
	if err != nil {
		refreshExpiry = time.Hour * 24 * 7
		log.Printf("Warning: invalid REFRESH_TOKEN_EXPIRY_DURATION, defaulting to %s.\n", refreshExpiry)
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiry

	cfg.UploadDir = viper.GetString("UPLOAD_DIR")

	ratePeriod, err := time.ParseDuration(viper.GetString("RATE_LIMIT_PERIOD"))
	if err != nil {
		ratePeriod = time.Minute
		log.Printf("Warning: invalid RATE_LIMIT_PERIOD, defaulting to %s.\n", ratePeriod)
	}
	cfg.RateLimitPeriod = ratePeriod
	cfg.RateLimitRequests = viper.GetInt64("RATE_LIMIT_REQUESTS")

	return cfg, nil
}
