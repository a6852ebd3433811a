package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// AllowedSigninEmail restricts registration/login to a single email when set.
	AllowedSigninEmail string

	// Rate provider settings.
	RateAPIURL          string
	RateAPIKey          string
	RateRefreshSecret   string
	RateRefreshInterval time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "rental-ledger-app")
	viper.SetDefault("ALLOWED_SIGNIN_EMAIL", "")
	viper.SetDefault("RATE_API_URL", "https://api.currencyapi.com")
	viper.SetDefault("RATE_API_KEY", "")
	viper.SetDefault("RATE_REFRESH_SECRET", "")
	viper.SetDefault("RATE_REFRESH_INTERVAL", "24h")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AllowedSigninEmail = viper.GetString("ALLOWED_SIGNIN_EMAIL")

	cfg.RateAPIURL = viper.GetString("RATE_API_URL")
	cfg.RateAPIKey = viper.GetString("RATE_API_KEY")
	if cfg.RateAPIKey == "" {
		log.Println("Warning: RATE_API_KEY not set. Exchange-rate auto-refresh will fail until configured.")
	}
	cfg.RateRefreshSecret = viper.GetString("RATE_REFRESH_SECRET")
	if cfg.RateRefreshSecret == "" {
		log.Println("Warning: RATE_REFRESH_SECRET not set. The internal refresh endpoint is disabled.")
	}

	refreshIntervalStr := viper.GetString("RATE_REFRESH_INTERVAL")
	refreshInterval, err := time.ParseDuration(refreshIntervalStr)
	if err != nil || refreshInterval <= 0 {
		refreshInterval = 24 * time.Hour
		log.Printf("Warning: Invalid value for RATE_REFRESH_INTERVAL (%q). Defaulting to %s.\n", refreshIntervalStr, refreshInterval)
	}
	cfg.RateRefreshInterval = refreshInterval

	return cfg, nil
}
