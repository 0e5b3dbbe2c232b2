package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Shared secret the payment gateway signs webhook calls with.
	PaymentWebhookSecret string `mapstructure:"PAYMENT_WEBHOOK_SECRET"`

	// Booking engine policy.
	StrictTransitions bool    `mapstructure:"BOOKING_STRICT_TRANSITIONS"`
	StaleAfterHours   int     `mapstructure:"BOOKING_STALE_AFTER_HOURS"`
	SweepSpec         string  `mapstructure:"BOOKING_SWEEP_SPEC"`
	MaxCompanions     int     `mapstructure:"BOOKING_MAX_COMPANIONS"`
	PlatformFeeRate   float64 `mapstructure:"PLATFORM_FEE_RATE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "roamstay")
	viper.SetDefault("PAYMENT_WEBHOOK_SECRET", "roamstay-dev-webhook-secret")
	viper.SetDefault("BOOKING_STRICT_TRANSITIONS", false)
	viper.SetDefault("BOOKING_STALE_AFTER_HOURS", 3)
	viper.SetDefault("BOOKING_SWEEP_SPEC", "*/30 * * * *")
	viper.SetDefault("BOOKING_MAX_COMPANIONS", 10)
	viper.SetDefault("PLATFORM_FEE_RATE", 0.14)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
