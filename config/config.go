package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream laundry API. Every outbound call goes through this base
	// URL; no other file may carry its own endpoint address.
	UpstreamBaseURL    string `mapstructure:"UPSTREAM_BASE_URL"`
	UpstreamTimeoutSec int    `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisWizardDB int    `mapstructure:"REDIS_WIZARD_DB"`
	RedisTaskDB   int    `mapstructure:"REDIS_TASK_DB"`

	// Wizard session lifetime in minutes.
	WizardSessionTTLMin int `mapstructure:"WIZARD_SESSION_TTL_MIN"`

	// Refund approval ceiling mirrored from backend policy. The backend
	// stays authoritative; this only gates which actions are offered.
	RefundApproveLimit float64 `mapstructure:"REFUND_APPROVE_LIMIT"`

	// Catalog cache refresh cadence in minutes.
	CatalogRefreshMin int `mapstructure:"CATALOG_REFRESH_MIN"`
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
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 15)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_WIZARD_DB", 2)
	viper.SetDefault("REDIS_TASK_DB", 3)
	viper.SetDefault("WIZARD_SESSION_TTL_MIN", 30)
	viper.SetDefault("REFUND_APPROVE_LIMIT", 500)
	viper.SetDefault("CATALOG_REFRESH_MIN", 15)

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
