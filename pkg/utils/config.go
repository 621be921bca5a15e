package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Token     TokenConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type TokenConfig struct {
	// ExpiryWindow is the rolling-expiry window for customer tokens.
	ExpiryWindow time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("TOKEN_EXPIRY_SECONDS", 1800)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_CAPACITY", 20)
	viper.SetDefault("RATE_LIMIT_REFILL_TOKENS", 10)
	viper.SetDefault("RATE_LIMIT_REFILL_INTERVAL_MS", 1000)
	viper.SetDefault("RATE_LIMIT_TTL_SECONDS", 120)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Token: TokenConfig{
			ExpiryWindow: time.Duration(viper.GetInt("TOKEN_EXPIRY_SECONDS")) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:        viper.GetBool("RATE_LIMIT_ENABLED"),
			Capacity:       viper.GetInt("RATE_LIMIT_CAPACITY"),
			RefillTokens:   viper.GetInt("RATE_LIMIT_REFILL_TOKENS"),
			RefillInterval: time.Duration(viper.GetInt("RATE_LIMIT_REFILL_INTERVAL_MS")) * time.Millisecond,
			TTL:            time.Duration(viper.GetInt("RATE_LIMIT_TTL_SECONDS")) * time.Second,
		},
	}

	return config, nil
}
