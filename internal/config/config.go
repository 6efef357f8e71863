package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime configuration of the admin API.
type Config struct {
	DatabaseURL     string
	Port            string
	RedisAddr       string
	RevenueCacheTTL time.Duration
}

// Load reads configuration from the environment, with a .env file as an
// optional local override source. DATABASE_URL is the only required value;
// an empty REDIS_ADDR disables the revenue report cache.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REVENUE_CACHE_TTL_SECONDS", 60)

	cfg := Config{
		DatabaseURL:     v.GetString("DATABASE_URL"),
		Port:            v.GetString("PORT"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RevenueCacheTTL: time.Duration(v.GetInt("REVENUE_CACHE_TTL_SECONDS")) * time.Second,
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("environment variable DATABASE_URL not found")
	}
	return cfg, nil
}
