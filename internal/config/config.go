package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string        `mapstructure:"PORT"`
	DBUrl             string        `mapstructure:"DB_URL"`
	RedisUrl          string        `mapstructure:"REDIS_URL"`
	CacheTTL          time.Duration `mapstructure:"CACHE_TTL"`
	PolylinePrecision int           `mapstructure:"POLYLINE_PRECISION"`
	GinMode           string        `mapstructure:"GIN_MODE"`
}

// LoadConfig reads .env.<APP_ENV> from dir, letting environment variables override it
func LoadConfig(dir string) (c Config, err error) {
	// Get environment type from ENV variable or use development as default
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	v := viper.New()

	// Set default values
	v.SetDefault("PORT", ":8080")
	v.SetDefault("DB_URL", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CACHE_TTL", time.Hour)
	v.SetDefault("POLYLINE_PRECISION", 5)
	v.SetDefault("GIN_MODE", "release")

	// Load environment file
	v.SetConfigName(fmt.Sprintf(".env.%s", env))
	v.SetConfigType("env")
	v.AddConfigPath(dir)

	// Environment variables take precedence over config file
	v.AutomaticEnv()

	// Try to read config file
	if err := v.ReadInConfig(); err != nil {
		// Continue even if file is not found
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Map the values to the Config struct
	if err = v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("failed to decode config: %w", err)
	}

	if c.PolylinePrecision < 1 || c.PolylinePrecision > 10 {
		return c, fmt.Errorf("POLYLINE_PRECISION must be between 1 and 10, got %d", c.PolylinePrecision)
	}
	if c.CacheTTL <= 0 {
		return c, fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL)
	}

	return c, nil
}

// CacheBackend names the cache implementation selected by the config
func (c Config) CacheBackend() string {
	if c.RedisUrl != "" {
		return "redis"
	}
	return "memory"
}

// StoreBackend names the track store implementation selected by the config
func (c Config) StoreBackend() string {
	if c.DBUrl != "" {
		return "postgres"
	}
	return "memory"
}
