package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Scheduling SchedulingConfig
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	URL            string `mapstructure:"url"`
	LockTTLSeconds int    `mapstructure:"lock_ttl_seconds"`
}

// SchedulingConfig is the single source for the calendar grid parameters.
// SlotIntervalMinutes is both the grid step and the default duration
// assumed for bookings whose service cannot be resolved.
type SchedulingConfig struct {
	Timezone               string `mapstructure:"timezone"`
	SlotIntervalMinutes    int    `mapstructure:"slot_interval_minutes"`
	DefaultDurationMinutes int    `mapstructure:"default_duration_minutes"`
}

func (c SchedulingConfig) SlotInterval() time.Duration {
	if c.SlotIntervalMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.SlotIntervalMinutes) * time.Minute
}

func (c SchedulingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("scheduling.slot_interval_minutes", 30)
	viper.SetDefault("scheduling.default_duration_minutes", 30)
	viper.SetDefault("scheduling.timezone", "America/Sao_Paulo")
	viper.SetDefault("redis.lock_ttl_seconds", 10)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
