package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Discovery    DiscoveryConfig
	Scheduler    SchedulerConfig
	Logging      LoggingConfig
	GeminiAPIKey string
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiryHrs int
}

// DiscoveryConfig tunes the candidate pool and the swipe gesture translator.
type DiscoveryConfig struct {
	PoolBatchSize      int
	SwipeThresholdPx   int
	SettleDelayMs      int
	SessionIdleMinutes int
}

type SchedulerConfig struct {
	CleanupIntervalMin int
}

type LoggingConfig struct {
	Level string
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = viper.ReadInConfig()

	viper.SetDefault("JWT_ACCESS_EXPIRY_HRS", 168)
	viper.SetDefault("DISCOVERY_POOL_BATCH_SIZE", 100)
	viper.SetDefault("DISCOVERY_SWIPE_THRESHOLD_PX", 100)
	viper.SetDefault("DISCOVERY_SETTLE_DELAY_MS", 300)
	viper.SetDefault("DISCOVERY_SESSION_IDLE_MIN", 30)
	viper.SetDefault("SCHEDULER_CLEANUP_INTERVAL_MIN", 60)
	viper.SetDefault("LOG_LEVEL", "info")

	config := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetInt("SERVER_PORT"),
			Env:          viper.GetString("ENV"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			AccessSecret:    viper.GetString("JWT_ACCESS_SECRET"),
			AccessExpiryHrs: viper.GetInt("JWT_ACCESS_EXPIRY_HRS"),
		},
		Discovery: DiscoveryConfig{
			PoolBatchSize:      viper.GetInt("DISCOVERY_POOL_BATCH_SIZE"),
			SwipeThresholdPx:   viper.GetInt("DISCOVERY_SWIPE_THRESHOLD_PX"),
			SettleDelayMs:      viper.GetInt("DISCOVERY_SETTLE_DELAY_MS"),
			SessionIdleMinutes: viper.GetInt("DISCOVERY_SESSION_IDLE_MIN"),
		},
		Scheduler: SchedulerConfig{
			CleanupIntervalMin: viper.GetInt("SCHEDULER_CLEANUP_INTERVAL_MIN"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
	}

	// Validate critical configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if c.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT access secret is required")
	}
	if len(c.JWT.AccessSecret) < 32 {
		return fmt.Errorf("JWT access secret must be at least 32 characters")
	}
	if c.Discovery.PoolBatchSize <= 0 {
		return fmt.Errorf("discovery pool batch size must be positive")
	}
	if c.Discovery.SwipeThresholdPx <= 0 {
		return fmt.Errorf("swipe threshold must be positive")
	}
	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
