package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string  `mapstructure:"env" validate:"required"` // current application environment (local, dev, production etc)
	TelegramAPIToken string  `mapstructure:"-"`                       // Telegram API token loaded from environment
	Storage          Storage `mapstructure:"storage"`                 // persistence backend section
	Game             Game    `mapstructure:"game"`                    // game timer section
}

// Storage selects and configures the key-value backend.
type Storage struct {
	Driver          string        `mapstructure:"driver" validate:"oneof=memory sqlite postgres redis"`
	SQLitePath      string        `mapstructure:"sqlite_path"`                        // sqlite DSN, empty for the default file
	DatabaseURL     string        `mapstructure:"-"`                                  // postgres connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections" validate:"gte=1"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime" validate:"gte=0"` // maximum lifetime of a single connection
	RedisURL        string        `mapstructure:"-"`                                  // redis URL loaded from environment, wins over RedisAddr
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisDB         int           `mapstructure:"redis_db" validate:"gte=0"`
}

// Game contains timer and OTP defaults.
type Game struct {
	TickInterval    time.Duration `mapstructure:"tick_interval" validate:"gt=0"`     // timer granularity of the contact modes
	OTPTickInterval time.Duration `mapstructure:"otp_tick_interval" validate:"gt=0"` // timer granularity of the OTP window and the sequence reveal
	OTPLength       int           `mapstructure:"otp_length" validate:"min=4,max=10"`
	OTPDisplayTime  time.Duration `mapstructure:"otp_display_time" validate:"gt=0"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" validate:"gt=0"` // abandoned games are dropped after this
	SweepSchedule   string        `mapstructure:"sweep_schedule" validate:"required"`
}

// DSN returns the postgres connection string if it is configured.
func (s Storage) DSN() (string, error) {
	if s.DatabaseURL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return s.DatabaseURL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.sqlite_path", "")
	v.SetDefault("storage.max_connections", 20)
	v.SetDefault("storage.max_conn_lifetime", "30s")
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.redis_db", 0)
	v.SetDefault("game.tick_interval", "1s")
	v.SetDefault("game.otp_tick_interval", "100ms")
	v.SetDefault("game.otp_length", 6)
	v.SetDefault("game.otp_display_time", "3s")
	v.SetDefault("game.idle_timeout", "30m")
	v.SetDefault("game.sweep_schedule", "@every 10m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("redis_url", "REDIS_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.Storage.DatabaseURL = v.GetString("database_url")
	cfg.Storage.RedisURL = v.GetString("redis_url")
	if cfg.Storage.Driver == DriverPostgres && cfg.Storage.DatabaseURL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if _, err := cron.ParseStandard(cfg.Game.SweepSchedule); err != nil {
		return nil, fmt.Errorf("invalid sweep_schedule %q: %w", cfg.Game.SweepSchedule, err)
	}

	return &cfg, nil
}
