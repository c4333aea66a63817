package config

import "time"

// Config is the root application configuration. Defaults come from struct
// values in Default(); environment variables with the INDIEPAGES_ prefix
// override individual keys (INDIEPAGES_SERVER_PORT -> server.port).
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Refresh  RefreshConfig  `koanf:"refresh"`
	Log      LogConfig      `koanf:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	AllowedOrigins  []string      `koanf:"allowed_origins"`
	SlugCacheSize   int           `koanf:"slug_cache_size" validate:"gte=0"`
}

// DatabaseConfig selects and configures the shop store driver.
type DatabaseConfig struct {
	// Driver is one of memory, sqlite, postgres.
	Driver     string        `koanf:"driver" validate:"oneof=memory sqlite postgres"`
	ConnString string        `koanf:"conn_string"`
	Path       string        `koanf:"path"`
	Timeout    time.Duration `koanf:"timeout"`
}

// RefreshConfig controls the canonical index rebuild schedule.
type RefreshConfig struct {
	// CronSpec uses robfig/cron syntax, e.g. "@every 15m".
	CronSpec      string        `koanf:"cron_spec"`
	RetryAttempts uint64        `koanf:"retry_attempts" validate:"gte=1"`
	RetryBase     time.Duration `koanf:"retry_base"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON   bool   `koanf:"json"`
	Source bool   `koanf:"source"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			SlugCacheSize:   1024,
		},
		Database: DatabaseConfig{
			Driver:  "memory",
			Path:    "indiepages.db",
			Timeout: 5 * time.Second,
		},
		Refresh: RefreshConfig{
			CronSpec:      "@every 15m",
			RetryAttempts: 3,
			RetryBase:     time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
