package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the full service configuration loaded from config.toml.
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	Events         EventsConfig         `toml:"events"`
	Booking        BookingConfig        `toml:"booking"`
	PaymentService PaymentServiceConfig `toml:"payment_service"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig Postgres connection settings.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig logger settings.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// EventsConfig RabbitMQ publisher settings. When disabled the service
// falls back to a no-op publisher.
type EventsConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

// BookingConfig tenant-level reservation policy. GracePeriodDays is read
// at call time by the expiration sweeper; SweepSchedule is a cron
// expression for the optional in-process sweep job.
type BookingConfig struct {
	GracePeriodDays int    `toml:"grace_period_days"`
	SweepEnabled    bool   `toml:"sweep_enabled"`
	SweepSchedule   string `toml:"sweep_schedule"`
}

// PaymentServiceConfig settings of the external payment collaborator.
type PaymentServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("config: database host and dbname are required")
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "reserva-canchas-service"
	}
	if cfg.Booking.GracePeriodDays == 0 {
		cfg.Booking.GracePeriodDays = 3
	}
	if cfg.Booking.SweepSchedule == "" {
		cfg.Booking.SweepSchedule = "0 4 * * *"
	}
	if cfg.PaymentService.Timeout == 0 {
		cfg.PaymentService.Timeout = 5
	}
}
