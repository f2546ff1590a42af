package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/Droply-AvailabilityService/internal/availability"
	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Calendar  CalendarConfig  `toml:"calendar"`
	Sessions  SessionsConfig  `toml:"sessions"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig правила, с которыми создается новая сессия, и политика календаря
type CalendarConfig struct {
	DefaultDurationMinutes int    `toml:"default_duration_minutes"`
	StartHour              int    `toml:"start_hour"`
	EndHour                int    `toml:"end_hour"`
	LockWeekends           bool   `toml:"lock_weekends"`
	Timezone               string `toml:"timezone"`
	WeekendUnlockScope     string `toml:"weekend_unlock_scope"` // all | month
}

// SessionsConfig параметры хранилища сессий
type SessionsConfig struct {
	MaxSessions            int `toml:"max_sessions"`
	IdleTTLMinutes         int `toml:"idle_ttl_minutes"`
	JanitorIntervalSeconds int `toml:"janitor_interval_seconds"`
}

// RateLimitConfig ограничение частоты запросов на клиента
type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "droply-availability",
		},
		Calendar: CalendarConfig{
			DefaultDurationMinutes: domain.DefaultSlotDurationMinutes,
			StartHour:              domain.DefaultStartHour,
			EndHour:                domain.DefaultEndHour,
			LockWeekends:           domain.DefaultLockWeekends,
			Timezone:               "Local",
			WeekendUnlockScope:     string(availability.WeekendUnlockAll),
		},
		Sessions: SessionsConfig{
			MaxSessions:            10000,
			IdleTTLMinutes:         120,
			JanitorIntervalSeconds: 60,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 200,
			Burst:             50,
		},
	}
}

// Load загружает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be between 1 and 65535", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	if c.Calendar.DefaultDurationMinutes <= 0 || c.Calendar.DefaultDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: calendar.default_duration_minutes must be between 1 and %d",
			ErrInvalidConfig, domain.MaxSlotDurationMinutes)
	}

	hours := domain.WorkingHours{StartHour: c.Calendar.StartHour, EndHour: c.Calendar.EndHour}
	if !hours.IsValid() {
		return fmt.Errorf("%w: calendar.start_hour must be before calendar.end_hour, both within 0..23", ErrInvalidConfig)
	}

	if _, err := availability.ParseWeekendUnlockScope(c.Calendar.WeekendUnlockScope); err != nil {
		return fmt.Errorf("%w: calendar.weekend_unlock_scope: %v", ErrInvalidConfig, err)
	}

	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("%w: calendar.timezone: %v", ErrInvalidConfig, err)
	}

	if c.Sessions.MaxSessions <= 0 {
		return fmt.Errorf("%w: sessions.max_sessions must be positive", ErrInvalidConfig)
	}

	if c.Sessions.IdleTTLMinutes <= 0 || c.Sessions.JanitorIntervalSeconds <= 0 {
		return fmt.Errorf("%w: sessions.idle_ttl_minutes and sessions.janitor_interval_seconds must be positive", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.requests_per_minute and rate_limit.burst must be positive", ErrInvalidConfig)
	}

	return nil
}

// Location возвращает часовой пояс календаря
func (c CalendarConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// UnlockScope возвращает политику снятия блокировки выходных
func (c CalendarConfig) UnlockScope() availability.WeekendUnlockScope {
	scope, err := availability.ParseWeekendUnlockScope(c.WeekendUnlockScope)
	if err != nil {
		return availability.WeekendUnlockAll
	}
	return scope
}

// IdleTTL возвращает время жизни неактивной сессии
func (c SessionsConfig) IdleTTL() time.Duration {
	return time.Duration(c.IdleTTLMinutes) * time.Minute
}

// JanitorInterval возвращает период очистки неактивных сессий
func (c SessionsConfig) JanitorInterval() time.Duration {
	return time.Duration(c.JanitorIntervalSeconds) * time.Second
}
