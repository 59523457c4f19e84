package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config общая конфигурация клиента и сервера
type Config struct {
	Client  ClientConfig  `mapstructure:"client"`
	Server  ServerConfig  `mapstructure:"server"`
	Sync    SyncConfig    `mapstructure:"sync"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ClientConfig конфигурация клиентской части
type ClientConfig struct {
	ServerURL string `mapstructure:"server_url"`
	DBPath    string `mapstructure:"db_path"`
}

// ServerConfig конфигурация HTTP сервера
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	DBPath       string `mapstructure:"db_path"`
	ReadTimeout  string `mapstructure:"read_timeout"`
	WriteTimeout string `mapstructure:"write_timeout"`
	Port         int    `mapstructure:"port"`
	RateLimit    int    `mapstructure:"rate_limit"`
}

// SyncConfig конфигурация синхронизации
type SyncConfig struct {
	Strategy      string `mapstructure:"strategy"`
	Interval      string `mapstructure:"interval"`
	RetryDelay    string `mapstructure:"retry_delay"`
	GraceDelay    string `mapstructure:"grace_delay"`
	ProbeInterval string `mapstructure:"probe_interval"`
	MaxRetries    int    `mapstructure:"max_retries"`
}

// LoggingConfig конфигурация логирования
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GetReadTimeout возвращает read timeout как time.Duration
func (s ServerConfig) GetReadTimeout() time.Duration {
	return parseDuration(s.ReadTimeout, 10*time.Second)
}

// GetWriteTimeout возвращает write timeout как time.Duration
func (s ServerConfig) GetWriteTimeout() time.Duration {
	return parseDuration(s.WriteTimeout, 10*time.Second)
}

// GetInterval возвращает интервал автосинхронизации
func (c SyncConfig) GetInterval() time.Duration {
	return parseDuration(c.Interval, 30*time.Second)
}

// GetRetryDelay возвращает задержку перед повторным проходом после неудач
func (c SyncConfig) GetRetryDelay() time.Duration {
	return parseDuration(c.RetryDelay, 5*time.Second)
}

// GetGraceDelay возвращает задержку перед физическим удалением
// синхронизированной записи
func (c SyncConfig) GetGraceDelay() time.Duration {
	return parseDuration(c.GraceDelay, 5*time.Second)
}

// GetProbeInterval возвращает интервал фонового опроса доступности сервера
func (c SyncConfig) GetProbeInterval() time.Duration {
	return parseDuration(c.ProbeInterval, 15*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// NewLogger создает slog.Logger согласно конфигурации логирования
func (l LoggingConfig) NewLogger() *slog.Logger {
	level := slog.LevelInfo
	switch l.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if l.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// LoadConfig читает конфигурацию из yaml файла.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			// Файл указан явно, но не читается - это ошибка конфигурации
			if _, statErr := os.Stat(path); statErr == nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("client.server_url", "http://localhost:8080")
	v.SetDefault("client.db_path", "storekeeper-client.db")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.db_path", "storekeeper-server.db")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.rate_limit", 60)

	v.SetDefault("sync.strategy", "timestamp")
	v.SetDefault("sync.interval", "30s")
	v.SetDefault("sync.retry_delay", "5s")
	v.SetDefault("sync.grace_delay", "5s")
	v.SetDefault("sync.probe_interval", "15s")
	v.SetDefault("sync.max_retries", 3)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}
