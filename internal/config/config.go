package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// RuleSelectionFirstMatch первое подходящее правило в порядке списка
	RuleSelectionFirstMatch = "first_match"
	// RuleSelectionMostSpecific самое узкое подходящее правило
	RuleSelectionMostSpecific = "most_specific"

	envPrefix = "VENUE"
)

var (
	// ErrReadConfig возвращается, когда не удалось прочитать файл конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Redis     RedisConfig     `toml:"redis"`
	FXService FXServiceConfig `toml:"fx_service"`
	Pricing   PricingConfig   `toml:"pricing"`
	Currency  CurrencyConfig  `toml:"currency"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	RatesTTL int    `toml:"rates_ttl"`
}

type FXServiceConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type PricingConfig struct {
	RuleSelection    string `toml:"rule_selection"`
	AllowFullDayWrap bool   `toml:"allow_full_day_wrap"`
}

type CurrencyConfig struct {
	Base  string             `toml:"base"`
	Rates map[string]float64 `toml:"rates"`
}

// envOverrides переменные окружения VENUE_*, перекрывающие значения из файла
type envOverrides struct {
	DBHost     string `envconfig:"DB_HOST"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	HTTPPort   int    `envconfig:"HTTP_PORT"`
	RedisAddr  string `envconfig:"REDIS_ADDR"`
	FXURL      string `envconfig:"FX_URL"`
	LogLevel   string `envconfig:"LOG_LEVEL"`
}

// Load читает TOML-файл, затем применяет .env и переменные окружения VENUE_*
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrReadConfig, err)
	}

	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return nil, fmt.Errorf("%w: environment: %v", ErrInvalidConfig, err)
	}
	cfg.applyEnv(env)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "venue-booking",
		},
		Redis:     RedisConfig{RatesTTL: 3600},
		FXService: FXServiceConfig{Timeout: 3},
		Pricing:   PricingConfig{RuleSelection: RuleSelectionFirstMatch},
		Currency:  CurrencyConfig{Base: "USD"},
	}
}

func (c *Config) applyEnv(env envOverrides) {
	if env.DBHost != "" {
		c.Database.Host = env.DBHost
	}
	if env.DBPassword != "" {
		c.Database.Password = env.DBPassword
	}
	if env.HTTPPort != 0 {
		c.Server.HTTPPort = env.HTTPPort
	}
	if env.RedisAddr != "" {
		c.Redis.Addr = env.RedisAddr
	}
	if env.FXURL != "" {
		c.FXService.URL = env.FXURL
	}
	if env.LogLevel != "" {
		c.Logs.Level = env.LogLevel
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}

	if c.Database.MaxOpenConns <= 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("%w: database pool sizes must be positive", ErrInvalidConfig)
	}

	c.Pricing.RuleSelection = strings.ToLower(strings.TrimSpace(c.Pricing.RuleSelection))
	switch c.Pricing.RuleSelection {
	case RuleSelectionFirstMatch, RuleSelectionMostSpecific:
	default:
		return fmt.Errorf("%w: pricing.rule_selection must be %q or %q, got %q",
			ErrInvalidConfig, RuleSelectionFirstMatch, RuleSelectionMostSpecific, c.Pricing.RuleSelection)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.FXService.Enabled && c.FXService.URL == "" {
		return fmt.Errorf("%w: fx_service.url is required when fx_service is enabled", ErrInvalidConfig)
	}
	for code, rate := range c.Currency.Rates {
		if rate <= 0 {
			return fmt.Errorf("%w: currency.rates.%s must be positive", ErrInvalidConfig, code)
		}
	}

	return nil
}
