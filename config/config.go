package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"myweather/internal/models"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultEnvFile    = ".env"
	DefaultBaseURL    = "https://api.openweathermap.org/data/2.5"
)

type Config struct {
	App          AppConfig          `yaml:"app" toml:"app"`
	Server       ServerConfig       `yaml:"server" toml:"server"`
	Weather      WeatherConfig      `yaml:"weather" toml:"weather"`
	Presentation PresentationConfig `yaml:"presentation" toml:"presentation"`
	Store        StoreConfig        `yaml:"store" toml:"store"`
	Log          LogConfig          `yaml:"log" toml:"log"`
	Sentry       SentryConfig       `yaml:"sentry" toml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" toml:"name" split_words:"true"`
	Version string `yaml:"version" toml:"version" split_words:"true"`
	Env     string `yaml:"env" toml:"env" split_words:"true"`
}

// ServerConfig timeouts are in seconds. WriteTimeout bounds the whole
// response, so it stays 0 (unlimited) while event streams are served.
type ServerConfig struct {
	Port         string `yaml:"port" toml:"port" split_words:"true"`
	ReadTimeout  int    `yaml:"read_timeout" toml:"read_timeout" split_words:"true"`
	WriteTimeout int    `yaml:"write_timeout" toml:"write_timeout" split_words:"true"`
	IdleTimeout  int    `yaml:"idle_timeout" toml:"idle_timeout" split_words:"true"`
}

type WeatherConfig struct {
	BaseURL string `yaml:"base_url" toml:"base_url" split_words:"true"`
	APIKey  string `yaml:"api_key" toml:"api_key" split_words:"true"`
	Units   string `yaml:"units" toml:"units" split_words:"true"`
	// Count limits the number of entries requested; 0 lets the provider decide.
	Count int `yaml:"count" toml:"count" split_words:"true"`
	// Timeout is the per-request timeout in seconds.
	Timeout int `yaml:"timeout" toml:"timeout" split_words:"true"`
	// RateLimit is the outbound requests per second; 0 disables throttling.
	RateLimit float64 `yaml:"rate_limit" toml:"rate_limit" split_words:"true"`
	Burst     int     `yaml:"burst" toml:"burst" split_words:"true"`
}

type PresentationConfig struct {
	Locale   string `yaml:"locale" toml:"locale" split_words:"true"`
	Timezone string `yaml:"timezone" toml:"timezone" split_words:"true"`
}

type StoreConfig struct {
	DiscardStale bool `yaml:"discard_stale" toml:"discard_stale" split_words:"true"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level" split_words:"true"`
	Format string `yaml:"format" toml:"format" split_words:"true"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" toml:"dsn" split_words:"true"`
	Debug bool   `yaml:"debug" toml:"debug" split_words:"true"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider layers defaults, a yaml or toml file, an optional .env
// file and the process environment, in that order.
type FileConfigProvider struct {
	path    string
	envFile string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path, envFile: DefaultEnvFile}
}

// WithEnvFile overrides the dotenv file location. An empty path disables it.
func (p *FileConfigProvider) WithEnvFile(path string) *FileConfigProvider {
	p.envFile = path
	return p
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "myweather",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 0,
			IdleTimeout:  120,
		},
		Weather: WeatherConfig{
			BaseURL: DefaultBaseURL,
			Units:   string(models.UnitsMetric),
			Timeout: 10,
		},
		Presentation: PresentationConfig{
			Locale:   "en-US",
			Timezone: "Local",
		},
		Store: StoreConfig{
			DiscardStale: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Default()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if p.envFile != "" {
		// godotenv never overrides variables already set in the environment
		if err := godotenv.Load(p.envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "load env file %s", p.envFile)
		}
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, errors.Wrap(err, "error environment variable parsing")
	}

	return cnf, nil
}

// loadFromFile decodes the config file over cnf. A missing file is not an error.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read config file %s", p.path)
	}

	switch strings.ToLower(filepath.Ext(p.path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cnf); err != nil {
			return errors.Wrapf(err, "failed to parse TOML config %s", p.path)
		}
	default:
		if err := yaml.Unmarshal(data, cnf); err != nil {
			return errors.Wrapf(err, "failed to parse YAML config %s", p.path)
		}
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	switch {
	case config.App.Name == "":
		return errors.New("app.name is required")
	case config.Server.Port == "":
		return errors.New("server.port is required")
	case config.Server.ReadTimeout <= 0 || config.Server.IdleTimeout <= 0:
		return errors.New("server timeouts must be positive")
	case config.Server.WriteTimeout < 0:
		return errors.New("server.write_timeout must not be negative")
	case strings.TrimSpace(config.Weather.APIKey) == "":
		return errors.New("weather.api_key is required")
	case config.Weather.BaseURL == "":
		return errors.New("weather.base_url is required")
	case config.Weather.Timeout <= 0:
		return errors.New("weather.timeout must be positive")
	case config.Weather.Count < 0:
		return errors.New("weather.count must not be negative")
	case config.Weather.RateLimit < 0:
		return errors.New("weather.rate_limit must not be negative")
	}

	if _, err := models.ParseUnits(config.Weather.Units); err != nil {
		return errors.Wrap(err, "weather.units")
	}

	if _, err := zapcore.ParseLevel(config.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}

	if config.Log.Format != "json" && config.Log.Format != "console" {
		return errors.Errorf("log.format must be json or console, got %q", config.Log.Format)
	}

	if _, err := config.Location(); err != nil {
		return errors.Wrap(err, "presentation.timezone")
	}

	return nil
}

// NewConfig loads the default config file and environment.
func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}
	return cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Location resolves the presentation timezone; "Local" and "" mean the host zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Presentation.Timezone == "" || c.Presentation.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Presentation.Timezone)
}

func (w WeatherConfig) RequestTimeout() time.Duration {
	return time.Duration(w.Timeout) * time.Second
}

func (s ServerConfig) Timeouts() (read, write, idle time.Duration) {
	return time.Duration(s.ReadTimeout) * time.Second,
		time.Duration(s.WriteTimeout) * time.Second,
		time.Duration(s.IdleTimeout) * time.Second
}
