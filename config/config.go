package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

type Config struct {
	AppName    string `yaml:"app_name" envconfig:"APP_NAME"`
	AppVersion string `yaml:"app_version" envconfig:"APP_VERSION"`
	AppEnv     string `yaml:"app_env" envconfig:"APP_ENV"`
	Port       string `yaml:"port" envconfig:"PORT"`
	LogLevel   string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	SentryDSN  string `yaml:"sentry_dsn" envconfig:"SENTRY_DSN"`

	OpenWeather OpenWeatherConfig `yaml:"openweather" ignored:"true"`

	DefaultCity     string        `yaml:"default_city" envconfig:"DEFAULT_CITY"`
	Timezone        string        `yaml:"timezone" envconfig:"TIMEZONE"`
	SessionTTL      time.Duration `yaml:"session_ttl" envconfig:"SESSION_TTL"`
	UpstreamTimeout time.Duration `yaml:"upstream_timeout" envconfig:"UPSTREAM_TIMEOUT"`
}

// OpenWeatherConfig is filled from YAML first and then from the OPENWEATHER_*
// variables. VITE_API_KEY is honoured for setups that share the key with a
// frontend build.
type OpenWeatherConfig struct {
	APIKey      string `yaml:"api_key,omitempty" envconfig:"OPENWEATHER_API_KEY"`
	BaseURL     string `yaml:"base_url" envconfig:"OPENWEATHER_BASE_URL"`
	IconBaseURL string `yaml:"icon_base_url" envconfig:"OPENWEATHER_ICON_URL"`
}

func defaults() Config {
	return Config{
		AppName:    "weather-search",
		AppVersion: "1.0.0",
		AppEnv:     "development",
		Port:       "8080",
		LogLevel:   "info",
		OpenWeather: OpenWeatherConfig{
			BaseURL:     "https://api.openweathermap.org/data/2.5",
			IconBaseURL: "https://openweathermap.org/img/wn",
		},
		DefaultCity: "Bhubaneswar",
		Timezone:    "UTC",
		SessionTTL:  30 * time.Minute,
	}
}

// NewConfig loads the configuration from CONFIG_PATH (or DefaultPath) and the
// environment. It panics on invalid input, the process cannot start without it.
func NewConfig() *Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultPath
	}

	cnf, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("error loading configuration: %w", err))
	}

	return cnf
}

// Load applies defaults, then the YAML file at path (a missing file is not an
// error), then a .env file and the process environment.
func Load(path string) (*Config, error) {
	cnf := defaults()

	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read YAML config: %w", err)
	}

	// .env is optional, real environment variables win over it
	_ = godotenv.Load()

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}
	if err := envconfig.Process("", &cnf.OpenWeather); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	if cnf.OpenWeather.APIKey == "" {
		cnf.OpenWeather.APIKey = os.Getenv("VITE_API_KEY")
	}

	if err := cnf.Validate(); err != nil {
		return nil, err
	}

	return &cnf, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.AppName) == "" {
		return errors.New("app_name is required")
	}
	if strings.TrimSpace(c.OpenWeather.APIKey) == "" {
		return errors.New("openweather api key is required (OPENWEATHER_API_KEY)")
	}
	if _, err := url.ParseRequestURI(c.OpenWeather.BaseURL); err != nil {
		return fmt.Errorf("invalid openweather base url: %w", err)
	}
	if _, err := url.ParseRequestURI(c.OpenWeather.IconBaseURL); err != nil {
		return fmt.Errorf("invalid openweather icon url: %w", err)
	}
	if strings.TrimSpace(c.DefaultCity) == "" {
		return errors.New("default_city is required")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.SessionTTL <= 0 {
		return errors.New("session_ttl must be positive")
	}
	if c.UpstreamTimeout < 0 {
		return errors.New("upstream_timeout must not be negative")
	}

	return nil
}

// Location returns the zone forecast days and dates are rendered in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
