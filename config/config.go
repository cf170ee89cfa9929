package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "config/config.yaml"

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Weather WeatherConfig `yaml:"weather"`
	Storage StorageConfig `yaml:"storage"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" split_words:"true"`
	Version string `yaml:"version" split_words:"true"`
	Env     string `yaml:"env" split_words:"true"`
}

type ServerConfig struct {
	Port         string        `yaml:"port" split_words:"true"`
	ReadTimeout  time.Duration `yaml:"read_timeout" split_words:"true"`
	WriteTimeout time.Duration `yaml:"write_timeout" split_words:"true"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" split_words:"true"`
}

type LogConfig struct {
	Level string `yaml:"level" split_words:"true"`
}

// WeatherConfig describes the OpenWeatherMap endpoints and the forecast projection.
type WeatherConfig struct {
	APIKey             string        `yaml:"api_key" split_words:"true"`
	GeocodingURL       string        `yaml:"geocoding_url" split_words:"true"`
	ForecastURL        string        `yaml:"forecast_url" split_words:"true"`
	Units              string        `yaml:"units" split_words:"true"`
	Lang               string        `yaml:"lang" split_words:"true"`
	DaysPerForecast    int           `yaml:"days_per_forecast" split_words:"true"`
	HoursPerSample     int           `yaml:"hours_per_sample" split_words:"true"`
	ShortSeriesPolicy  string        `yaml:"short_series_policy" split_words:"true"`
	RequestTimeout     time.Duration `yaml:"request_timeout" split_words:"true"`
	GeolocationTimeout time.Duration `yaml:"geolocation_timeout" split_words:"true"`
	// Geodiscovery enables saving coordinates reported by the browser.
	Geodiscovery       bool          `yaml:"geodiscovery" split_words:"true"`
}

// StorageConfig selects the history database. Driver is "sqlite3" or "pgx".
type StorageConfig struct {
	Driver string `yaml:"driver" split_words:"true"`
	DSN    string `yaml:"dsn" split_words:"true"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" split_words:"true"`
	Debug bool   `yaml:"debug" split_words:"true"`
}

// ConfigProvider loads and validates configuration.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads a YAML file and lets the environment override it.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultConfigPath
	}

	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Defaults()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// Env variables win over the file. Fields without a variable keep their value.
	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	switch {
	case cnf.App.Name == "":
		return errors.New("app.name is required")
	case cnf.Server.Port == "":
		return errors.New("server.port is required")
	case cnf.Weather.GeocodingURL == "":
		return errors.New("weather.geocoding_url is required")
	case cnf.Weather.ForecastURL == "":
		return errors.New("weather.forecast_url is required")
	case cnf.Weather.DaysPerForecast < 1:
		return errors.New("weather.days_per_forecast must be at least 1")
	case cnf.Weather.HoursPerSample < 1 || cnf.Weather.HoursPerSample > 24:
		return errors.New("weather.hours_per_sample must be between 1 and 24")
	case cnf.Storage.Driver != "sqlite3" && cnf.Storage.Driver != "pgx":
		return fmt.Errorf("storage.driver %q is not supported", cnf.Storage.Driver)
	case cnf.Storage.DSN == "":
		return errors.New("storage.dsn is required")
	}

	switch cnf.Weather.Units {
	case "standard", "metric", "imperial":
	default:
		return fmt.Errorf("weather.units %q is not supported", cnf.Weather.Units)
	}

	switch cnf.Weather.ShortSeriesPolicy {
	case "strict", "clamp":
	default:
		return fmt.Errorf("weather.short_series_policy %q is not supported", cnf.Weather.ShortSeriesPolicy)
	}

	return nil
}

// Defaults returns the configuration used when neither file nor env set a value.
func Defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-dashboard",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Weather: WeatherConfig{
			GeocodingURL:       "https://api.openweathermap.org/geo/1.0/direct",
			ForecastURL:        "https://api.openweathermap.org/data/2.5/forecast",
			Units:              "metric",
			Lang:               "en",
			DaysPerForecast:    5,
			HoursPerSample:     3,
			ShortSeriesPolicy:  "strict",
			RequestTimeout:     10 * time.Second,
			GeolocationTimeout: 5 * time.Second,
			Geodiscovery:       true,
		},
		Storage: StorageConfig{
			Driver: "sqlite3",
			DSN:    "file:weather-dashboard.db?_foreign_keys=on",
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
