package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port int `yaml:"port" validate:"omitempty,gt=0,lte=65535"`
}

// FeedsConfig points at the ferry authority's live feeds. An empty baseURL
// selects the public endpoint; Disabled turns live data off entirely and the
// service runs on the static timetable alone.
type FeedsConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	APIKey    string `yaml:"apiKey"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
	Disabled  bool   `yaml:"disabled"`
}

// WeatherConfig locates the observation point for the maritime forecast.
type WeatherConfig struct {
	BaseURL   string  `yaml:"baseURL" validate:"omitempty,url"`
	Latitude  float64 `yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `yaml:"longitude" validate:"gte=-180,lte=180"`
}

// HeuristicsConfig carries the tunable constants of the projection engine.
// The commute windows are half-open hour ranges for the automatic direction
// heuristic.
type HeuristicsConfig struct {
	MorningStart   int `yaml:"morningStart" validate:"gte=0,lte=23"`
	MorningEnd     int `yaml:"morningEnd" validate:"gte=0,lte=24"`
	EveningStart   int `yaml:"eveningStart" validate:"gte=0,lte=23"`
	EveningEnd     int `yaml:"eveningEnd" validate:"gte=0,lte=24"`
	DepartureCount int `yaml:"departureCount" validate:"gte=0,lte=20"`
}

// WatchConfig drives watch mode: which route to poll and how often.
type WatchConfig struct {
	Route           string `yaml:"route"`
	Direction       string `yaml:"direction"`
	IntervalMinutes int    `yaml:"intervalMinutes" validate:"gte=0"`
}

// Config is the root configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Feeds      FeedsConfig      `yaml:"feeds"`
	Weather    WeatherConfig    `yaml:"weather"`
	Heuristics HeuristicsConfig `yaml:"heuristics"`
	Watch      WatchConfig      `yaml:"watch"`
}

// Load reads, validates and defaults the configuration. A missing file is
// not an error: the defaults describe a fully working service.
func Load(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// run on defaults
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.applyDefaults()

	if cfg.Heuristics.MorningEnd <= cfg.Heuristics.MorningStart {
		return nil, fmt.Errorf("invalid config: morning commute window is empty")
	}
	if cfg.Heuristics.EveningEnd <= cfg.Heuristics.EveningStart {
		return nil, fmt.Errorf("invalid config: evening commute window is empty")
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Feeds.TimeoutMS == 0 {
		c.Feeds.TimeoutMS = 5000
	}
	if c.Weather.Latitude == 0 && c.Weather.Longitude == 0 {
		// Puget Sound (Seattle waterfront)
		c.Weather.Latitude = 47.6062
		c.Weather.Longitude = -122.3321
	}
	h := &c.Heuristics
	if h.MorningStart == 0 && h.MorningEnd == 0 {
		h.MorningStart, h.MorningEnd = 6, 9
	}
	if h.EveningStart == 0 && h.EveningEnd == 0 {
		h.EveningStart, h.EveningEnd = 16, 19
	}
	if h.DepartureCount == 0 {
		h.DepartureCount = 4
	}
	if c.Watch.Route == "" {
		c.Watch.Route = "seattle-bainbridge"
	}
	if c.Watch.Direction == "" {
		c.Watch.Direction = "auto"
	}
	if c.Watch.IntervalMinutes == 0 {
		c.Watch.IntervalMinutes = 10
	}
}
