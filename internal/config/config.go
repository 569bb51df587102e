package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // station time zone without system zoneinfo

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"nexttrain/internal/stations"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Station StationConfig `yaml:"station"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Speech  SpeechConfig  `yaml:"speech"`
	Feeds   []FeedSource  `yaml:"feeds" validate:"dive"`
}

type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

type StationConfig struct {
	stations.StationInfo `yaml:",inline"`
	Timezone             string `yaml:"timezone" validate:"required"`
}

type FetchConfig struct {
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
	APIKey  string        `yaml:"api_key"`
}

type SpeechConfig struct {
	ArrivalsPerDirection int `yaml:"arrivals_per_direction" validate:"gte=1"`
}

// FeedSource is one GTFS-realtime endpoint.
type FeedSource struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	URL  string `yaml:"url" json:"url" validate:"required,url"`
}

// Default returns the built-in configuration for 86 St - Central Park West.
func Default() *Config {
	cfg := &Config{
		Server: ServerConfig{Port: 5050},
		Station: StationConfig{
			StationInfo: stations.StationInfo{
				StopID: "A24",
				Name:   "86 St - Central Park West",
				Lines:  []string{"A", "B", "C"},
			},
			Timezone: "America/New_York",
		},
		Fetch:  FetchConfig{Timeout: 10 * time.Second},
		Speech: SpeechConfig{ArrivalsPerDirection: 3},
	}
	cfg.Feeds = defaultFeeds(cfg.Station.Lines)
	return cfg
}

// Load reads a YAML file on top of Default, applies environment overrides
// and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	cfg.Feeds = nil
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if len(cfg.Feeds) == 0 {
		cfg.Feeds = defaultFeeds(cfg.Station.Lines)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize applies environment overrides and validates the configuration.
func (c *Config) Finalize() error {
	if err := c.applyEnv(); err != nil {
		return err
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if len(c.Feeds) == 0 {
		return fmt.Errorf("invalid config: no feeds serve routes %v", c.Station.Lines)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Location is the station's time zone, used for clock times.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Station.Timezone)
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("MTA_API_KEY"); v != "" {
		c.Fetch.APIKey = v
	}
	if v := os.Getenv("STATION_ID"); v != "" {
		c.Station.StopID = v
	}
	return nil
}

func defaultFeeds(lines []string) []FeedSource {
	var feeds []FeedSource
	for _, s := range stations.FeedSources(lines) {
		feeds = append(feeds, FeedSource{Name: s.Name, URL: s.URL})
	}
	return feeds
}
