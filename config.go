package main

import (
	"image/jpeg"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	OpenCommand     []string      `yaml:"open_command"`
	ViewMode        int           `yaml:"view_mode"`
	ThumbnailHeight int           `yaml:"thumbnail_height"`
	JPEGQuality     int           `yaml:"jpeg_quality"`
	CacheLimit      int           `yaml:"cache_limit"`
	Workers         int           `yaml:"workers"`
	SearchDelay     time.Duration `yaml:"search_delay"`
}

var configPath = []string{
	"./vdf_config.yaml",
	filepath.Join(os.Getenv("HOME"), ".vdf_config.yaml"),
}

func defaultConfig() *Config {
	return &Config{
		ViewMode:        ViewModeGrid,
		ThumbnailHeight: 90,
		JPEGQuality:     jpeg.DefaultQuality,
		CacheLimit:      256,
		Workers:         4,
		SearchDelay:     300 * time.Millisecond,
	}
}

func loadConfig() *Config {
	for _, path := range configPath {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		config, err := parseConfig(data)
		if err != nil {
			log.Println("Ignoring config", path+":", err)
			continue
		}

		log.Println("Loaded config from", path)
		return config
	}

	return defaultConfig()
}

func parseConfig(data []byte) (*Config, error) {
	config := Config{
		OpenCommand:     nil,
		ViewMode:        -255,
		ThumbnailHeight: -255,
		JPEGQuality:     -255,
		CacheLimit:      -255,
		Workers:         -255,
		SearchDelay:     -255,
	}
	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	config.fillDefaults()
	return &config, nil
}

func (c *Config) fillDefaults() {
	d := defaultConfig()

	if c.ViewMode != ViewModeList && c.ViewMode != ViewModeGrid {
		c.ViewMode = d.ViewMode
	}
	if c.ThumbnailHeight <= 0 {
		c.ThumbnailHeight = d.ThumbnailHeight
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = d.JPEGQuality
	}
	if c.CacheLimit <= 0 {
		c.CacheLimit = d.CacheLimit
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.SearchDelay < 0 {
		c.SearchDelay = d.SearchDelay
	}
}
