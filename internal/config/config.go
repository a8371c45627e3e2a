// Package config loads the visualizer configuration from an optional
// YAML file, binding it the same way node frontmatter is bound: parse
// into a generic map, then decode with mapstructure over defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"sortvis/pkg/driver"
)

// Config is the full application configuration.
type Config struct {
	Algorithm string         `mapstructure:"algorithm"`
	Array     ArrayConfig    `mapstructure:"array"`
	Playback  PlaybackConfig `mapstructure:"playback"`
	Server    ServerConfig   `mapstructure:"server"`
	Redis     RedisConfig    `mapstructure:"redis"`
}

// ArrayConfig controls random input generation.
type ArrayConfig struct {
	Length int `mapstructure:"length"`
	Min    int `mapstructure:"min"`
	Max    int `mapstructure:"max"`
}

// PlaybackConfig holds the two autoplay interval constants.
type PlaybackConfig struct {
	Slow time.Duration `mapstructure:"slow"`
	Fast time.Duration `mapstructure:"fast"`
}

// ServerConfig controls the HTTP adapter.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// RedisConfig enables the Redis run store when Address is set.
type RedisConfig struct {
	Address  string        `mapstructure:"address"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Default returns the stock configuration.
func Default() Config {
	d := driver.DefaultConfig()
	return Config{
		Array: ArrayConfig{
			Length: d.Length,
			Min:    d.MinValue,
			Max:    d.MaxValue,
		},
		Playback: PlaybackConfig{
			Slow: d.SlowInterval,
			Fast: d.FastInterval,
		},
		Server: ServerConfig{
			Port: 8080,
		},
	}
}

// Load reads the config file at path on top of the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &cfg,
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return cfg, err
	}
	if err := dec.Decode(doc); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the driver would refuse.
func (c Config) Validate() error {
	if c.Array.Length <= 0 {
		return fmt.Errorf("%w: %d", driver.ErrInvalidArrayLength, c.Array.Length)
	}
	return nil
}

// Driver maps the configuration onto the driver's config.
func (c Config) Driver() driver.Config {
	return driver.Config{
		Length:       c.Array.Length,
		MinValue:     c.Array.Min,
		MaxValue:     c.Array.Max,
		SlowInterval: c.Playback.Slow,
		FastInterval: c.Playback.Fast,
	}
}
