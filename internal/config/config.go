// Package config handles YAML configuration parsing and the built-in
// defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Samples   int          `yaml:"samples"`
	Warmup    int          `yaml:"warmup"`
	Executor  string       `yaml:"executor"`
	Output    string       `yaml:"output"`
	JSONOut   string       `yaml:"json_output"`
	Baseline  string       `yaml:"baseline"`
	Threshold float64      `yaml:"threshold"`
	Quiet     bool         `yaml:"quiet"`
	Filters   []string     `yaml:"filters"`
	Funnel    FunnelSweep  `yaml:"funnel"`
	Pinball   PinballSweep `yaml:"pinball"`
}

// FunnelSweep parameterizes the many-producers benchmark.
type FunnelSweep struct {
	Producers           []int `yaml:"producers"`
	MessagesPerProducer int   `yaml:"messages_per_producer"`
	Capacity            int   `yaml:"capacity"`
}

// PinballSweep parameterizes the ping-pong benchmark.
type PinballSweep struct {
	Pairs    []int `yaml:"pairs"`
	Rounds   int   `yaml:"rounds"`
	Capacity int   `yaml:"capacity"`
}

// Default returns the built-in configuration: one sample, no warmup, and
// power-of-two sweeps sized so a full run finishes in minutes.
func Default() *Config {
	return &Config{
		Samples:   1,
		Threshold: 0.10,
		Funnel: FunnelSweep{
			Producers:           []int{1, 2, 4, 8, 16, 32, 64, 128, 256},
			MessagesPerProducer: 10000,
			Capacity:            256,
		},
		Pinball: PinballSweep{
			Pairs:    []int{1, 2, 4, 8, 16, 32, 64, 128, 256},
			Rounds:   1000,
			Capacity: 1,
		},
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks for values the harness cannot run with.
func (c *Config) Validate() error {
	if c.Samples < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", c.Samples)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("warmup must not be negative, got %d", c.Warmup)
	}
	if c.Threshold <= 0 || c.Threshold >= 1 {
		return fmt.Errorf("threshold must be between 0 and 1, got %g", c.Threshold)
	}
	if len(c.Funnel.Producers) == 0 {
		return fmt.Errorf("funnel: producers sweep must not be empty")
	}
	for _, p := range c.Funnel.Producers {
		if p < 1 {
			return fmt.Errorf("funnel: producer count must be positive, got %d", p)
		}
	}
	if c.Funnel.MessagesPerProducer < 1 {
		return fmt.Errorf("funnel: messages_per_producer must be positive, got %d", c.Funnel.MessagesPerProducer)
	}
	if c.Funnel.Capacity < 1 {
		return fmt.Errorf("funnel: capacity must be positive, got %d", c.Funnel.Capacity)
	}
	if len(c.Pinball.Pairs) == 0 {
		return fmt.Errorf("pinball: pairs sweep must not be empty")
	}
	for _, p := range c.Pinball.Pairs {
		if p < 1 {
			return fmt.Errorf("pinball: pair count must be positive, got %d", p)
		}
	}
	if c.Pinball.Rounds < 1 {
		return fmt.Errorf("pinball: rounds must be positive, got %d", c.Pinball.Rounds)
	}
	if c.Pinball.Capacity < 1 {
		return fmt.Errorf("pinball: capacity must be positive, got %d", c.Pinball.Capacity)
	}
	return nil
}
