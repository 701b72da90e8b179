package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	content := `
samples: 5
warmup: 2
executor: ants
quiet: true
filters:
  - funnel
funnel:
  producers: [2, 4]
  messages_per_producer: 500
pinball:
  rounds: 100
`
	cfg := loadConfigFromString(t, content)

	if cfg.Samples != 5 {
		t.Errorf("expected 5 samples, got %d", cfg.Samples)
	}
	if cfg.Warmup != 2 {
		t.Errorf("expected warmup 2, got %d", cfg.Warmup)
	}
	if cfg.Executor != "ants" {
		t.Errorf("expected executor 'ants', got %q", cfg.Executor)
	}
	if !cfg.Quiet {
		t.Error("expected quiet to be set")
	}
	if !reflect.DeepEqual(cfg.Filters, []string{"funnel"}) {
		t.Errorf("expected filters [funnel], got %v", cfg.Filters)
	}
	if !reflect.DeepEqual(cfg.Funnel.Producers, []int{2, 4}) {
		t.Errorf("expected producers [2 4], got %v", cfg.Funnel.Producers)
	}
	if cfg.Funnel.MessagesPerProducer != 500 {
		t.Errorf("expected 500 messages per producer, got %d", cfg.Funnel.MessagesPerProducer)
	}
	if cfg.Pinball.Rounds != 100 {
		t.Errorf("expected 100 rounds, got %d", cfg.Pinball.Rounds)
	}
}

func TestLoad_KeepsDefaultsForAbsentFields(t *testing.T) {
	cfg := loadConfigFromString(t, "funnel:\n  producers: [8]\n")

	if cfg.Funnel.Capacity != 256 {
		t.Errorf("expected default capacity 256, got %d", cfg.Funnel.Capacity)
	}
	if cfg.Funnel.MessagesPerProducer != 10000 {
		t.Errorf("expected default message quota 10000, got %d", cfg.Funnel.MessagesPerProducer)
	}
	if cfg.Samples != 1 {
		t.Errorf("expected default samples 1, got %d", cfg.Samples)
	}
	if !reflect.DeepEqual(cfg.Pinball.Pairs, Default().Pinball.Pairs) {
		t.Errorf("expected default pairs sweep, got %v", cfg.Pinball.Pairs)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load("/nonexistent/path/bench.yaml"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempConfig(t, "samples: [not a number\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := writeTempConfig(t, "samples: 0\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "samples") {
		t.Errorf("error %q does not name the samples field", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero samples", func(c *Config) { c.Samples = 0 }},
		{"negative warmup", func(c *Config) { c.Warmup = -1 }},
		{"zero threshold", func(c *Config) { c.Threshold = 0 }},
		{"threshold of one", func(c *Config) { c.Threshold = 1 }},
		{"empty producers", func(c *Config) { c.Funnel.Producers = nil }},
		{"zero producer count", func(c *Config) { c.Funnel.Producers = []int{4, 0} }},
		{"zero message quota", func(c *Config) { c.Funnel.MessagesPerProducer = 0 }},
		{"zero funnel capacity", func(c *Config) { c.Funnel.Capacity = 0 }},
		{"empty pairs", func(c *Config) { c.Pinball.Pairs = nil }},
		{"zero pair count", func(c *Config) { c.Pinball.Pairs = []int{0} }},
		{"zero rounds", func(c *Config) { c.Pinball.Rounds = 0 }},
		{"zero pinball capacity", func(c *Config) { c.Pinball.Capacity = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

// Helper functions

func loadConfigFromString(t *testing.T, content string) *Config {
	t.Helper()
	cfg, err := Load(writeTempConfig(t, content))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}
