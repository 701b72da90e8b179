package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"

	"chanbench/internal/bench"
)

// Report is the machine-readable run record and the input format for later
// baseline comparisons.
type Report struct {
	RunID     string                        `json:"run_id"`
	CreatedAt time.Time                     `json:"created_at"`
	GoVersion string                        `json:"go_version"`
	Executor  string                        `json:"executor"`
	Samples   int                           `json:"samples"`
	Groups    map[string]map[string][]Entry `json:"groups"`
}

// Entry is one measured parameter value for one channel implementation.
type Entry struct {
	Parameter  string    `json:"parameter"`
	Mean       float64   `json:"mean"`
	StdDev     float64   `json:"stddev"`
	Throughput []float64 `json:"throughput"`
}

func NewReport(executor string, samples int) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		GoVersion: runtime.Version(),
		Executor:  executor,
		Samples:   samples,
		Groups:    make(map[string]map[string][]Entry),
	}
}

// Add records one benchmark result under its group and channel label.
func (r *Report) Add(group string, res bench.Result, s Summary) {
	byChannel, ok := r.Groups[group]
	if !ok {
		byChannel = make(map[string][]Entry)
		r.Groups[group] = byChannel
	}
	byChannel[res.Label] = append(byChannel[res.Label], Entry{
		Parameter:  res.Parameter,
		Mean:       s.Mean,
		StdDev:     s.StdDev,
		Throughput: res.Throughput,
	})
}

// Save writes the report as indented JSON, creating parent directories as
// needed.
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
