package bench

import (
	"reflect"
	"testing"

	"chanbench/internal/config"
	"chanbench/internal/executor"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Funnel = config.FunnelSweep{Producers: []int{2}, MessagesPerProducer: 25, Capacity: 4}
	cfg.Pinball = config.PinballSweep{Pairs: []int{1}, Rounds: 10, Capacity: 1}
	return cfg
}

func TestCatalog_CoversAllCombinations(t *testing.T) {
	entries := Catalog(config.Default())
	if len(entries) != 8 {
		t.Fatalf("expected 8 entries (2 groups x 4 channels), got %d", len(entries))
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
		if len(e.Bench) != len(executor.Names()) {
			t.Errorf("%s: expected one bench per executor, got %d", e.Name(), len(e.Bench))
		}
		for _, exName := range executor.Names() {
			if e.Bench[exName] == nil {
				t.Errorf("%s: missing executor %q", e.Name(), exName)
			}
		}
	}
	want := []string{
		"funnel-gochan", "funnel-condvar", "funnel-semaphore", "funnel-workiva",
		"pinball-gochan", "pinball-condvar", "pinball-semaphore", "pinball-workiva",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected entries %v, got %v", want, names)
	}
}

func TestCatalog_ParamLabels(t *testing.T) {
	for _, e := range Catalog(config.Default()) {
		want := "producers"
		if e.Group == "pinball" {
			want = "pairs"
		}
		if e.Param != want {
			t.Errorf("%s: expected param label %q, got %q", e.Name(), want, e.Param)
		}
	}
}

func TestCatalog_EntriesRun(t *testing.T) {
	for _, e := range Catalog(smallConfig()) {
		t.Run(e.Name(), func(t *testing.T) {
			count := 0
			for res := range e.Bench[executor.DefaultName](1) {
				count++
				if res.Label != e.Channel {
					t.Errorf("expected label %q, got %q", e.Channel, res.Label)
				}
				if len(res.Throughput) != 1 {
					t.Errorf("expected 1 sample, got %d", len(res.Throughput))
				}
			}
			if count != 1 {
				t.Errorf("expected 1 result for a single-value sweep, got %d", count)
			}
		})
	}
}
