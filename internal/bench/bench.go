// Package bench implements the benchmark topologies and the registration
// table binding them to channel implementations and executors.
package bench

import (
	"iter"

	"chanbench/internal/channel"
	"chanbench/internal/config"
	"chanbench/internal/executor"
)

// Result is one measurement: the throughput samples collected for a single
// parameter value of a single benchmark.
type Result struct {
	Label      string    // channel implementation name
	Parameter  string    // independent-variable value, e.g. producer count
	Throughput []float64 // msg/s, one sample per repetition, never empty
}

// Func runs one benchmark as a lazy sweep yielding one Result per
// parameter value. Every call starts a fresh sweep with fresh channel and
// executor instances; nothing is shared between calls, and breaking out of
// the sequence early stops the remaining sweep.
type Func func(samples int) iter.Seq[Result]

// Entry is one selectable benchmark: a topology bound to a channel
// implementation, with one Func per registered executor.
type Entry struct {
	Group   string
	Channel string
	Param   string // sweep-variable label, e.g. "producers"
	Bench   map[string]Func
}

// Name returns the selectable benchmark name, e.g. "funnel-gochan".
func (e Entry) Name() string { return e.Group + "-" + e.Channel }

// Catalog returns the full registration table: every topology and channel
// combination, each bound to every registered executor.
func Catalog(cfg *config.Config) []Entry {
	channels := []struct {
		name string
		make channel.Factory[int]
	}{
		{"gochan", channel.Native[int]},
		{"condvar", channel.Cond[int]},
		{"semaphore", channel.Sema[int]},
		{"workiva", channel.Workiva[int]},
	}

	entries := make([]Entry, 0, 2*len(channels))
	for _, ch := range channels {
		benches := make(map[string]Func)
		for name, factory := range executor.Registry() {
			benches[name] = Funnel(ch.name, ch.make, factory, cfg.Funnel, cfg.Warmup)
		}
		entries = append(entries, Entry{
			Group:   "funnel",
			Channel: ch.name,
			Param:   "producers",
			Bench:   benches,
		})
	}
	for _, ch := range channels {
		benches := make(map[string]Func)
		for name, factory := range executor.Registry() {
			benches[name] = Pinball(ch.name, ch.make, factory, cfg.Pinball, cfg.Warmup)
		}
		entries = append(entries, Entry{
			Group:   "pinball",
			Channel: ch.name,
			Param:   "pairs",
			Bench:   benches,
		})
	}
	return entries
}
