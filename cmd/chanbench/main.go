// Command chanbench measures the throughput of bounded channel
// implementations under contention, across several task runtimes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"chanbench/internal/bench"
	"chanbench/internal/config"
	"chanbench/internal/executor"
	"chanbench/internal/progress"
	"chanbench/internal/report"
)

const (
	ExitSuccess    = 0
	ExitRegression = 1
	ExitError      = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	defaults := config.Default()

	fs := flag.NewFlagSet("chanbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file")
	samples := fs.Int("samples", defaults.Samples, "measured samples per parameter value")
	warmup := fs.Int("warmup", defaults.Warmup, "unmeasured warmup runs per parameter value")
	execName := fs.String("exec", executor.DefaultName, "task runtime to schedule benchmark workers on")
	output := fs.String("output", "", "write plain-text result tables to this file")
	jsonOut := fs.String("json", "", "write a JSON report to this file")
	baselinePath := fs.String("baseline", "", "compare against a previously saved JSON report")
	threshold := fs.Float64("threshold", defaults.Threshold, "fractional slowdown that counts as a regression")
	list := fs.Bool("list", false, "list benchmark names and exit")
	quiet := fs.Bool("quiet", false, "suppress progress output")
	verbose := fs.Bool("verbose", false, "print every sample, not just the mean")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: chanbench [flags] [filter ...]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Runs every benchmark whose name contains one of the filter substrings.")
		fmt.Fprintln(stderr, "With no filters, runs everything.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return ExitError
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return ExitError
		}
		cfg = loaded
	}

	// CLI flags override config file values.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "samples":
			cfg.Samples = *samples
		case "warmup":
			cfg.Warmup = *warmup
		case "exec":
			cfg.Executor = *execName
		case "output":
			cfg.Output = *output
		case "json":
			cfg.JSONOut = *jsonOut
		case "baseline":
			cfg.Baseline = *baselinePath
		case "threshold":
			cfg.Threshold = *threshold
		case "quiet":
			cfg.Quiet = *quiet
		}
	})
	if fs.NArg() > 0 {
		cfg.Filters = fs.Args()
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}
	if cfg.Executor == "" {
		cfg.Executor = executor.DefaultName
	}
	if _, ok := executor.Registry()[cfg.Executor]; !ok {
		fmt.Fprintf(stderr, "error: unknown executor %q (available: %s)\n",
			cfg.Executor, strings.Join(executor.Names(), ", "))
		return ExitError
	}

	entries := bench.Catalog(cfg)
	if *list {
		for _, e := range entries {
			fmt.Fprintln(stdout, e.Name())
		}
		return ExitSuccess
	}

	selected := selectEntries(entries, cfg.Filters)
	if len(selected) == 0 {
		fmt.Fprintln(stdout, "No matching benchmarks.")
		return ExitSuccess
	}

	var outFile *os.File
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return ExitError
		}
		defer f.Close()
		outFile = f
	}

	var baseline *report.Baseline
	if cfg.Baseline != "" {
		b, err := report.LoadBaseline(cfg.Baseline)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return ExitError
		}
		baseline = b
	}

	prog := progress.New(stderr, cfg.Quiet)
	rep := report.NewReport(cfg.Executor, cfg.Samples)
	var tables []*report.Table

	group := ""
	var table *report.Table
	for _, e := range selected {
		if e.Group != group {
			group = e.Group
			prog.Printf("Running '%s' benchmarks with the %s runtime", group, cfg.Executor)
			if cfg.Samples > 1 {
				prog.Printf("Averaging throughput over %d samples per parameter value", cfg.Samples)
			}
			table = report.NewTable(e.Group, cfg.Executor, e.Param)
			tables = append(tables, table)
		}

		fmt.Fprintf(stdout, "%s:\n", e.Name())
		for res := range e.Bench[cfg.Executor](cfg.Samples) {
			s := report.Summarize(res.Throughput)
			if cfg.Samples > 1 {
				fmt.Fprintf(stdout, "    %s=%-7s %10.3f msg/µs  [±%.3f]\n",
					e.Param, res.Parameter, s.Mean/1e6, s.StdDev/1e6)
			} else {
				fmt.Fprintf(stdout, "    %s=%-7s %10.3f msg/µs\n",
					e.Param, res.Parameter, s.Mean/1e6)
			}
			if *verbose {
				for i, v := range res.Throughput {
					fmt.Fprintf(stdout, "        sample %d: %.3f msg/µs\n", i+1, v/1e6)
				}
			}
			table.Add(res.Label, res.Parameter, s.Mean)
			rep.Add(e.Group, res, s)
			prog.Update("%s: %s=%s done", e.Name(), e.Param, res.Parameter)
		}
		fmt.Fprintln(stdout)
	}
	prog.Clear()

	if outFile != nil {
		for _, tb := range tables {
			if _, err := tb.WriteTo(outFile); err != nil {
				fmt.Fprintf(stderr, "error: writing %s: %v\n", cfg.Output, err)
				return ExitError
			}
		}
		if err := outFile.Close(); err != nil {
			fmt.Fprintf(stderr, "error: closing %s: %v\n", cfg.Output, err)
			return ExitError
		}
		prog.Printf("Wrote %s", cfg.Output)
	}
	if cfg.JSONOut != "" {
		if err := rep.Save(cfg.JSONOut); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return ExitError
		}
		prog.Printf("Wrote %s", cfg.JSONOut)
	}

	if baseline != nil {
		deltas := baseline.Compare(rep, cfg.Threshold)
		fmt.Fprintln(stdout)
		report.RenderDeltas(stdout, deltas)
		if report.HasRegressions(deltas) {
			return ExitRegression
		}
	}
	return ExitSuccess
}

// selectEntries keeps the entries whose name contains any of the filter
// substrings. With no filters, everything is selected.
func selectEntries(entries []bench.Entry, filters []string) []bench.Entry {
	if len(filters) == 0 {
		return entries
	}
	var selected []bench.Entry
	for _, e := range entries {
		for _, f := range filters {
			if strings.Contains(e.Name(), f) {
				selected = append(selected, e)
				break
			}
		}
	}
	return selected
}
