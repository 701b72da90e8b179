package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/tidwall/gjson"
)

// Baseline is a previously saved report, queried with path expressions so
// older files stay readable even if the report schema grows new fields.
type Baseline struct {
	raw []byte
}

// LoadBaseline reads and validates a prior JSON report.
func LoadBaseline(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading baseline: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("baseline %s is not valid JSON", path)
	}
	return &Baseline{raw: data}, nil
}

// Mean looks up the stored mean for one group, channel, and parameter.
func (b *Baseline) Mean(group, channel, parameter string) (float64, bool) {
	path := fmt.Sprintf(`groups.%s.%s.#(parameter=="%s").mean`, group, channel, parameter)
	res := gjson.GetBytes(b.raw, path)
	if !res.Exists() {
		return 0, false
	}
	return res.Float(), true
}

// Delta is one baseline-to-current comparison cell.
type Delta struct {
	Group      string
	Channel    string
	Parameter  string
	Baseline   float64 // zero when the baseline has no matching cell
	Current    float64
	Change     float64 // fractional change, negative is slower
	Regression bool
}

// Compare pairs every cell of the current report with the baseline.
// A cell regresses when its mean falls below the baseline mean by more
// than threshold. Cells absent from the baseline are new, not regressions.
func (b *Baseline) Compare(r *Report, threshold float64) []Delta {
	groups := make([]string, 0, len(r.Groups))
	for g := range r.Groups {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	var deltas []Delta
	for _, g := range groups {
		channels := make([]string, 0, len(r.Groups[g]))
		for c := range r.Groups[g] {
			channels = append(channels, c)
		}
		sort.Strings(channels)
		for _, c := range channels {
			for _, e := range r.Groups[g][c] {
				d := Delta{Group: g, Channel: c, Parameter: e.Parameter, Current: e.Mean}
				if base, ok := b.Mean(g, c, e.Parameter); ok {
					d.Baseline = base
					if base > 0 {
						d.Change = (e.Mean - base) / base
					}
					d.Regression = e.Mean < base*(1-threshold)
				}
				deltas = append(deltas, d)
			}
		}
	}
	return deltas
}

// HasRegressions reports whether any delta crossed the threshold.
func HasRegressions(deltas []Delta) bool {
	for _, d := range deltas {
		if d.Regression {
			return true
		}
	}
	return false
}

// RenderDeltas writes the human-readable comparison, one group per
// section.
func RenderDeltas(w io.Writer, deltas []Delta) {
	group := ""
	for _, d := range deltas {
		if d.Group != group {
			group = d.Group
			fmt.Fprintf(w, "%s:\n", group)
		}
		if d.Baseline == 0 {
			fmt.Fprintf(w, "  %-12s %-8s new %25.3f msg/µs\n", d.Channel, d.Parameter, d.Current/1e6)
			continue
		}
		line := fmt.Sprintf("  %-12s %-8s %10.3f -> %10.3f msg/µs  (%+.1f%%)",
			d.Channel, d.Parameter, d.Baseline/1e6, d.Current/1e6, d.Change*100)
		if d.Regression {
			line += "  REGRESSION"
		}
		fmt.Fprintln(w, line)
	}
}
