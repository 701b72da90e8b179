package report

import (
	"fmt"
	"io"
	"strings"
)

// Table accumulates per-parameter means for one benchmark group and writes
// the plain-text block consumed by the plotting script: a header naming
// the group and executor, a column-header row, and one whitespace-aligned
// row per parameter value. Channels become columns in first-Add order.
type Table struct {
	group    string
	executor string
	param    string
	params   []string
	channels []string
	columns  map[string][]float64
}

func NewTable(group, executor, param string) *Table {
	return &Table{
		group:    group,
		executor: executor,
		param:    param,
		columns:  make(map[string][]float64),
	}
}

// Add records the mean for one channel and parameter value. The first
// channel added defines the parameter rows; every later channel must add
// the same parameter values in the same order, or the sweep configuration
// is corrupted and Add panics.
func (t *Table) Add(channel, parameter string, mean float64) {
	col, ok := t.columns[channel]
	if !ok {
		t.channels = append(t.channels, channel)
	}
	row := len(col)
	if len(t.channels) == 1 {
		t.params = append(t.params, parameter)
	} else if row >= len(t.params) || t.params[row] != parameter {
		panic(fmt.Sprintf("report: channel %q parameter %q does not align with row %d", channel, parameter, row))
	}
	t.columns[channel] = append(col, mean)
}

// WriteTo writes the formatted block followed by a separating blank line.
// It panics if any column is missing rows, which means a sweep was cut
// short and the table would silently misalign.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	for _, name := range t.channels {
		if len(t.columns[name]) != len(t.params) {
			panic(fmt.Sprintf("report: column %q has %d rows, expected %d", name, len(t.columns[name]), len(t.params)))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# '%s' benchmark with %s runtime\n", t.group, t.executor)
	fmt.Fprintf(&b, "#%15s", t.param)
	for _, name := range t.channels {
		fmt.Fprintf(&b, " %15s", name)
	}
	b.WriteByte('\n')
	for i, p := range t.params {
		fmt.Fprintf(&b, " %15s", p)
		for _, name := range t.channels {
			fmt.Fprintf(&b, " %15.0f", t.columns[name][i])
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
