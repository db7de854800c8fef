// Package report collects the outcome of a run and writes it as text, JSON
// or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Format selects a report writer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be 'text', 'json' or 'yaml'", s)
	}
}

// Status is the verdict on a result against its expectations.
type Status string

const (
	// StatusSuccess means every expectation matched.
	StatusSuccess Status = "success"
	// StatusFailed means at least one expectation did not match.
	StatusFailed Status = "failed"
	// StatusUnknown means there was nothing to check against.
	StatusUnknown Status = "unknown"
)

// EntryResult is the energized count of one traced entry.
type EntryResult struct {
	X         int    `json:"x" yaml:"x"`
	Y         int    `json:"y" yaml:"y"`
	Direction string `json:"direction" yaml:"direction"`
	Energized int    `json:"energized" yaml:"energized"`
	Expected  *int   `json:"expected,omitempty" yaml:"expected,omitempty"`
	Cached    bool   `json:"cached,omitempty" yaml:"cached,omitempty"`
	EnergyMap string `json:"energy_map,omitempty" yaml:"energy_map,omitempty"`
}

// BestResult is the outcome of the border search.
type BestResult struct {
	X          int    `json:"x" yaml:"x"`
	Y          int    `json:"y" yaml:"y"`
	Direction  string `json:"direction" yaml:"direction"`
	Energized  int    `json:"energized" yaml:"energized"`
	Candidates int    `json:"candidates" yaml:"candidates"`
	Expected   *int   `json:"expected,omitempty" yaml:"expected,omitempty"`
	Cached     bool   `json:"cached,omitempty" yaml:"cached,omitempty"`
}

// Result is everything computed for one contraption.
type Result struct {
	Contraption string        `json:"contraption" yaml:"contraption"`
	GridPath    string        `json:"grid_path" yaml:"grid_path"`
	Rows        int           `json:"rows" yaml:"rows"`
	Columns     int           `json:"columns" yaml:"columns"`
	Entries     []EntryResult `json:"entries" yaml:"entries"`
	Best        *BestResult   `json:"best,omitempty" yaml:"best,omitempty"`
	Status      Status        `json:"status" yaml:"status"`
	ElapsedMS   float64       `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// Evaluate sets r.Status from the expectations recorded on its entries and
// best result.
func (r *Result) Evaluate() {
	checked, failed := 0, false
	for _, e := range r.Entries {
		if e.Expected != nil {
			checked++
			failed = failed || *e.Expected != e.Energized
		}
	}
	if r.Best != nil && r.Best.Expected != nil {
		checked++
		failed = failed || *r.Best.Expected != r.Best.Energized
	}

	switch {
	case failed:
		r.Status = StatusFailed
	case checked > 0:
		r.Status = StatusSuccess
	default:
		r.Status = StatusUnknown
	}
}

// SetElapsed records how long the contraption took.
func (r *Result) SetElapsed(d time.Duration) {
	r.ElapsedMS = float64(d.Microseconds()) / 1000
}

// Report is the outcome of a whole run.
type Report struct {
	RunID     string   `json:"run_id" yaml:"run_id"`
	Results   []Result `json:"results" yaml:"results"`
	Status    Status   `json:"status" yaml:"status"`
	ElapsedMS float64  `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// Add appends a result and folds its status into the report status.
func (rep *Report) Add(r Result) {
	rep.Results = append(rep.Results, r)
	switch {
	case r.Status == StatusFailed:
		rep.Status = StatusFailed
	case r.Status == StatusSuccess && rep.Status != StatusFailed:
		rep.Status = StatusSuccess
	case rep.Status == "":
		rep.Status = StatusUnknown
	}
}

// Failed reports whether any result failed its expectations.
func (rep *Report) Failed() bool {
	return rep.Status == StatusFailed
}

// Write renders the report in the given format.
func (rep *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return writeText(w, rep)
	default:
		return fmt.Errorf("unsupported report format %q", f)
	}
}
