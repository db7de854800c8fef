package config

import (
	"fmt"

	"github.com/vk/beamgridgo/internal/grid"
)

// Model is the unified representation of everything a run should evaluate.
type Model struct {
	Contraptions []*Contraption
}

// Contraption is one named grid together with the entries to trace on it.
type Contraption struct {
	Name string
	// GridPath locates the grid text, already resolved against the file
	// that declared the contraption.
	GridPath string
	// Source is the file the contraption was declared in, for diagnostics.
	Source string
	// Entries are traced one by one. Empty means the default entry.
	Entries []Entry
	// Best requests a search over all border entries.
	Best   bool
	Expect *Expectation
}

// Entry is a single (position, direction) seed for a trace.
type Entry struct {
	X         int
	Y         int
	Direction grid.Direction
}

// DefaultEntry is the top-left cell heading east.
var DefaultEntry = Entry{X: 0, Y: 0, Direction: grid.East}

// BeamState converts the entry to the tracer's state type.
func (e Entry) BeamState() grid.BeamState {
	return grid.BeamState{Pos: grid.Position{X: e.X, Y: e.Y}, Dir: e.Direction}
}

func (e Entry) String() string {
	return e.BeamState().String()
}

// Expectation holds known answers to check results against. Single applies
// to the first entry of the contraption.
type Expectation struct {
	Single *int
	Best   *int
}

// EntriesOrDefault returns the configured entries, or the default entry when
// none were given.
func (c *Contraption) EntriesOrDefault() []Entry {
	if len(c.Entries) == 0 {
		return []Entry{DefaultEntry}
	}
	return c.Entries
}

// Validate checks the parts of a contraption that do not need the grid.
func (c *Contraption) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("contraption has no name")
	}
	if c.GridPath == "" {
		return fmt.Errorf("contraption %q: grid path is required", c.Name)
	}
	for i, e := range c.Entries {
		if e.X < 0 || e.Y < 0 {
			return fmt.Errorf("contraption %q: entry %d has negative coordinates (%d,%d)", c.Name, i, e.X, e.Y)
		}
		if !e.Direction.Valid() {
			return fmt.Errorf("contraption %q: entry %d has an invalid direction", c.Name, i)
		}
	}
	if c.Expect != nil && c.Expect.Best != nil && !c.Best {
		return fmt.Errorf("contraption %q: expect.best is set but best entry search is disabled", c.Name)
	}
	return nil
}
