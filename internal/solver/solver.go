// Package solver exposes the two text-in, number-out entry points: the
// energized count for one fixed entry, and the best count over all border
// entries.
package solver

import (
	"fmt"

	"github.com/vk/beamgridgo/internal/grid"
	"github.com/vk/beamgridgo/internal/maximizer"
	"github.com/vk/beamgridgo/internal/tracer"
)

type options struct {
	start grid.Position
	dir   grid.Direction
}

// Option customises SolveSingleEntry.
type Option func(*options)

// WithStart overrides the default entry of (0,0) heading east.
func WithStart(pos grid.Position, dir grid.Direction) Option {
	return func(o *options) {
		o.start = pos
		o.dir = dir
	}
}

// SolveSingleEntry parses gridText and returns the number of cells energized
// by one beam, by default entering at (0,0) heading east.
func SolveSingleEntry(gridText string, opts ...Option) (int, error) {
	o := options{start: grid.Position{X: 0, Y: 0}, dir: grid.East}
	for _, opt := range opts {
		opt(&o)
	}

	g, err := grid.Parse(gridText)
	if err != nil {
		return 0, err
	}
	if !g.InBounds(o.start) {
		return 0, fmt.Errorf("entry %s is outside the %dx%d grid", o.start, g.Rows(), g.Columns())
	}
	return tracer.CountEnergized(g, o.start, o.dir), nil
}

// SolveBestEntry parses gridText and returns the highest energized count
// over every border entry.
func SolveBestEntry(gridText string) (int, error) {
	g, err := grid.Parse(gridText)
	if err != nil {
		return 0, err
	}
	return maximizer.MaxEnergized(g), nil
}
