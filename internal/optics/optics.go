// Package optics holds the redirection table: how each element turns an
// incoming beam into one or two outgoing beams.
package optics

import (
	"fmt"

	"github.com/vk/beamgridgo/internal/grid"
)

// Shared result rows. Callers must treat returned slices as read-only.
var (
	toNorth      = []grid.Direction{grid.North}
	toEast       = []grid.Direction{grid.East}
	toSouth      = []grid.Direction{grid.South}
	toWest       = []grid.Direction{grid.West}
	toNorthSouth = []grid.Direction{grid.North, grid.South}
	toEastWest   = []grid.Direction{grid.East, grid.West}
)

// table[element][incoming] lists the outgoing directions.
var table = [grid.ElementCount][grid.DirectionCount][]grid.Direction{
	grid.EmptySpace:         {toNorth, toEast, toSouth, toWest},
	grid.ForwardMirror:      {toEast, toNorth, toWest, toSouth},
	grid.BackwardMirror:     {toWest, toSouth, toEast, toNorth},
	grid.VerticalSplitter:   {toNorth, toNorthSouth, toSouth, toNorthSouth},
	grid.HorizontalSplitter: {toEastWest, toEast, toEastWest, toWest},
}

// Redirect returns the directions a beam leaves e in when it arrives
// travelling in. The result has one or two entries and its order carries no
// meaning. The returned slice is shared and must not be modified.
func Redirect(e grid.Element, in grid.Direction) []grid.Direction {
	if e >= grid.ElementCount || !in.Valid() {
		panic(fmt.Sprintf("optics: no redirection for %s heading %s", e, in))
	}
	return table[e][in]
}
