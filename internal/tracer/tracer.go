// Package tracer follows beams through a grid and counts the cells they
// energize.
//
// A trace is a reachability search over beam states (position, direction).
// Each state has one or two successors given by the redirection table, and
// the state space is bounded by 4 x rows x columns, so a search that never
// processes the same state twice always terminates.
package tracer

import (
	"github.com/vk/beamgridgo/internal/grid"
	"github.com/vk/beamgridgo/internal/optics"
	"github.com/vk/beamgridgo/internal/session"
)

// Trace explores every beam state reachable from start, recording them in s,
// and returns the number of energized positions in s afterwards.
//
// The frontier is an explicit LIFO stack rather than recursion, so long
// beam paths cannot exhaust the goroutine stack. The order in which the two
// branches of a split are explored is unspecified; the energized set is not.
func Trace(g *grid.Grid, start grid.BeamState, s *session.Session) int {
	frontier := make([]grid.BeamState, 0, 16)
	frontier = append(frontier, start)

	for len(frontier) > 0 {
		n := len(frontier) - 1
		cur := frontier[n]
		frontier = frontier[:n]

		if !g.InBounds(cur.Pos) {
			continue // beam left the grid
		}
		if !s.Visit(cur) {
			continue // already processed; its continuation is known
		}

		for _, out := range optics.Redirect(g.ElementAt(cur.Pos), cur.Dir) {
			frontier = append(frontier, cur.Next(out))
		}
	}

	return s.Energized()
}

// Energize traces a single entry in a fresh session and returns that session
// for inspection.
func Energize(g *grid.Grid, start grid.Position, dir grid.Direction) *session.Session {
	s := session.New(g)
	Trace(g, grid.BeamState{Pos: start, Dir: dir}, s)
	return s
}

// CountEnergized returns how many cells a beam entering at start heading dir
// energizes. The grid is not modified.
func CountEnergized(g *grid.Grid, start grid.Position, dir grid.Direction) int {
	return Energize(g, start, dir).Energized()
}
