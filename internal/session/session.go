package session

import (
	"github.com/vk/beamgridgo/internal/grid"
)

// Session is the visited-state and visited-position bookkeeping of one trace.
type Session struct {
	grid *grid.Grid

	// seen holds one bit per direction for every cell, indexed like the grid.
	// A cell is energized when any bit is set.
	seen      []uint8
	energized int
	processed int
}

// New creates an empty session sized for g.
func New(g *grid.Grid) *Session {
	return &Session{
		grid: g,
		seen: make([]uint8, g.Size()),
	}
}

// Visit marks s as processed and its position as energized. It returns false
// when s had already been processed in this session, in which case nothing
// changes. s.Pos must be inside the grid.
func (sess *Session) Visit(s grid.BeamState) bool {
	idx := sess.grid.Index(s.Pos)
	bit := uint8(1) << s.Dir
	mask := sess.seen[idx]
	if mask&bit != 0 {
		return false
	}
	if mask == 0 {
		sess.energized++
	}
	sess.seen[idx] = mask | bit
	sess.processed++
	return true
}

// Processed reports whether s has been processed. Out-of-grid states never are.
func (sess *Session) Processed(s grid.BeamState) bool {
	if !sess.grid.InBounds(s.Pos) {
		return false
	}
	return sess.seen[sess.grid.Index(s.Pos)]&(1<<s.Dir) != 0
}

// IsEnergized reports whether any beam has touched p.
func (sess *Session) IsEnergized(p grid.Position) bool {
	if !sess.grid.InBounds(p) {
		return false
	}
	return sess.seen[sess.grid.Index(p)] != 0
}

// Energized returns the number of distinct energized positions.
func (sess *Session) Energized() int {
	return sess.energized
}

// ProcessedStates returns the number of distinct beam states processed.
func (sess *Session) ProcessedStates() int {
	return sess.processed
}

// EnergizedPositions lists the energized positions in row-major order.
func (sess *Session) EnergizedPositions() []grid.Position {
	out := make([]grid.Position, 0, sess.energized)
	cols := sess.grid.Columns()
	for i, mask := range sess.seen {
		if mask != 0 {
			out = append(out, grid.Position{X: i % cols, Y: i / cols})
		}
	}
	return out
}

// Grid returns the grid this session traces.
func (sess *Session) Grid() *grid.Grid {
	return sess.grid
}
