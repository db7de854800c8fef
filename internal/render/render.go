// Package render draws grids and trace results for diagnostics: plain text
// maps for logs and tests, and a terminal view built on tcell.
package render

import (
	"strings"

	"github.com/vk/beamgridgo/internal/grid"
	"github.com/vk/beamgridgo/internal/session"
)

// Symbols used by EnergyMap.
const (
	EnergizedSymbol = '#'
	DarkSymbol      = '.'
)

// TerrainMap returns the element map of g, rows joined by "\n".
func TerrainMap(g *grid.Grid) string {
	return g.String()
}

// EnergyMap marks every cell energized in s with '#' and every other cell
// with '.', rows joined by "\n".
func EnergyMap(s *session.Session) string {
	g := s.Grid()
	rows, cols := g.Dimensions()

	var b strings.Builder
	b.Grow(rows * (cols + 1))
	for y := 0; y < rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			if s.IsEnergized(grid.Position{X: x, Y: y}) {
				b.WriteByte(EnergizedSymbol)
			} else {
				b.WriteByte(DarkSymbol)
			}
		}
	}
	return b.String()
}
