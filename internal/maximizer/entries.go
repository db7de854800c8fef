package maximizer

import "github.com/vk/beamgridgo/internal/grid"

// Entries lists every border entry of g pointing inward: for each column a
// beam entering the top row heading south and the bottom row heading north,
// then for each row a beam entering the left column heading east and the
// right column heading west. An R x C grid yields 2 x (R + C) entries.
func Entries(g *grid.Grid) []grid.BeamState {
	if g == nil {
		return nil
	}
	rows, cols := g.Dimensions()
	if rows == 0 || cols == 0 {
		return nil
	}

	out := make([]grid.BeamState, 0, 2*(rows+cols))
	for x := 0; x < cols; x++ {
		out = append(out,
			grid.BeamState{Pos: grid.Position{X: x, Y: 0}, Dir: grid.South},
			grid.BeamState{Pos: grid.Position{X: x, Y: rows - 1}, Dir: grid.North},
		)
	}
	for y := 0; y < rows; y++ {
		out = append(out,
			grid.BeamState{Pos: grid.Position{X: 0, Y: y}, Dir: grid.East},
			grid.BeamState{Pos: grid.Position{X: cols - 1, Y: y}, Dir: grid.West},
		)
	}
	return out
}
