package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vk/beamgridgo/internal/grid"
	"github.com/vk/beamgridgo/internal/session"
)

// Cell styles for the terminal view.
var (
	StyleDark      = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	StyleEnergized = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleStatus    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Draw paints the terrain of the traced grid onto screen, energized cells
// highlighted, followed by a one-line status under the grid. It does not
// call Show.
func Draw(screen tcell.Screen, title string, s *session.Session) {
	g := s.Grid()
	rows, cols := g.Dimensions()

	screen.Clear()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := grid.Position{X: x, Y: y}
			style := StyleDark
			if s.IsEnergized(p) {
				style = StyleEnergized
			}
			screen.SetContent(x, y, g.ElementAt(p).Symbol(), nil, style)
		}
	}

	status := fmt.Sprintf("%s: %d energized, %d beam states (press any key)", title, s.Energized(), s.ProcessedStates())
	for i, r := range status {
		screen.SetContent(i, rows+1, r, nil, StyleStatus)
	}
}

// View opens the terminal, draws the trace and blocks until a key is pressed.
func View(title string, s *session.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal screen: %w", err)
	}
	defer screen.Fini()

	Draw(screen, title, s)
	screen.Show()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
