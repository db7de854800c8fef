package maximizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/beamgridgo/internal/grid"
	"github.com/vk/beamgridgo/internal/testutil"
	"github.com/vk/beamgridgo/internal/tracer"
)

func mustParse(t *testing.T, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)
	return g
}

func TestEntries(t *testing.T) {
	t.Run("count is twice the perimeter sides", func(t *testing.T) {
		testCases := []struct {
			text       string
			rows, cols int
		}{
			{".", 1, 1},
			{"...", 1, 3},
			{".\n.\n.\n.", 4, 1},
			{testutil.ExampleGrid, 10, 10},
		}
		for _, tc := range testCases {
			g := mustParse(t, tc.text)
			assert.Len(t, Entries(g), 2*(tc.rows+tc.cols))
		}
	})

	t.Run("entries sit on the border and point inward", func(t *testing.T) {
		g := mustParse(t, "....\n....\n....\n")
		rows, cols := g.Dimensions()
		for _, e := range Entries(g) {
			require.True(t, g.InBounds(e.Pos), e.String())
			switch e.Dir {
			case grid.South:
				assert.Equal(t, 0, e.Pos.Y)
			case grid.North:
				assert.Equal(t, rows-1, e.Pos.Y)
			case grid.East:
				assert.Equal(t, 0, e.Pos.X)
			case grid.West:
				assert.Equal(t, cols-1, e.Pos.X)
			}
		}
	})

	t.Run("right column heads west", func(t *testing.T) {
		g := mustParse(t, "...\n...\n")
		assert.Contains(t, Entries(g), grid.BeamState{Pos: grid.Position{X: 2, Y: 1}, Dir: grid.West})
	})

	t.Run("nil grid", func(t *testing.T) {
		assert.Empty(t, Entries(nil))
		assert.Equal(t, 0, MaxEnergized(nil))
	})
}

func TestMaxEnergized_Example(t *testing.T) {
	g := mustParse(t, testutil.ExampleGrid)
	assert.Equal(t, testutil.ExampleBestEntry, MaxEnergized(g))
}

func TestMaxEnergized_DominatesEveryCandidate(t *testing.T) {
	g := mustParse(t, testutil.ExampleGrid)
	best := MaxEnergized(g)
	for _, e := range Entries(g) {
		assert.LessOrEqual(t, tracer.CountEnergized(g, e.Pos, e.Dir), best, e.String())
	}
}

func TestMaximizer_Run(t *testing.T) {
	g := mustParse(t, testutil.ExampleGrid)

	for _, workers := range []int{0, 1, 3, 64} {
		res, err := New(workers).Run(context.Background(), g)
		require.NoError(t, err)
		assert.Equal(t, testutil.ExampleBestEntry, res.Energized, "workers=%d", workers)
		assert.Equal(t, 40, res.Candidates)
		assert.Equal(t, res.Energized, tracer.CountEnergized(g, res.Best.Pos, res.Best.Dir))
	}
}

func TestMaximizer_Run_DeterministicTieBreak(t *testing.T) {
	// Every entry of an empty grid energizes one full row or column; on a
	// square grid they all tie, so the first listed entry must win.
	g := mustParse(t, "...\n...\n...\n")

	res, err := New(4).Run(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, Entries(g)[0], res.Best)
	assert.Equal(t, 3, res.Energized)
}

func TestMaximizer_Run_MatchesSequential(t *testing.T) {
	g := mustParse(t, testutil.MirrorLoopGrid)

	res, err := New(2).Run(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, MaxEnergized(g), res.Energized)
}

func TestMaximizer_Run_Cancelled(t *testing.T) {
	g := mustParse(t, testutil.ExampleGrid)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(2).Run(ctx, g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
