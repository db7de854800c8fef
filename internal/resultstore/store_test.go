package resultstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/beamgridgo/internal/grid"
	"github.com/vk/beamgridgo/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db", "results.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDigest(t *testing.T) {
	a, err := grid.Parse(testutil.ExampleGrid)
	require.NoError(t, err)
	b, err := grid.Parse(testutil.ExampleGrid + "\n\n")
	require.NoError(t, err)
	c, err := grid.Parse(testutil.MirrorLoopGrid)
	require.NoError(t, err)

	assert.Equal(t, Digest(a), Digest(b), "trailing blank lines do not change the grid")
	assert.NotEqual(t, Digest(a), Digest(c))
	assert.Len(t, Digest(a), 64)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestRecordAndLookup(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	entry := grid.BeamState{Pos: grid.Position{X: 0, Y: 0}, Dir: grid.East}
	bestEntry := grid.BeamState{Pos: grid.Position{X: 3, Y: 0}, Dir: grid.South}

	// Nothing stored yet.
	_, ok, err := s.LookupSingle(ctx, "digest", entry)
	require.NoError(t, err)
	assert.False(t, ok)

	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	err = s.Record(ctx,
		Record{RunID: "r1", Contraption: "example", GridDigest: "digest", Kind: KindSingle, Entry: entry, Energized: 46, RecordedAt: at},
		Record{RunID: "r1", Contraption: "example", GridDigest: "digest", Kind: KindBest, Entry: bestEntry, Energized: 51},
	)
	require.NoError(t, err)

	got, ok, err := s.LookupSingle(ctx, "digest", entry)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 46, got.Energized)
	assert.Equal(t, entry, got.Entry)
	assert.Equal(t, KindSingle, got.Kind)
	assert.True(t, at.Equal(got.RecordedAt))

	_, ok, err = s.LookupSingle(ctx, "digest", grid.BeamState{Pos: grid.Position{X: 1, Y: 0}, Dir: grid.East})
	require.NoError(t, err)
	assert.False(t, ok, "different entry is a miss")

	best, ok, err := s.LookupBest(ctx, "digest")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 51, best.Energized)
	assert.Equal(t, bestEntry, best.Entry)
	assert.False(t, best.RecordedAt.IsZero())

	_, ok, err = s.LookupBest(ctx, "other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	entry := grid.BeamState{Pos: grid.Position{X: 0, Y: 0}, Dir: grid.East}

	require.NoError(t, s.Record(ctx, Record{RunID: "r1", Contraption: "a", GridDigest: "d", Kind: KindSingle, Entry: entry, Energized: 1}))
	require.NoError(t, s.Record(ctx, Record{RunID: "r2", Contraption: "a", GridDigest: "d", Kind: KindSingle, Entry: entry, Energized: 2}))
	require.NoError(t, s.Record(ctx, Record{RunID: "r2", Contraption: "b", GridDigest: "d", Kind: KindSingle, Entry: entry, Energized: 3}))
	require.NoError(t, s.Record(ctx))

	recs, err := s.History(ctx, "a")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "r1", recs[0].RunID)
	assert.Equal(t, "r2", recs[1].RunID)

	// The newest record wins on lookup.
	got, ok, err := s.LookupSingle(ctx, "d", entry)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, got.Energized)
}

func TestReopenKeepsResults(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "results.sqlite")
	entry := grid.BeamState{Pos: grid.Position{X: 0, Y: 0}, Dir: grid.East}

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, Record{RunID: "r", Contraption: "a", GridDigest: "d", Kind: KindSingle, Entry: entry, Energized: 7}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.LookupSingle(ctx, "d", entry)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, got.Energized)
}
