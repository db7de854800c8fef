package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/beamgridgo/internal/config"
	"github.com/vk/beamgridgo/internal/grid"
)

// writeFiles creates the given files below a fresh temp dir and returns it.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestLoad_FullContraption(t *testing.T) {
	// --- Arrange ---
	dir := writeFiles(t, map[string]string{
		"runs/example.hcl": `
			contraption "example" {
			  grid = "../grids/example.txt"

			  entry {
			    x         = 0
			    y         = 0
			    direction = "east"
			  }

			  entry {
			    x         = 3
			    y         = 0
			    direction = south
			  }

			  expect {
			    single = 46
			    best   = 51
			  }
			}
		`,
	})

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), filepath.Join(dir, "runs"))

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Contraptions, 1)

	c := model.Contraptions[0]
	assert.Equal(t, "example", c.Name)
	assert.Equal(t, filepath.Join(dir, "grids", "example.txt"), c.GridPath)
	assert.Equal(t, filepath.Join(dir, "runs", "example.hcl"), c.Source)
	assert.True(t, c.Best, "best search defaults to on")
	assert.Equal(t, []config.Entry{
		{X: 0, Y: 0, Direction: grid.East},
		{X: 3, Y: 0, Direction: grid.South},
	}, c.Entries)
	require.NotNil(t, c.Expect)
	require.NotNil(t, c.Expect.Single)
	require.NotNil(t, c.Expect.Best)
	assert.Equal(t, 46, *c.Expect.Single)
	assert.Equal(t, 51, *c.Expect.Best)
}

func TestLoad_Defaults(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"run.hcl": `
			contraption "bare" {
			  grid = "/abs/grid.txt"
			  best = false

			  entry {
			    y = 2
			  }
			}
		`,
	})

	model, err := NewLoader().Load(context.Background(), filepath.Join(dir, "run.hcl"))
	require.NoError(t, err)
	require.Len(t, model.Contraptions, 1)

	c := model.Contraptions[0]
	assert.Equal(t, "/abs/grid.txt", c.GridPath)
	assert.False(t, c.Best)
	assert.Nil(t, c.Expect)
	assert.Equal(t, []config.Entry{{X: 0, Y: 2, Direction: grid.East}}, c.Entries)
}

func TestLoad_MultipleFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.hcl":     `contraption "a" { grid = "a.txt" }`,
		"sub/b.hcl": `contraption "b" { grid = "b.txt" }`,
		"notes.txt": `not a run file`,
	})

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Contraptions, 2)
	assert.Equal(t, "a", model.Contraptions[0].Name)
	assert.Equal(t, "b", model.Contraptions[1].Name)
	assert.Equal(t, filepath.Join(dir, "sub", "b.txt"), model.Contraptions[1].GridPath)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		errPart string
	}{
		{
			name:    "syntax error",
			files:   map[string]string{"x.hcl": `contraption "x" {`},
			errPart: "failed to parse HCL file",
		},
		{
			name:    "missing grid attribute",
			files:   map[string]string{"x.hcl": `contraption "x" {}`},
			errPart: "failed to decode HCL file",
		},
		{
			name: "unknown direction keyword",
			files: map[string]string{"x.hcl": `
contraption "x" {
  grid = "g.txt"
  entry {
    direction = up
  }
}
`},
			errPart: "invalid contraption",
		},
		{
			name: "unknown direction string",
			files: map[string]string{"x.hcl": `
contraption "x" {
  grid = "g.txt"
  entry {
    direction = "sideways"
  }
}
`},
			errPart: "unknown direction",
		},
		{
			name: "duplicate names",
			files: map[string]string{
				"a.hcl": `contraption "x" { grid = "a.txt" }`,
				"b.hcl": `contraption "x" { grid = "b.txt" }`,
			},
			errPart: "declared twice",
		},
		{
			name: "negative entry",
			files: map[string]string{"x.hcl": `
contraption "x" {
  grid = "g.txt"
  entry {
    x = -1
  }
}
`},
			errPart: "negative coordinates",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeFiles(t, tc.files)
			_, err := NewLoader().Load(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
