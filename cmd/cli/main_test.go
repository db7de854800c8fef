package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/beamgridgo/internal/app"
	"github.com/vk/beamgridgo/internal/testutil"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A run file with a syntax error makes app.NewApp panic while loading.
	invalidHCL := `
		contraption "broken" {
			grid = "example.txt"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, &testutil.SafeBuffer{}, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &testutil.SafeBuffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &testutil.SafeBuffer{}, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_BareGrid(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{"example.txt": testutil.ExampleGrid})
	out, logs := &bytes.Buffer{}, &testutil.SafeBuffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"-format", "yaml", filepath.Join(dir, "example.txt")})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "energized: 46")
	require.Contains(t, out.String(), "energized: 51")
	require.Contains(t, logs.String(), "Run finished.")
}

func TestRun_ExpectationMismatch(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{
		"grids/example.txt": testutil.ExampleGrid,
		"run.hcl": `
contraption "example" {
  grid = "grids/example.txt"
  best = false
  expect {
    single = 45
  }
}
`,
	})

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &testutil.SafeBuffer{}, []string{"-p", dir})

	// --- Assert ---
	require.ErrorIs(t, err, app.ErrExpectationFailed)
}
