package integrationtests

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/beamgridgo/internal/app"
	"github.com/vk/beamgridgo/internal/hcl"
	"github.com/vk/beamgridgo/internal/testutil"
)

// harnessResult holds the outcomes of an end-to-end run.
type harnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// runApp writes files into a temporary directory, points cfg.Path at target
// inside it and runs the application, turning a startup panic into Err.
func runApp(t *testing.T, files map[string]string, target string, cfg app.Config) *harnessResult {
	t.Helper()

	dir := testutil.WriteFiles(t, files)
	cfg.Path = filepath.Join(dir, filepath.FromSlash(target))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logBuffer := &testutil.SafeBuffer{}

	var testApp *app.App
	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("panic during app initialization: %v", r)
			}
		}()
		testApp = app.NewApp(out, logBuffer, appConfig, hcl.NewLoader())
	}()
	if runErr == nil {
		runErr = testApp.Run(context.Background())
	}

	if os.Getenv("BEAMGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &harnessResult{
		Output:    out.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
