package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/beamgridgo/internal/config"
	"github.com/vk/beamgridgo/internal/ctxlog"
	"github.com/vk/beamgridgo/internal/hcl"
)

// ErrExpectationFailed is returned by Run when at least one result differs
// from its expected answer. The report is written before it is returned.
var ErrExpectationFailed = errors.New("one or more results did not match their expectations")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	model      *config.Model
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Reports go to outW,
// logs to logW. Failing to load the run configuration is fatal and panics;
// the entrypoint recovers it into an error.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loadModel(ctx, cfg.Path, loader)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	if len(model.Contraptions) == 0 {
		panic(fmt.Errorf("failed to load configuration: no contraptions found in %s", cfg.Path))
	}
	logger.Debug("Configuration loaded.", "contraptions", len(model.Contraptions))

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		model:  model,
	}
}

// Model returns the loaded run model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// loadModel hands run files and directories to loader. Any other file is
// taken to be a bare grid and gets a contraption named after it that traces
// the default entry and searches the border.
func loadModel(ctx context.Context, path string, loader config.Loader) (*config.Model, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() || strings.EqualFold(filepath.Ext(path), hcl.Extension) {
		return loader.Load(ctx, path)
	}

	ctxlog.FromContext(ctx).Debug("Treating path as a bare grid file.", "path", path)
	return &config.Model{Contraptions: []*config.Contraption{{
		Name:     gridName(path),
		GridPath: path,
		Source:   path,
		Best:     true,
	}}}, nil
}

// gridName strips directories and every extension, so "in/day16.txt.zst"
// becomes "day16".
func gridName(path string) string {
	name := filepath.Base(path)
	if i := strings.IndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name
}
