package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/beamgridgo/internal/config"
	"github.com/vk/beamgridgo/internal/ctxlog"
	"github.com/vk/beamgridgo/internal/fsutil"
)

// Extension is the file extension of run files.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL run file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths and merges their
// contraptions into one model. Contraption names must be unique across all
// files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, p := range paths {
		found, err := fsutil.FindFilesByExtension(p, Extension)
		if err != nil {
			return nil, fmt.Errorf("failed to find run files in %s: %w", p, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	declared := make(map[string]string)
	parser := hclparse.NewParser()

	for _, file := range files {
		contraptions, err := l.loadFile(parser, file)
		if err != nil {
			return nil, err
		}
		for _, c := range contraptions {
			if prev, dup := declared[c.Name]; dup {
				return nil, fmt.Errorf("contraption %q declared twice: in %s and %s", c.Name, prev, file)
			}
			declared[c.Name] = file
			model.Contraptions = append(model.Contraptions, c)
		}
	}

	logger.Debug("HCL loading complete.", "files", len(files), "contraptions", len(model.Contraptions))
	return model, nil
}

// loadFile decodes and translates a single run file.
func (l *Loader) loadFile(parser *hclparse.Parser, file string) ([]*config.Contraption, error) {
	hclFile, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}

	out := make([]*config.Contraption, 0, len(root.Contraptions))
	for _, block := range root.Contraptions {
		c, diags := translateContraption(block, filepath.Dir(file))
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid contraption %q in %s: %w", block.Name, file, diags)
		}
		c.Source = file
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// resolveGridPath interprets relative grid paths against the run file's directory.
func resolveGridPath(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

var _ config.Loader = (*Loader)(nil)
