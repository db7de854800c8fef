package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/beamgridgo/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Path is a .hcl run file, a directory of run files, or a single grid
	// file (plain, .gz or .zst).
	Path string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	WorkerCount     int

	Format    report.Format
	ResultsDB string // empty disables the result store
	EnergyMap bool
	View      bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Path == "" {
		return nil, errors.New("Path is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("invalid worker count %d: must not be negative", cfg.WorkerCount)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid healthcheck port %d", cfg.HealthcheckPort)
	}

	if cfg.Format == "" {
		cfg.Format = report.FormatText
	}
	f, err := report.ParseFormat(string(cfg.Format))
	if err != nil {
		return nil, err
	}
	cfg.Format = f

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	return &cfg, nil
}
