package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vk/beamgridgo/internal/ctxlog"
	"github.com/vk/beamgridgo/internal/report"
	"github.com/vk/beamgridgo/internal/resultstore"
)

// Run evaluates every loaded contraption in declaration order and writes the
// report. It returns ErrExpectationFailed, after writing the report, when a
// result did not match its expectation.
func (a *App) Run(ctx context.Context) error {
	runID := uuid.NewString()
	ctx = ctxlog.WithLogger(ctx, a.logger.With("run_id", runID))
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(ctx, a.config.HealthcheckPort)
		defer a.closeHealthcheckServer(ctx)
	}

	var store *resultstore.Store
	if a.config.ResultsDB != "" {
		s, err := resultstore.Open(a.config.ResultsDB)
		if err != nil {
			return fmt.Errorf("failed to open result store: %w", err)
		}
		defer s.Close()
		store = s
		logger.Debug("Result store opened.", "path", a.config.ResultsDB)
	}

	logger.Info("Run starting.", "contraptions", len(a.model.Contraptions), "workers", a.config.WorkerCount)
	started := time.Now()

	rep := &report.Report{RunID: runID}
	for i, c := range a.model.Contraptions {
		ev := &evaluation{
			runID:   runID,
			store:   store,
			workers: a.config.WorkerCount,
			energy:  a.config.EnergyMap,
			view:    a.config.View && i == 0,
		}
		res, err := ev.evaluate(ctx, c)
		if err != nil {
			return fmt.Errorf("contraption %q: %w", c.Name, err)
		}
		rep.Add(res)
	}
	rep.ElapsedMS = float64(time.Since(started).Microseconds()) / 1000

	if err := rep.Write(a.outW, a.config.Format); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info("Run finished.", "status", rep.Status, "elapsed", time.Since(started))

	if rep.Failed() {
		return ErrExpectationFailed
	}
	return nil
}
