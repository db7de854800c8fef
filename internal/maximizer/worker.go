package maximizer

import (
	"context"

	"github.com/vk/beamgridgo/internal/ctxlog"
	"github.com/vk/beamgridgo/internal/grid"
	"github.com/vk/beamgridgo/internal/session"
	"github.com/vk/beamgridgo/internal/tracer"
)

// worker is the processing loop for a single concurrent worker. Every job is
// traced in its own fresh session.
func (m *Maximizer) worker(ctx context.Context, g *grid.Grid, jobs <-chan job, counts []int, workerID int) error {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)
	logger.Debug("Worker started.")

	traced := 0
	for j := range jobs {
		if err := ctx.Err(); err != nil {
			logger.Debug("Worker stopping, context done.", "error", err)
			return err
		}

		counts[j.index] = tracer.Trace(g, j.entry, session.New(g))
		traced++
	}

	logger.Debug("Worker finished.", "traced", traced)
	return nil
}
