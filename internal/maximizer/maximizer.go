package maximizer

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/beamgridgo/internal/ctxlog"
	"github.com/vk/beamgridgo/internal/grid"
	"github.com/vk/beamgridgo/internal/session"
	"github.com/vk/beamgridgo/internal/tracer"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is used when a Maximizer is configured with no workers.
const DefaultWorkers = 10

// Result is the outcome of a border search.
type Result struct {
	// Best is the entry with the highest count. When several entries tie,
	// the one listed first by Entries wins.
	Best       grid.BeamState
	Energized  int
	Candidates int
}

// MaxEnergized traces every border entry of g one after another and returns
// the highest energized count, or 0 if g has no border cells.
func MaxEnergized(g *grid.Grid) int {
	best := 0
	for _, e := range Entries(g) {
		if n := tracer.Trace(g, e, session.New(g)); n > best {
			best = n
		}
	}
	return best
}

// Maximizer runs the border search on a pool of workers.
type Maximizer struct {
	Workers int
}

// New creates a Maximizer with the given worker count.
func New(workers int) *Maximizer {
	return &Maximizer{Workers: workers}
}

// job is one candidate entry handed to a worker.
type job struct {
	index int
	entry grid.BeamState
}

// Run traces every border entry of g concurrently and returns the best one.
// Cancelling ctx stops handing out candidates; Run then returns ctx.Err().
func (m *Maximizer) Run(ctx context.Context, g *grid.Grid) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	entries := Entries(g)
	if len(entries) == 0 {
		logger.Debug("Grid has no border entries, nothing to search.")
		return Result{}, nil
	}

	workers := m.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(entries) {
		workers = len(entries)
	}

	logger.Debug("Border search starting.", "candidates", len(entries), "workers", workers)
	started := time.Now()

	// Each candidate owns one slot, so workers never write the same element.
	counts := make([]int, len(entries))
	jobs := make(chan job)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(jobs)
		for i, e := range entries {
			select {
			case jobs <- job{index: i, entry: e}:
			case <-egCtx.Done():
				return egCtx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		workerID := w
		eg.Go(func() error {
			return m.worker(egCtx, g, jobs, counts, workerID)
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, fmt.Errorf("border search aborted: %w", err)
	}

	res := Result{Candidates: len(entries)}
	for i, n := range counts {
		if i == 0 || n > res.Energized {
			res.Best = entries[i]
			res.Energized = n
		}
	}

	logger.Debug("Border search finished.",
		"best_entry", res.Best.String(),
		"energized", res.Energized,
		"elapsed", time.Since(started),
	)
	return res, nil
}
