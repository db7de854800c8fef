package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/beamgridgo/internal/config"
	"github.com/vk/beamgridgo/internal/ctxlog"
	"github.com/vk/beamgridgo/internal/fsutil"
	"github.com/vk/beamgridgo/internal/grid"
	"github.com/vk/beamgridgo/internal/maximizer"
	"github.com/vk/beamgridgo/internal/render"
	"github.com/vk/beamgridgo/internal/report"
	"github.com/vk/beamgridgo/internal/resultstore"
	"github.com/vk/beamgridgo/internal/session"
	"github.com/vk/beamgridgo/internal/tracer"
)

// evaluation carries the per-run settings used while evaluating one
// contraption.
type evaluation struct {
	runID   string
	store   *resultstore.Store // nil when disabled
	workers int
	energy  bool
	view    bool

	digest  string
	records []resultstore.Record
}

func (ev *evaluation) evaluate(ctx context.Context, c *config.Contraption) (report.Result, error) {
	ctx = ctxlog.With(ctx, "contraption", c.Name)
	logger := ctxlog.FromContext(ctx)
	started := time.Now()

	raw, err := fsutil.ReadFile(c.GridPath)
	if err != nil {
		return report.Result{}, fmt.Errorf("failed to read grid: %w", err)
	}
	g, err := grid.Parse(string(raw))
	if err != nil {
		return report.Result{}, fmt.Errorf("failed to parse grid %s: %w", c.GridPath, err)
	}
	rows, cols := g.Dimensions()
	logger.Debug("Grid loaded.", "path", c.GridPath, "rows", rows, "columns", cols)

	ev.digest = resultstore.Digest(g)
	ev.records = nil

	res := report.Result{
		Contraption: c.Name,
		GridPath:    c.GridPath,
		Rows:        rows,
		Columns:     cols,
	}

	for i, e := range c.EntriesOrDefault() {
		er, err := ev.single(ctx, c.Name, g, e, i == 0)
		if err != nil {
			return report.Result{}, err
		}
		if i == 0 && c.Expect != nil {
			er.Expected = c.Expect.Single
		}
		res.Entries = append(res.Entries, er)
	}

	if c.Best {
		br, err := ev.best(ctx, c.Name, g)
		if err != nil {
			return report.Result{}, err
		}
		if c.Expect != nil {
			br.Expected = c.Expect.Best
		}
		res.Best = br
	}

	if ev.store != nil {
		if err := ev.store.Record(ctx, ev.records...); err != nil {
			return report.Result{}, fmt.Errorf("failed to record results: %w", err)
		}
	}

	res.SetElapsed(time.Since(started))
	res.Evaluate()
	logger.Info("Contraption evaluated.", "status", res.Status, "entries", len(res.Entries), "elapsed", time.Since(started))
	return res, nil
}

// single traces one configured entry, or answers it from the store. An
// energy map or terminal view always needs a fresh trace.
func (ev *evaluation) single(ctx context.Context, name string, g *grid.Grid, e config.Entry, first bool) (report.EntryResult, error) {
	logger := ctxlog.FromContext(ctx)
	start := e.BeamState()
	if !g.InBounds(start.Pos) {
		rows, cols := g.Dimensions()
		return report.EntryResult{}, fmt.Errorf("entry %s is outside the %dx%d grid", start, rows, cols)
	}

	er := report.EntryResult{X: start.Pos.X, Y: start.Pos.Y, Direction: start.Dir.String()}
	view := ev.view && first

	if ev.store != nil && !ev.energy && !view {
		rec, ok, err := ev.store.LookupSingle(ctx, ev.digest, start)
		if err != nil {
			return er, fmt.Errorf("result store lookup failed: %w", err)
		}
		if ok {
			logger.Debug("Entry answered from result store.", "entry", start.String(), "energized", rec.Energized, "recorded_by", rec.RunID)
			er.Energized = rec.Energized
			er.Cached = true
			return er, nil
		}
	}

	s := session.New(g)
	er.Energized = tracer.Trace(g, start, s)
	logger.Debug("Entry traced.", "entry", start.String(), "energized", er.Energized, "states", s.ProcessedStates())

	if ev.energy {
		er.EnergyMap = render.EnergyMap(s)
	}
	if view {
		if err := render.View(name, s); err != nil {
			return er, err
		}
	}

	ev.records = append(ev.records, resultstore.Record{
		RunID:       ev.runID,
		Contraption: name,
		GridDigest:  ev.digest,
		Kind:        resultstore.KindSingle,
		Entry:       start,
		Energized:   er.Energized,
	})
	return er, nil
}

// best runs the border search, or answers it from the store.
func (ev *evaluation) best(ctx context.Context, name string, g *grid.Grid) (*report.BestResult, error) {
	logger := ctxlog.FromContext(ctx)
	candidates := len(maximizer.Entries(g))

	if ev.store != nil {
		rec, ok, err := ev.store.LookupBest(ctx, ev.digest)
		if err != nil {
			return nil, fmt.Errorf("result store lookup failed: %w", err)
		}
		if ok {
			logger.Debug("Border search answered from result store.", "energized", rec.Energized, "recorded_by", rec.RunID)
			return bestResult(rec.Entry, rec.Energized, candidates, true), nil
		}
	}

	out, err := maximizer.New(ev.workers).Run(ctx, g)
	if err != nil {
		return nil, err
	}

	ev.records = append(ev.records, resultstore.Record{
		RunID:       ev.runID,
		Contraption: name,
		GridDigest:  ev.digest,
		Kind:        resultstore.KindBest,
		Entry:       out.Best,
		Energized:   out.Energized,
	})
	return bestResult(out.Best, out.Energized, out.Candidates, false), nil
}

func bestResult(entry grid.BeamState, energized, candidates int, cached bool) *report.BestResult {
	return &report.BestResult{
		X:          entry.Pos.X,
		Y:          entry.Pos.Y,
		Direction:  entry.Dir.String(),
		Energized:  energized,
		Candidates: candidates,
		Cached:     cached,
	}
}
