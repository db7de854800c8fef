// Package resultstore persists computed energized counts in SQLite so that
// repeated runs over an unchanged grid can skip the trace.
//
// Results are keyed by a digest of the grid's element map, not by file path:
// renaming or recompressing a grid file keeps its cached answers, and editing
// a single cell invalidates them.
package resultstore

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vk/beamgridgo/internal/grid"
)

// Kind distinguishes single-entry results from border-search results.
type Kind string

const (
	KindSingle Kind = "single"
	KindBest   Kind = "best"
)

// Record is one stored result. For KindBest the entry fields describe the
// winning border entry.
type Record struct {
	RunID       string
	Contraption string
	GridDigest  string
	Kind        Kind
	Entry       grid.BeamState
	Energized   int
	RecordedAt  time.Time
}

// Store is a SQLite-backed result store.
type Store struct {
	db *sql.DB
}

// Digest returns the key under which results for g are stored.
func Digest(g *grid.Grid) string {
	sum := sha256.Sum256([]byte(g.String()))
	return hex.EncodeToString(sum[:])
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("pragma %q: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			contraption TEXT NOT NULL,
			grid_digest TEXT NOT NULL,
			kind TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			direction TEXT NOT NULL,
			energized INTEGER NOT NULL,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_lookup ON results(grid_digest, kind, x, y, direction);`,
		`CREATE INDEX IF NOT EXISTS idx_results_contraption ON results(contraption, id);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores all records in one transaction. Zero RecordedAt values are
// set to the current time.
func (s *Store) Record(ctx context.Context, recs ...Record) error {
	if len(recs) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO results
		(run_id, contraption, grid_digest, kind, x, y, direction, energized, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, r := range recs {
		at := r.RecordedAt
		if at.IsZero() {
			at = now
		}
		_, err := stmt.ExecContext(ctx,
			r.RunID, r.Contraption, r.GridDigest, string(r.Kind),
			r.Entry.Pos.X, r.Entry.Pos.Y, r.Entry.Dir.String(),
			r.Energized, at.Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert %s result for %q: %w", r.Kind, r.Contraption, err)
		}
	}
	return tx.Commit()
}

// LookupSingle returns the latest stored count for entry on the grid with
// the given digest.
func (s *Store) LookupSingle(ctx context.Context, digest string, entry grid.BeamState) (Record, bool, error) {
	row := s.db.QueryRowContext(ctx, selectRecord+`
		WHERE grid_digest = ? AND kind = ? AND x = ? AND y = ? AND direction = ?
		ORDER BY id DESC LIMIT 1`,
		digest, string(KindSingle), entry.Pos.X, entry.Pos.Y, entry.Dir.String(),
	)
	return scanOne(row)
}

// LookupBest returns the latest stored border-search result for the grid
// with the given digest.
func (s *Store) LookupBest(ctx context.Context, digest string) (Record, bool, error) {
	row := s.db.QueryRowContext(ctx, selectRecord+`
		WHERE grid_digest = ? AND kind = ?
		ORDER BY id DESC LIMIT 1`,
		digest, string(KindBest),
	)
	return scanOne(row)
}

// History returns every record of a contraption, oldest first.
func (s *Store) History(ctx context.Context, contraption string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, selectRecord+`
		WHERE contraption = ? ORDER BY id ASC`, contraption)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const selectRecord = `SELECT run_id, contraption, grid_digest, kind, x, y, direction, energized, recorded_at FROM results`

type scanner interface {
	Scan(dest ...any) error
}

func scan(sc scanner) (Record, error) {
	var (
		r         Record
		kind, dir string
		at        string
	)
	if err := sc.Scan(&r.RunID, &r.Contraption, &r.GridDigest, &kind, &r.Entry.Pos.X, &r.Entry.Pos.Y, &dir, &r.Energized, &at); err != nil {
		return Record{}, err
	}
	r.Kind = Kind(kind)

	d, err := grid.ParseDirection(dir)
	if err != nil {
		return Record{}, fmt.Errorf("stored record: %w", err)
	}
	r.Entry.Dir = d

	t, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return Record{}, fmt.Errorf("stored record: bad timestamp %q: %w", at, err)
	}
	r.RecordedAt = t
	return r, nil
}

func scanOne(row *sql.Row) (Record, bool, error) {
	r, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return r, true, nil
}
