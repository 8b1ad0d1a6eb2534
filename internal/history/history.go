// Package history records validation runs so they can be compared later.
//
// Each `sitekit check` stores its report in a small SQLite database inside
// the project's .sitekit directory. The stored text rendering is what
// `check diff` compares, so a regression shows up as added lines.
package history

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/openticketai/sitekit/internal/validate"

	// Register sqlite driver
	_ "modernc.org/sqlite"
)

// FileName is the database name inside the .sitekit directory.
const FileName = "history.db"

//go:embed sql/*.sql
var schemas embed.FS

var (
	// ErrNotFound indicates no run matches the given id.
	ErrNotFound = errors.New("run not found")
	// ErrAmbiguous indicates an id prefix matches more than one run.
	ErrAmbiguous = errors.New("run id prefix is ambiguous")
)

// Run is one recorded validation run.
type Run struct {
	ID       string    `json:"id"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
	Root     string    `json:"root"`
	Passed   int       `json:"passed"`
	Warnings int       `json:"warnings"`
	Errors   int       `json:"errors"`
	Summary  string    `json:"summary,omitempty"` // plain-text rendering
	report   string
}

// ShortID is the first 8 characters of the id, enough to address a run.
func (r Run) ShortID() string {
	if len(r.ID) < 8 {
		return r.ID
	}
	return r.ID[:8]
}

// OK reports whether the run recorded no errors.
func (r Run) OK() bool { return r.Errors == 0 }

// Report decodes the stored report.
func (r Run) Report() (*validate.Report, error) {
	var rep validate.Report
	if err := json.Unmarshal([]byte(r.report), &rep); err != nil {
		return nil, fmt.Errorf("decoding run %s: %w", r.ShortID(), err)
	}
	return &rep, nil
}

// Store is the run history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if err := execSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

func execSchema(db *sql.DB) error {
	entries, err := fs.ReadDir(schemas, "sql")
	if err != nil {
		return fmt.Errorf("read schema directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, e := range entries {
		data, err := schemas.ReadFile("sql/" + e.Name())
		if err != nil {
			return fmt.Errorf("read %s: %w", e.Name(), err)
		}
		if _, err := db.Exec(string(data)); err != nil {
			return fmt.Errorf("exec %s: %w", e.Name(), err)
		}
	}
	return nil
}

// Record stores a finished report together with its text rendering.
func (s *Store) Record(ctx context.Context, rep *validate.Report, summary string) (Run, error) {
	data, err := json.Marshal(rep)
	if err != nil {
		return Run{}, fmt.Errorf("encoding report: %w", err)
	}
	run := Run{
		ID:       uuid.NewString(),
		Started:  rep.Started,
		Finished: rep.Finished,
		Root:     rep.Root,
		Passed:   len(rep.Passed),
		Warnings: len(rep.Warnings),
		Errors:   len(rep.Errors),
		Summary:  summary,
		report:   string(data),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started, finished, root, passed, warnings, errors, report, summary)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Started.UnixNano(), run.Finished.UnixNano(), run.Root,
		run.Passed, run.Warnings, run.Errors, run.report, run.Summary)
	if err != nil {
		return Run{}, fmt.Errorf("recording run: %w", err)
	}
	return run, nil
}

const selectRuns = `SELECT id, started, finished, root, passed, warnings, errors, report, summary FROM runs`

// List returns up to limit runs, newest first. A limit of 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	q := selectRuns + ` ORDER BY started DESC, rowid DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.query(ctx, q, args...)
}

// Latest returns the most recent run.
func (s *Store) Latest(ctx context.Context) (Run, error) {
	runs, err := s.List(ctx, 1)
	if err != nil {
		return Run{}, err
	}
	if len(runs) == 0 {
		return Run{}, ErrNotFound
	}
	return runs[0], nil
}

// Get returns the run whose id starts with prefix.
func (s *Store) Get(ctx context.Context, prefix string) (Run, error) {
	if prefix == "" {
		return Run{}, ErrNotFound
	}
	runs, err := s.query(ctx, selectRuns+` WHERE id LIKE ? ESCAPE '\' LIMIT 2`, escapeLike(prefix)+"%")
	if err != nil {
		return Run{}, err
	}
	switch len(runs) {
	case 0:
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, prefix)
	case 1:
		return runs[0], nil
	default:
		return Run{}, fmt.Errorf("%w: %s", ErrAmbiguous, prefix)
	}
}

// Prune deletes runs started more than olderThan ago and returns how many
// were removed.
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan).UnixNano()
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE started < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning runs: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var started, finished int64
		if err := rows.Scan(&r.ID, &started, &finished, &r.Root, &r.Passed, &r.Warnings, &r.Errors, &r.report, &r.Summary); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Started = time.Unix(0, started)
		r.Finished = time.Unix(0, finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		if s[i] == '%' || s[i] == '_' || s[i] == '\\' {
			b = append(b, '\\')
		}
		b = append(b, s[i])
	}
	return string(b)
}
