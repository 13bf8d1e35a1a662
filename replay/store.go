package replay

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/milk9111/actorsim/input"
)

// Store keeps recordings in a SQLite database.
type Store struct {
	db *sql.DB
}

// Summary is a recording without its step data.
type Summary struct {
	ID        int64
	Name      string
	Level     string
	Seed      int32
	Steps     int
	Final     uint64
	CreatedAt time.Time
}

// Open creates or opens the database at path, creating parent directories and running
// migrations.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("replay: expand home: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("replay: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("replay: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("replay: connect: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("replay: migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			level TEXT NOT NULL,
			timing TEXT NOT NULL,
			seed INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			final_checksum INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS replay_steps (
			replay_id INTEGER NOT NULL REFERENCES replays(id) ON DELETE CASCADE,
			step INTEGER NOT NULL,
			input INTEGER NOT NULL,
			checksum INTEGER NOT NULL,
			PRIMARY KEY (replay_id, step)
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save writes rec in one transaction and returns its id.
func (s *Store) Save(ctx context.Context, rec *Recording) (int64, error) {
	if rec == nil {
		return 0, fmt.Errorf("replay: save: nil recording")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("replay: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO replays (name, level, timing, seed, steps, final_checksum) VALUES (?, ?, ?, ?, ?, ?)",
		rec.Name, rec.Level, rec.Timing, rec.Seed, rec.Steps(), int64(rec.Final()),
	)
	if err != nil {
		return 0, fmt.Errorf("replay: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("replay: inserted id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO replay_steps (replay_id, step, input, checksum) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("replay: prepare steps: %w", err)
	}
	defer stmt.Close()
	for i, f := range rec.Frames {
		if _, err := stmt.ExecContext(ctx, id, i, int(f), int64(rec.Checksums[i])); err != nil {
			return 0, fmt.Errorf("replay: insert step %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("replay: commit: %w", err)
	}
	rec.ID = id
	return id, nil
}

// Load reads a full recording.
func (s *Store) Load(ctx context.Context, id int64) (*Recording, error) {
	rec := &Recording{ID: id}
	err := s.db.QueryRowContext(ctx,
		"SELECT name, level, timing, seed, created_at FROM replays WHERE id = ?", id,
	).Scan(&rec.Name, &rec.Level, &rec.Timing, &rec.Seed, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("replay: load %d: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT input, checksum FROM replay_steps WHERE replay_id = ? ORDER BY step", id)
	if err != nil {
		return nil, fmt.Errorf("replay: load steps %d: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var f int
		var sum int64
		if err := rows.Scan(&f, &sum); err != nil {
			return nil, fmt.Errorf("replay: scan step: %w", err)
		}
		rec.Frames = append(rec.Frames, input.Frame(f))
		rec.Checksums = append(rec.Checksums, uint64(sum))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("replay: iterate steps: %w", err)
	}
	return rec, nil
}

// List returns the newest recordings first.
func (s *Store) List(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, level, seed, steps, final_checksum, created_at FROM replays ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("replay: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sm Summary
		var final int64
		if err := rows.Scan(&sm.ID, &sm.Name, &sm.Level, &sm.Seed, &sm.Steps, &final, &sm.CreatedAt); err != nil {
			return nil, fmt.Errorf("replay: scan: %w", err)
		}
		sm.Final = uint64(final)
		out = append(out, sm)
	}
	return out, rows.Err()
}
