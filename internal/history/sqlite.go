package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/emovoice/emovoice/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Set PRAGMAs before any DDL.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS syntheses (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp    TEXT NOT NULL,
    text         TEXT NOT NULL,
    emotion      TEXT NOT NULL,
    intensity    REAL NOT NULL,
    polarity     REAL NOT NULL,
    subjectivity REAL NOT NULL,
    rate         REAL NOT NULL,
    volume       REAL NOT NULL,
    pitch        REAL NOT NULL,
    backend      TEXT NOT NULL DEFAULT '',
    output_path  TEXT NOT NULL DEFAULT '',
    cached       INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_syntheses_timestamp ON syntheses(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_syntheses_emotion   ON syntheses(emotion);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Log inserts one synthesis record.
func (s *SQLiteStore) Log(e Entry) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	cached := 0
	if e.Cached {
		cached = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO syntheses
		 (timestamp, text, emotion, intensity, polarity, subjectivity, rate, volume, pitch, backend, output_path, cached)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ts.Format(time.RFC3339), e.Text, e.Emotion, e.Intensity, e.Polarity, e.Subjectivity,
		e.Rate, e.Volume, e.Pitch, e.Backend, e.OutputPath, cached,
	)
	return err
}

// Entries returns records newest first, limited to the last N days
// (0 = all time).
func (s *SQLiteStore) Entries(days int) ([]Entry, error) {
	query := `SELECT id, timestamp, text, emotion, intensity, polarity, subjectivity,
	                 rate, volume, pitch, backend, output_path, cached
	          FROM syntheses`
	var args []any
	if days > 0 {
		query += ` WHERE timestamp >= ?`
		args = append(args, DayCutoff(days).Format(time.RFC3339))
	}
	query += ` ORDER BY timestamp DESC, id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		var cached int
		if err := rows.Scan(&e.ID, &ts, &e.Text, &e.Emotion, &e.Intensity, &e.Polarity,
			&e.Subjectivity, &e.Rate, &e.Volume, &e.Pitch, &e.Backend, &e.OutputPath, &cached); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			e.Timestamp = t
		}
		e.Cached = cached != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clean removes entries older than N days and returns the removed count.
func (s *SQLiteStore) Clean(days int) (int, error) {
	res, err := s.db.Exec(`DELETE FROM syntheses WHERE timestamp < ?`,
		DayCutoff(days).Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// Clear removes all entries.
func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM syntheses`)
	return err
}
