// Package history records every synthesis so past emotion analyses can
// be listed and summarized. Recording is best-effort: a history failure
// never blocks audio output.
package history

import (
	"path/filepath"
	"time"

	"github.com/emovoice/emovoice/internal/paths"
)

// Entry is one recorded synthesis.
type Entry struct {
	ID           int64
	Timestamp    time.Time
	Text         string
	Emotion      string
	Intensity    float64
	Polarity     float64
	Subjectivity float64
	Rate         float64 // parameter deltas actually used
	Volume       float64
	Pitch        float64
	Backend      string
	OutputPath   string
	Cached       bool
}

// Store abstracts history storage.
type Store interface {
	Log(e Entry) error
	Entries(days int) ([]Entry, error) // newest first; days=0 means all
	Clean(days int) (int, error)       // drop entries older than N days
	Clear() error
	Path() string
	Close() error
}

// DBPath returns the default history database location.
func DBPath() string {
	return filepath.Join(paths.DataDir(), paths.HistoryDBName)
}

// DayCutoff returns midnight N days ago (inclusive) in the local
// timezone: days=1 is today at midnight, days=7 is six days ago.
func DayCutoff(days int) time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -(days - 1))
}

// Nop discards everything; used when history is disabled in config.
type Nop struct{}

func (Nop) Log(Entry) error              { return nil }
func (Nop) Entries(int) ([]Entry, error) { return nil, nil }
func (Nop) Clean(int) (int, error)       { return 0, nil }
func (Nop) Clear() error                 { return nil }
func (Nop) Path() string                 { return "" }
func (Nop) Close() error                 { return nil }
