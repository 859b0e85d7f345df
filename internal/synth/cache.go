package synth

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/emovoice/emovoice/internal/paths"
)

const (
	cacheDirName  = "wav-cache"
	indexFileName = "wav-cache.json"
)

// CacheEntry describes a single cached synthesis result.
type CacheEntry struct {
	Text      string    `json:"text"`
	Backend   string    `json:"backend"`
	Emotion   string    `json:"emotion"`
	Hash      string    `json:"hash"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Cache reuses WAV files for repeated identical requests: same text,
// backend, engine settings and parameters means the same audio, so
// re-synthesizing (and re-billing, for cloud backends) is wasted work.
type Cache struct {
	Dir     string
	Entries map[string]CacheEntry // hash -> entry
}

// CacheDir returns the WAV cache directory path.
func CacheDir() string {
	return filepath.Join(paths.DataDir(), cacheDirName)
}

// RequestHash keys a cache slot: truncated SHA-256 over the backend
// name, its settings fingerprint and every request field that
// influences the audio (16 hex chars).
func RequestHash(backend, fingerprint string, req Request) string {
	h := sha256.Sum256(fmt.Appendf(nil, "%s\x00%s\x00%s\x00%s\x00%.4f\x00%.4f\x00%.4f",
		backend, fingerprint, req.Text, req.Emotion, req.Params.Rate, req.Params.Volume, req.Params.Pitch))
	return fmt.Sprintf("%x", h[:8])
}

// OpenCache loads or creates the cache index.
func OpenCache() (*Cache, error) {
	dir := CacheDir()
	c := &Cache{
		Dir:     dir,
		Entries: make(map[string]CacheEntry),
	}

	indexPath := filepath.Join(dir, indexFileName)
	data, err := os.ReadFile(indexPath)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("reading wav cache index: %w", err)
	}

	if err := json.Unmarshal(data, &c.Entries); err != nil {
		return nil, fmt.Errorf("parsing wav cache index: %w", err)
	}
	return c, nil
}

// Lookup checks for a cached WAV matching the request on the given
// backend. Returns the file path and true if found.
func (c *Cache) Lookup(b Backend, req Request) (string, bool) {
	hash := RequestHash(b.Name(), b.Fingerprint(req.Emotion), req)
	entry, ok := c.Entries[hash]
	if !ok {
		return "", false
	}
	wavPath := filepath.Join(c.Dir, entry.Hash+".wav")
	if _, err := os.Stat(wavPath); err != nil {
		return "", false
	}
	return wavPath, true
}

// Save writes the cache index to disk.
func (c *Cache) Save() error {
	data, err := json.MarshalIndent(c.Entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling wav cache index: %w", err)
	}
	return paths.AtomicWrite(filepath.Join(c.Dir, indexFileName), data)
}

// Add writes a WAV file to the cache and updates the index.
func (c *Cache) Add(b Backend, req Request, wavData []byte) error {
	hash := RequestHash(b.Name(), b.Fingerprint(req.Emotion), req)
	wavPath := filepath.Join(c.Dir, hash+".wav")

	if err := os.MkdirAll(c.Dir, paths.DirPerm); err != nil {
		return fmt.Errorf("creating wav cache dir: %w", err)
	}
	if err := os.WriteFile(wavPath, wavData, paths.FilePerm); err != nil {
		return fmt.Errorf("writing wav file: %w", err)
	}

	c.Entries[hash] = CacheEntry{
		Text:      req.Text,
		Backend:   b.Name(),
		Emotion:   string(req.Emotion),
		Hash:      hash,
		Size:      int64(len(wavData)),
		CreatedAt: time.Now(),
	}
	return c.Save()
}

// Clear deletes all cached WAV files and the index, returning the number
// of entries removed.
func (c *Cache) Clear() (int, error) {
	count := len(c.Entries)
	for hash := range c.Entries {
		wavPath := filepath.Join(c.Dir, hash+".wav")
		_ = os.Remove(wavPath)
	}
	c.Entries = make(map[string]CacheEntry)
	indexPath := filepath.Join(c.Dir, indexFileName)
	_ = os.Remove(indexPath)
	return count, nil
}
