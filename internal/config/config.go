package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emovoice/emovoice/internal/paths"
)

const (
	// DefaultBaseRate is the neutral speaking rate in words per minute.
	DefaultBaseRate = 150

	// DefaultBaseVolume is the neutral synthesis volume in percent.
	DefaultBaseVolume = 90

	// DefaultPlayVolume is the default playback volume (0-100).
	DefaultPlayVolume = 100
)

// Credentials holds secret values for remote synthesis backends.
type Credentials struct {
	OpenAIAPIKey string `json:"openai_api_key,omitempty"`
}

// OpenAI holds settings for the OpenAI speech backend.
type OpenAI struct {
	Model  string            `json:"model,omitempty"`
	Voices map[string]string `json:"voices,omitempty"` // emotion -> voice override
}

// Config holds all emovoice settings.
type Config struct {
	Backend     string      `json:"backend,omitempty"`     // "local" | "openai"
	OutputDir   string      `json:"output_dir,omitempty"`  // where WAV files land
	BaseRate    int         `json:"base_rate,omitempty"`   // words per minute
	BaseVolume  int         `json:"base_volume,omitempty"` // percent, 0-100
	PlayVolume  int         `json:"play_volume,omitempty"` // playback volume, 0-100
	History     *bool       `json:"history,omitempty"`     // nil = enabled
	Credentials Credentials `json:"credentials,omitempty"`
	OpenAI      OpenAI      `json:"openai,omitempty"`
}

// Default returns the built-in configuration used when no config file
// exists. The tool must work out of the box with the local backend.
func Default() Config {
	return Config{
		Backend:    "local",
		OutputDir:  paths.OutputDirName,
		BaseRate:   DefaultBaseRate,
		BaseVolume: DefaultBaseVolume,
		PlayVolume: DefaultPlayVolume,
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// HistoryEnabled reports whether synthesis history should be recorded.
func (c Config) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty)
//  2. emovoice-config.json next to the running binary
//  3. ~/.config/emovoice/emovoice-config.json
//
// A missing file is not an error: built-in defaults apply. An explicit
// path that cannot be read is an error. The OPENAI_API_KEY environment
// variable fills in the API key when the config leaves it empty.
func Load(explicitPath string) (Config, error) {
	cfg, err := load(explicitPath)
	if err != nil {
		return Config{}, err
	}
	if cfg.Credentials.OpenAIAPIKey == "" {
		cfg.Credentials.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	}
	return cfg, nil
}

func load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User config directory
	p := filepath.Join(paths.DataDir(), paths.ConfigFileName)
	if _, err := os.Stat(p); err == nil {
		return readConfig(p)
	}

	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
