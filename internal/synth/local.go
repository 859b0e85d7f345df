package synth

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/emovoice/emovoice/internal/config"
	"github.com/emovoice/emovoice/internal/emotion"
)

// Local synthesizes through the operating system's speech engine:
// espeak-ng on Linux, say on macOS, System.Speech on Windows. No network
// access or credentials needed.
type Local struct {
	baseRate   int
	baseVolume int
}

// NewLocal builds the OS speech backend using the configured base voice.
func NewLocal(cfg config.Config) *Local {
	return &Local{baseRate: cfg.BaseRate, baseVolume: cfg.BaseVolume}
}

func (l *Local) Name() string { return "local" }

// Fingerprint covers everything outside the request that changes the
// rendered audio: the platform engine and the configured base voice.
func (l *Local) Fingerprint(emotion.Emotion) string {
	return fmt.Sprintf("%s/rate=%d/volume=%d", runtime.GOOS, l.baseRate, l.baseVolume)
}

// Synthesize renders the request to a temporary WAV file via the
// platform engine and returns its contents.
func (l *Local) Synthesize(req Request) ([]byte, error) {
	settings := Apply(l.baseRate, l.baseVolume, req.Params)

	dir, err := os.MkdirTemp("", "emovoice-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	outPath := filepath.Join(dir, "out.wav")
	if err := speakToFile(req.Text, settings, outPath); err != nil {
		return nil, err
	}

	wavData, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("reading engine output: %w", err)
	}
	return wavData, nil
}
