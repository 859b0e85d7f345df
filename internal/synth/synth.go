// Package synth turns text plus voice parameters into WAV audio through
// interchangeable speech backends.
package synth

import (
	"fmt"
	"math"

	"github.com/emovoice/emovoice/internal/config"
	"github.com/emovoice/emovoice/internal/emotion"
	"github.com/emovoice/emovoice/internal/modulate"
)

// Request carries everything a backend needs for one utterance: the text
// itself, the detected emotion (some backends pick a voice per emotion),
// and the parameter deltas to apply to the baseline voice.
type Request struct {
	Text      string
	Emotion   emotion.Emotion
	Intensity float64
	Params    modulate.Parameters
}

// Backend synthesizes speech for a request and returns WAV bytes.
// How faithfully each parameter is honored depends on the engine;
// unsupported parameters are ignored, never an error.
type Backend interface {
	Name() string
	// Fingerprint identifies the engine settings that shape the audio
	// for an emotion beyond the request fields (configured voice,
	// model, base voice anchors), so cached audio goes stale when the
	// configuration changes.
	Fingerprint(em emotion.Emotion) string
	Synthesize(req Request) ([]byte, error)
}

// Select returns the backend for name, falling back to cfg.Backend when
// name is empty.
func Select(cfg config.Config, name string) (Backend, error) {
	if name == "" {
		name = cfg.Backend
	}
	switch name {
	case "", "local":
		return NewLocal(cfg), nil
	case "openai":
		if cfg.Credentials.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai backend requires an API key (config credentials.openai_api_key or OPENAI_API_KEY)")
		}
		return NewOpenAI(cfg), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (supported: local, openai)", name)
	}
}

// Settings are absolute engine values derived from the base voice and a
// parameter delta. Pitch stays a signed delta; each engine maps it onto
// its own scale.
type Settings struct {
	RateWPM int     // absolute speaking rate in words per minute
	Volume  int     // absolute volume percent, 0-100
	Pitch   float64 // signed pitch shift
}

// Apply resolves parameter deltas against a base rate (wpm) and base
// volume (percent) into absolute engine settings. Volume is clamped to
// 0-100; rate is kept at a sane floor of 1 wpm.
func Apply(baseRate, baseVolume int, p modulate.Parameters) Settings {
	rate := int(math.Round(float64(baseRate) * (1 + p.Rate/100)))
	if rate < 1 {
		rate = 1
	}
	vol := int(math.Round(float64(baseVolume) * (1 + p.Volume/100)))
	if vol < 0 {
		vol = 0
	} else if vol > 100 {
		vol = 100
	}
	return Settings{RateWPM: rate, Volume: vol, Pitch: p.Pitch}
}
