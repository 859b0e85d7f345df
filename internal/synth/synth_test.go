package synth

import (
	"strings"
	"testing"

	"github.com/emovoice/emovoice/internal/config"
	"github.com/emovoice/emovoice/internal/emotion"
	"github.com/emovoice/emovoice/internal/modulate"
)

// Compile-time interface checks.
var (
	_ Backend = (*Local)(nil)
	_ Backend = (*OpenAI)(nil)
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		params   modulate.Parameters
		wantRate int
		wantVol  int
	}{
		{"neutral", modulate.Parameters{}, 150, 90},
		{"happy full", modulate.Parameters{Rate: 15, Volume: 10, Pitch: 20}, 173, 99},
		{"sad full", modulate.Parameters{Rate: -15, Volume: -15, Pitch: -15}, 128, 77},
		{"volume clamped high", modulate.Parameters{Volume: 50}, 150, 100},
		{"volume clamped low", modulate.Parameters{Volume: -200}, 150, 0},
	}
	for _, tt := range tests {
		got := Apply(150, 90, tt.params)
		if got.RateWPM != tt.wantRate {
			t.Errorf("%s: rate = %d, want %d", tt.name, got.RateWPM, tt.wantRate)
		}
		if got.Volume != tt.wantVol {
			t.Errorf("%s: volume = %d, want %d", tt.name, got.Volume, tt.wantVol)
		}
		if got.Pitch != tt.params.Pitch {
			t.Errorf("%s: pitch = %v, want %v", tt.name, got.Pitch, tt.params.Pitch)
		}
	}
}

func TestApplyRateFloor(t *testing.T) {
	got := Apply(10, 90, modulate.Parameters{Rate: -100})
	if got.RateWPM != 1 {
		t.Errorf("rate = %d, want floor of 1", got.RateWPM)
	}
}

func TestSpeed(t *testing.T) {
	tests := []struct {
		ratePercent, want float64
	}{
		{0, 1.0},
		{15, 1.15},
		{25, 1.25},
		{-15, 0.85},
		{-100, 0.25}, // clamped
		{500, 4.0},   // clamped
	}
	for _, tt := range tests {
		got := Speed(tt.ratePercent)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Speed(%v) = %v, want %v", tt.ratePercent, got, tt.want)
		}
	}
}

func TestOpenAIVoiceSelection(t *testing.T) {
	o := NewOpenAI(config.Config{
		Credentials: config.Credentials{OpenAIAPIKey: "sk-test"},
		OpenAI: config.OpenAI{
			Voices: map[string]string{"happy": "fable"},
		},
	})

	if got := o.Voice(emotion.Happy); got != "fable" {
		t.Errorf("config override should win: got %q", got)
	}
	if got := o.Voice(emotion.Excited); got != "shimmer" {
		t.Errorf("Voice(excited) = %q, want %q", got, "shimmer")
	}
	if got := o.Voice(emotion.Emotion("bogus")); got != "alloy" {
		t.Errorf("unknown emotion should fall back to neutral voice, got %q", got)
	}
}

func TestSelect(t *testing.T) {
	cfg := config.Default()

	b, err := Select(cfg, "")
	if err != nil {
		t.Fatalf("Select default: %v", err)
	}
	if b.Name() != "local" {
		t.Errorf("default backend = %q, want local", b.Name())
	}

	if _, err := Select(cfg, "openai"); err == nil {
		t.Error("openai without API key should error")
	}

	cfg.Credentials.OpenAIAPIKey = "sk-test"
	b, err = Select(cfg, "openai")
	if err != nil {
		t.Fatalf("Select openai: %v", err)
	}
	if b.Name() != "openai" {
		t.Errorf("backend = %q, want openai", b.Name())
	}

	if _, err := Select(cfg, "festival"); err == nil {
		t.Error("unknown backend should error")
	}
}

func TestSelectErrorNamesBackend(t *testing.T) {
	_, err := Select(config.Default(), "festival")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "festival") {
		t.Errorf("error should name the backend: %v", err)
	}
}
