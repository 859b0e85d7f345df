package modulate

import (
	"math"
	"testing"

	"github.com/emovoice/emovoice/internal/emotion"
)

func TestForEmotionFullIntensity(t *testing.T) {
	tests := []struct {
		em   emotion.Emotion
		want Parameters
	}{
		{emotion.Happy, Parameters{Rate: 15, Volume: 10, Pitch: 20}},
		{emotion.Sad, Parameters{Rate: -15, Volume: -15, Pitch: -15}},
		{emotion.Frustrated, Parameters{Rate: 10, Volume: 15, Pitch: -10}},
		{emotion.Excited, Parameters{Rate: 25, Volume: 20, Pitch: 25}},
		{emotion.Neutral, Parameters{}},
	}
	for _, tt := range tests {
		got := ForEmotion(tt.em, 1.0)
		if got != tt.want {
			t.Errorf("ForEmotion(%q, 1) = %+v, want %+v", tt.em, got, tt.want)
		}
	}
}

func TestForEmotionZeroIntensity(t *testing.T) {
	for _, em := range emotion.All {
		got := ForEmotion(em, 0)
		if !got.IsZero() {
			t.Errorf("ForEmotion(%q, 0) = %+v, want zero vector", em, got)
		}
	}
}

func TestForEmotionLinearScaling(t *testing.T) {
	for _, em := range emotion.All {
		base := Baseline(em)
		for _, intensity := range []float64{0.25, 0.5, 0.75} {
			got := ForEmotion(em, intensity)
			want := Parameters{
				Rate:   base.Rate * intensity,
				Volume: base.Volume * intensity,
				Pitch:  base.Pitch * intensity,
			}
			if got != want {
				t.Errorf("ForEmotion(%q, %v) = %+v, want %+v", em, intensity, got, want)
			}
		}
	}
}

func TestForEmotionClampsIntensity(t *testing.T) {
	if got := ForEmotion(emotion.Happy, -0.5); !got.IsZero() {
		t.Errorf("negative intensity should clamp to zero vector, got %+v", got)
	}
	if got, want := ForEmotion(emotion.Happy, 2.0), Baseline(emotion.Happy); got != want {
		t.Errorf("intensity > 1 should clamp to baseline, got %+v", got)
	}
	if got := ForEmotion(emotion.Excited, math.Inf(1)); got != Baseline(emotion.Excited) {
		t.Errorf("infinite intensity should clamp to baseline, got %+v", got)
	}
}

func TestForEmotionMonotonic(t *testing.T) {
	// For a fixed emotion, |delta| never shrinks as intensity grows.
	for _, em := range emotion.All {
		var prev Parameters
		for intensity := 0.0; intensity <= 1.0; intensity += 0.1 {
			got := ForEmotion(em, intensity)
			if math.Abs(got.Rate) < math.Abs(prev.Rate) ||
				math.Abs(got.Volume) < math.Abs(prev.Volume) ||
				math.Abs(got.Pitch) < math.Abs(prev.Pitch) {
				t.Fatalf("%q: magnitude decreased at intensity %v: %+v -> %+v",
					em, intensity, prev, got)
			}
			prev = got
		}
	}
}

func TestForEmotionSignsStable(t *testing.T) {
	// Signs match the baseline at every nonzero intensity.
	for _, em := range emotion.All {
		base := Baseline(em)
		for intensity := 0.1; intensity <= 1.0; intensity += 0.1 {
			got := ForEmotion(em, intensity)
			if got.Rate*base.Rate < 0 || got.Volume*base.Volume < 0 || got.Pitch*base.Pitch < 0 {
				t.Fatalf("%q: sign flipped at intensity %v: %+v", em, intensity, got)
			}
		}
	}
}

func TestForEmotionUnknownEmotion(t *testing.T) {
	if got := ForEmotion(emotion.Emotion("bogus"), 1.0); !got.IsZero() {
		t.Errorf("unknown emotion should map to zero vector, got %+v", got)
	}
}

func TestForEmotionIdempotent(t *testing.T) {
	a := ForEmotion(emotion.Frustrated, 0.6)
	b := ForEmotion(emotion.Frustrated, 0.6)
	if a != b {
		t.Errorf("ForEmotion not idempotent: %+v != %+v", a, b)
	}
}
