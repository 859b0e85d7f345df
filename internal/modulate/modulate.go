// Package modulate derives speech-synthesis parameter deltas from a
// detected emotion and its intensity.
package modulate

import "github.com/emovoice/emovoice/internal/emotion"

// Parameters are deltas applied to a backend's baseline voice.
// Rate and Volume are percentages (+15 = 15% faster/louder); Pitch is a
// signed shift in backend-neutral units.
type Parameters struct {
	Rate   float64
	Volume float64
	Pitch  float64
}

// IsZero reports whether every delta is zero.
func (p Parameters) IsZero() bool {
	return p.Rate == 0 && p.Volume == 0 && p.Pitch == 0
}

// baselines holds the full-intensity delta for each emotion. The table
// is static; actual output scales linearly with intensity.
var baselines = map[emotion.Emotion]Parameters{
	emotion.Happy:      {Rate: 15, Volume: 10, Pitch: 20},
	emotion.Sad:        {Rate: -15, Volume: -15, Pitch: -15},
	emotion.Frustrated: {Rate: 10, Volume: 15, Pitch: -10},
	emotion.Excited:    {Rate: 25, Volume: 20, Pitch: 25},
	emotion.Neutral:    {},
}

// Baseline returns the full-intensity parameters for an emotion.
// Unknown emotions map to the neutral (zero) baseline.
func Baseline(e emotion.Emotion) Parameters {
	return baselines[e]
}

// ForEmotion scales the emotion's baseline by intensity. Intensity is
// clamped to [0, 1], so magnitudes grow monotonically from the zero
// vector at 0 to the full baseline at 1 and signs never flip.
func ForEmotion(e emotion.Emotion, intensity float64) Parameters {
	if intensity < 0 {
		intensity = 0
	} else if intensity > 1 {
		intensity = 1
	}
	b := baselines[e]
	return Parameters{
		Rate:   b.Rate * intensity,
		Volume: b.Volume * intensity,
		Pitch:  b.Pitch * intensity,
	}
}
