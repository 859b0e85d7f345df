// Package emotion maps text to one of five emotion labels plus an
// intensity in [0, 1], using a sentiment analyzer as input.
package emotion

import (
	"strings"

	"github.com/emovoice/emovoice/internal/sentiment"
)

// Emotion is a detected emotional category.
type Emotion string

const (
	Happy      Emotion = "happy"
	Sad        Emotion = "sad"
	Frustrated Emotion = "frustrated"
	Excited    Emotion = "excited"
	Neutral    Emotion = "neutral"
)

// All lists every emotion in display order.
var All = []Emotion{Happy, Sad, Frustrated, Excited, Neutral}

// Classification thresholds. Polarity at or beyond ±strongPolarity
// counts as strong; subjectivity at or above highSubjectivity counts as
// emotionally loaded language.
const (
	strongPolarity   = 0.45
	highSubjectivity = 0.4
	nearZeroPolarity = 0.1
	lowSubjectivity  = 0.3
)

// Classifier turns raw text into an emotion label and intensity.
type Classifier struct {
	analyzer sentiment.Analyzer
}

// NewClassifier returns a classifier backed by the given analyzer.
func NewClassifier(a sentiment.Analyzer) *Classifier {
	return &Classifier{analyzer: a}
}

// Classify returns the emotion and intensity for text. It is total:
// any input produces a result. Empty or whitespace-only text is Neutral
// at intensity 0 without consulting the analyzer.
func (c *Classifier) Classify(text string) (Emotion, float64) {
	_, em, intensity := c.Analyze(text)
	return em, intensity
}

// Analyze is Classify plus the underlying sentiment score, for callers
// that report or record the raw polarity and subjectivity.
func (c *Classifier) Analyze(text string) (sentiment.Score, Emotion, float64) {
	if strings.TrimSpace(text) == "" {
		return sentiment.Score{}, Neutral, 0
	}
	score := sentiment.Clamp(c.analyzer.Analyze(text))
	em, intensity := FromScore(score)
	return score, em, intensity
}

// FromScore applies the classification decision table to a sentiment
// score. Rules are checked in priority order; the first match wins.
func FromScore(s sentiment.Score) (Emotion, float64) {
	s = sentiment.Clamp(s)
	intensity := Intensity(s)

	abs := s.Polarity
	if abs < 0 {
		abs = -abs
	}

	switch {
	case s.Subjectivity < lowSubjectivity && abs < nearZeroPolarity:
		// Factual, even-keeled text.
		return Neutral, intensity
	case s.Polarity <= -strongPolarity && s.Subjectivity >= highSubjectivity:
		// Strongly negative and emotionally loaded: distinct from
		// plain sadness.
		return Frustrated, intensity
	case s.Polarity < 0:
		return Sad, intensity
	case s.Polarity >= strongPolarity && s.Subjectivity >= highSubjectivity:
		return Excited, intensity
	case s.Polarity > 0:
		return Happy, intensity
	default:
		return Neutral, intensity
	}
}

// Intensity blends polarity magnitude and subjectivity into [0, 1]:
// |polarity| + 0.3*subjectivity, clamped. Zero when both inputs are
// zero, and saturates as both approach their maxima. The blend weights
// polarity as the dominant signal; subjectivity only amplifies.
func Intensity(s sentiment.Score) float64 {
	abs := s.Polarity
	if abs < 0 {
		abs = -abs
	}
	v := abs + 0.3*s.Subjectivity
	if v > 1 {
		return 1
	}
	return v
}
