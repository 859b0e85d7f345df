// Package sentiment scores text for polarity and subjectivity. It is the
// collaborator the emotion classifier consults; everything downstream
// treats its output as authoritative beyond range clamping.
package sentiment

import "github.com/jonreiter/govader"

// Score is the aggregate sentiment of a whole text.
type Score struct {
	Polarity     float64 // -1 (negative) to 1 (positive)
	Subjectivity float64 // 0 (factual) to 1 (opinionated)
}

// Analyzer produces a Score for arbitrary text. Implementations must be
// total: any string, including empty or non-alphabetic input, yields a
// usable score.
type Analyzer interface {
	Analyze(text string) Score
}

// VADER scores text with the embedded VADER sentiment lexicon. It needs
// no network access or corpus download and is safe for concurrent use.
type VADER struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVADER builds an analyzer with the default lexicon.
func NewVADER() *VADER {
	return &VADER{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// subjectivityScale stretches the affect-token proportion onto the 0-1
// opinion scale. The raw positive+negative share tops out around
// 0.3-0.5 even for strongly opinionated exclamations, where an opinion
// scale should read 0.5-0.9; purely factual prose stays at 0 either way.
const subjectivityScale = 1.75

// Analyze scores the whole text as one unit. Polarity is VADER's
// normalized compound score. VADER has no subjectivity concept, so the
// share of affect-carrying tokens (positive + negative proportions),
// rescaled by subjectivityScale, stands in: lexicon-neutral prose
// scores near 0, loaded language near 1.
func (v *VADER) Analyze(text string) Score {
	s := v.analyzer.PolarityScores(text)
	return Clamp(Score{
		Polarity:     s.Compound,
		Subjectivity: subjectivityScale * (s.Positive + s.Negative),
	})
}

// Clamp forces a score into its documented ranges.
func Clamp(s Score) Score {
	if s.Polarity > 1 {
		s.Polarity = 1
	} else if s.Polarity < -1 {
		s.Polarity = -1
	}
	if s.Subjectivity > 1 {
		s.Subjectivity = 1
	} else if s.Subjectivity < 0 {
		s.Subjectivity = 0
	}
	return s
}
