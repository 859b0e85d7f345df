package history

import "sort"

// EmotionCounts aggregates entries for one emotion label.
type EmotionCounts struct {
	Emotion      string
	Count        int
	AvgIntensity float64
	Cached       int
}

// Summarize aggregates entries into per-emotion counts, ordered by
// descending count (ties broken by label for stable output).
func Summarize(entries []Entry) []EmotionCounts {
	byEmotion := make(map[string]*EmotionCounts)
	var order []string
	for _, e := range entries {
		c, ok := byEmotion[e.Emotion]
		if !ok {
			c = &EmotionCounts{Emotion: e.Emotion}
			byEmotion[e.Emotion] = c
			order = append(order, e.Emotion)
		}
		c.Count++
		c.AvgIntensity += e.Intensity
		if e.Cached {
			c.Cached++
		}
	}

	out := make([]EmotionCounts, 0, len(byEmotion))
	for _, label := range order {
		c := byEmotion[label]
		c.AvgIntensity /= float64(c.Count)
		out = append(out, *c)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Emotion < out[j].Emotion
	})
	return out
}
