package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/emovoice/emovoice/internal/audio"
	"github.com/emovoice/emovoice/internal/config"
	"github.com/emovoice/emovoice/internal/emotion"
	"github.com/emovoice/emovoice/internal/history"
	"github.com/emovoice/emovoice/internal/modulate"
	"github.com/emovoice/emovoice/internal/paths"
	"github.com/emovoice/emovoice/internal/sentiment"
	"github.com/emovoice/emovoice/internal/synth"
)

// pipeline wires the classifier, parameter mapper, backend, cache and
// history together for one or more syntheses.
type pipeline struct {
	cfg        config.Config
	classifier *emotion.Classifier
	backend    synth.Backend
	cache      *synth.Cache
	store      history.Store
}

func newPipeline(opts runOpts) (*pipeline, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	backend, err := synth.Select(cfg, opts.Backend)
	if err != nil {
		return nil, err
	}

	cache, err := synth.OpenCache()
	if err != nil {
		// A broken cache index should not block synthesis.
		fmt.Fprintf(os.Stderr, "warning: %v, starting with an empty cache\n", err)
		cache = &synth.Cache{Dir: synth.CacheDir(), Entries: make(map[string]synth.CacheEntry)}
	}

	var store history.Store = history.Nop{}
	if cfg.HistoryEnabled() {
		s, err := history.NewSQLiteStore(history.DBPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		} else {
			store = s
		}
	}

	return &pipeline{
		cfg:        cfg,
		classifier: emotion.NewClassifier(sentiment.NewVADER()),
		backend:    backend,
		cache:      cache,
		store:      store,
	}, nil
}

func (p *pipeline) close() {
	if err := p.store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing history: %v\n", err)
	}
}

// speakCmd runs the full pipeline for a single text and exits on error.
func speakCmd(text string, opts runOpts) {
	p, err := newPipeline(opts)
	if err != nil {
		fatal("%v", err)
	}
	defer p.close()

	if err := p.speak(text, opts.Output, opts); err != nil {
		fatal("%v", err)
	}
}

// speak classifies text, derives voice parameters, synthesizes audio,
// saves the WAV and optionally plays it.
func (p *pipeline) speak(text, outPath string, opts runOpts) error {
	score, em, intensity := p.classifier.Analyze(text)
	params := modulate.ForEmotion(em, intensity)

	printAnalysis(text, score, em, intensity, params, p.cfg)

	req := synth.Request{Text: text, Emotion: em, Intensity: intensity, Params: params}

	var wavData []byte
	cached := false
	if path, ok := p.cache.Lookup(p.backend, req); ok {
		data, err := os.ReadFile(path)
		if err == nil {
			wavData = data
			cached = true
		}
	}
	if wavData == nil {
		data, err := p.backend.Synthesize(req)
		if err != nil {
			return err
		}
		wavData = data
		if err := p.cache.Add(p.backend, req, wavData); err != nil {
			fmt.Fprintf(os.Stderr, "warning: caching wav: %v\n", err)
		}
	}

	if outPath == "" {
		outPath = filepath.Join(p.cfg.OutputDir, outputFilename(em, time.Now()))
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, paths.DirPerm); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := os.WriteFile(outPath, wavData, paths.FilePerm); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if cached {
		fmt.Printf("Saved: %s (cached)\n", outPath)
	} else {
		fmt.Printf("Saved: %s\n", outPath)
	}

	if err := p.store.Log(history.Entry{
		Text:         text,
		Emotion:      string(em),
		Intensity:    intensity,
		Polarity:     score.Polarity,
		Subjectivity: score.Subjectivity,
		Rate:         params.Rate,
		Volume:       params.Volume,
		Pitch:        params.Pitch,
		Backend:      p.backend.Name(),
		OutputPath:   outPath,
		Cached:       cached,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording history: %v\n", err)
	}

	if opts.Play {
		gain := playbackGain(p.cfg, opts.Volume, params, p.backend.Name())
		if err := audio.Play(wavData, gain); err != nil {
			return fmt.Errorf("playback: %w", err)
		}
	}
	return nil
}

// playbackGain resolves the playback multiplier. The configured (or
// flag-overridden) volume scales 0-100 to 0-1. The local backend bakes
// the emotion's volume delta into the WAV; for backends that can't, the
// delta is applied here instead.
func playbackGain(cfg config.Config, volume int, params modulate.Parameters, backend string) float64 {
	if volume < 0 {
		volume = cfg.PlayVolume
	}
	gain := float64(volume) / 100
	if backend == "openai" {
		gain *= 1 + params.Volume/100
	}
	return gain
}

// outputFilename builds the default WAV name, e.g. "happy_20250828_143000.wav".
func outputFilename(em emotion.Emotion, now time.Time) string {
	return fmt.Sprintf("%s_%s.wav", em, now.Format("20060102_150405"))
}

// analyzeCmd classifies text and prints the derived parameters without
// touching any speech engine.
func analyzeCmd(args []string, opts runOpts) {
	if len(args) < 1 {
		fatal("analyze requires text\nUsage: emovoice analyze <text>")
	}
	text := strings.Join(args, " ")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fatal("%v", err)
	}

	classifier := emotion.NewClassifier(sentiment.NewVADER())
	score, em, intensity := classifier.Analyze(text)
	params := modulate.ForEmotion(em, intensity)
	printAnalysis(text, score, em, intensity, params, cfg)
}

// printAnalysis renders the classification report shown before each
// synthesis.
func printAnalysis(text string, score sentiment.Score, em emotion.Emotion, intensity float64, params modulate.Parameters, cfg config.Config) {
	settings := synth.Apply(cfg.BaseRate, cfg.BaseVolume, params)

	fmt.Printf("Text: %q\n", text)
	fmt.Printf("Emotion: %s (intensity %.2f)\n", em, intensity)
	fmt.Printf("Sentiment: polarity %+.2f, subjectivity %.2f\n", score.Polarity, score.Subjectivity)
	fmt.Printf("Voice: rate %d wpm (%+.0f%%), volume %d%% (%+.0f%%), pitch %+.0f\n",
		settings.RateWPM, params.Rate, settings.Volume, params.Volume, params.Pitch)
}
