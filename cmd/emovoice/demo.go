package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// demoTexts covers the full emotion range with one sample each.
var demoTexts = []struct {
	text     string
	filename string
}{
	{"I just got promoted! This is the best day ever!", "promotion.wav"},
	{"I'm feeling really down today. Nothing seems to go right.", "sad_day.wav"},
	{"The meeting is at 3 PM in conference room B.", "meeting_info.wav"},
	{"Why does this keep happening? I'm so frustrated!", "frustrated.wav"},
	{"Oh my goodness, I can't believe we won!", "excitement.wav"},
}

// demoCmd synthesizes each sample text into a fixed filename under the
// output directory.
func demoCmd(opts runOpts) {
	p, err := newPipeline(opts)
	if err != nil {
		fatal("%v", err)
	}
	defer p.close()

	fmt.Println("Demo mode: processing sample texts...")
	failed := 0
	for _, d := range demoTexts {
		fmt.Println()
		outPath := filepath.Join(p.cfg.OutputDir, d.filename)
		if err := p.speak(d.text, outPath, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
