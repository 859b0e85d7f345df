//go:build linux

package synth

import (
	"fmt"
	"os/exec"
)

// speakToFile renders text to a WAV file with espeak-ng (or espeak).
func speakToFile(text string, s Settings, outPath string) error {
	for _, bin := range []string{"espeak-ng", "espeak"} {
		path, err := exec.LookPath(bin)
		if err != nil {
			continue
		}
		cmd := exec.Command(path, espeakArgs(s, outPath, text)...)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%s failed: %w\n%s", bin, err, out)
		}
		return nil
	}
	return fmt.Errorf("speech not available: install espeak-ng or espeak")
}

// espeakArgs maps settings onto espeak flags: -s speed in wpm, -a
// amplitude 0-200 (100 = normal), -p pitch 0-99 (50 = normal).
func espeakArgs(s Settings, outPath, text string) []string {
	pitch := 50 + int(s.Pitch)
	if pitch < 0 {
		pitch = 0
	} else if pitch > 99 {
		pitch = 99
	}
	return []string{
		"-s", fmt.Sprintf("%d", s.RateWPM),
		"-a", fmt.Sprintf("%d", s.Volume*2),
		"-p", fmt.Sprintf("%d", pitch),
		"-w", outPath,
		text,
	}
}
