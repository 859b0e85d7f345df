//go:build darwin

package synth

import (
	"fmt"
	"os/exec"
)

// speakToFile renders text to a WAV file with the macOS say command.
// say exposes rate but not volume or pitch on the command line; volume
// is applied downstream at playback and pitch is dropped.
func speakToFile(text string, s Settings, outPath string) error {
	cmd := exec.Command("say",
		"--data-format", "LEI16@22050",
		"-o", outPath,
		"-r", fmt.Sprintf("%d", s.RateWPM),
		text,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("say failed: %w\n%s", err, out)
	}
	return nil
}
