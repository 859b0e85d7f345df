//go:build windows

package synth

import (
	"fmt"
	"math"
	"os/exec"
)

// speakToFile renders text to a WAV file through System.Speech via
// PowerShell. The synthesizer exposes rate (-10..10) and volume (0-100);
// pitch has no property and is dropped.
func speakToFile(text string, s Settings, outPath string) error {
	cmd := exec.Command("powershell", "-NoProfile", "-Command", sayToFileScript(text, s, outPath))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("speech failed: %w\n%s", err, out)
	}
	return nil
}

// sayToFileScript builds the PowerShell script for one utterance.
// The wpm rate is mapped onto the synthesizer's -10..10 scale relative
// to its ~150 wpm midpoint.
func sayToFileScript(text string, s Settings, outPath string) string {
	rate := int(math.Round(float64(s.RateWPM-150) / 15))
	if rate < -10 {
		rate = -10
	} else if rate > 10 {
		rate = 10
	}
	return fmt.Sprintf(`Add-Type -AssemblyName System.Speech; `+
		`$s = New-Object System.Speech.Synthesis.SpeechSynthesizer; `+
		`$s.Rate = %d; `+
		`$s.Volume = %d; `+
		`$s.SetOutputToWaveFile('%s'); `+
		`$s.Speak('%s'); `+
		`$s.Dispose()`,
		rate, s.Volume, escapePowerShell(outPath), escapePowerShell(text))
}
