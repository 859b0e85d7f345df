package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

var (
	otoCtx     *oto.Context
	otoOnce    sync.Once
	otoInitErr error
)

func getContext() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		}
		var readyChan chan struct{}
		otoCtx, readyChan, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-readyChan
		}
	})
	return otoCtx, otoInitErr
}

// Play decodes WAV bytes and plays them, blocking until playback
// completes. gain is a linear multiplier: 1.0 plays as-is, below 1
// attenuates, above 1 amplifies with hard clipping.
func Play(wavData []byte, gain float64) error {
	pcm, err := DecodeWAV(wavData)
	if err != nil {
		return err
	}
	Gain(pcm, gain)
	return playStereo16(pcm)
}

// Gain scales 16-bit signed little-endian PCM samples in place by the
// given factor, clamping to the int16 range. Factor 1.0 is a no-op.
func Gain(data []byte, factor float64) {
	if factor == 1.0 {
		return
	}
	if factor < 0 {
		factor = 0
	}
	for i := 0; i+1 < len(data); i += 2 {
		sample := float64(int16(data[i]) | int16(data[i+1])<<8)
		out := clamp16(sample * factor / 32767.0)
		data[i] = byte(out)
		data[i+1] = byte(out >> 8)
	}
}

// playStereo16 plays 44100 Hz stereo 16-bit signed LE PCM through the shared context.
func playStereo16(pcm []byte) error {
	ctx, err := getContext()
	if err != nil {
		return fmt.Errorf("failed to initialize audio: %w", err)
	}

	player := ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()

	for player.IsPlaying() {
		time.Sleep(5 * time.Millisecond)
	}

	return player.Close()
}
