package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// SampleRate is the playback rate all decoded audio is resampled to.
const SampleRate = 44100

// maxWAVSize is the maximum WAV payload we'll decode (50 MB).
const maxWAVSize = 50 * 1024 * 1024

// DecodeWAV parses WAV bytes and returns stereo 16-bit signed LE PCM at
// 44100 Hz, ready for the player. PCM format (code 1) with 8-, 16- or
// 24-bit samples, mono or stereo; other rates are resampled via linear
// interpolation.
func DecodeWAV(data []byte) ([]byte, error) {
	if len(data) > maxWAVSize {
		return nil, fmt.Errorf("wav: data too large (%d bytes, max %d)", len(data), maxWAVSize)
	}
	if len(data) < 44 {
		return nil, fmt.Errorf("wav: data too short")
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("wav: not a WAV stream")
	}

	fmtOff, fmtSize, err := findChunk(data, "fmt ")
	if err != nil {
		return nil, err
	}
	if fmtSize < 16 {
		return nil, fmt.Errorf("wav: fmt chunk too short")
	}

	format := binary.LittleEndian.Uint16(data[fmtOff : fmtOff+2])
	if format != 1 {
		return nil, fmt.Errorf("wav: unsupported format %d (only PCM supported)", format)
	}
	channels := binary.LittleEndian.Uint16(data[fmtOff+2 : fmtOff+4])
	sampleRate := binary.LittleEndian.Uint32(data[fmtOff+4 : fmtOff+8])
	bitsPerSample := binary.LittleEndian.Uint16(data[fmtOff+14 : fmtOff+16])

	if channels < 1 || channels > 2 {
		return nil, fmt.Errorf("wav: unsupported channel count %d", channels)
	}
	if bitsPerSample != 8 && bitsPerSample != 16 && bitsPerSample != 24 {
		return nil, fmt.Errorf("wav: unsupported bit depth %d", bitsPerSample)
	}

	dataOff, dataSize, err := findChunk(data, "data")
	if err != nil {
		return nil, err
	}
	if dataOff+dataSize > len(data) {
		dataSize = len(data) - dataOff
	}
	raw := data[dataOff : dataOff+dataSize]

	bytesPerSample := int(bitsPerSample) / 8
	frameSize := bytesPerSample * int(channels)
	numFrames := len(raw) / frameSize
	if numFrames == 0 {
		return nil, fmt.Errorf("wav: no audio data")
	}

	// Decode to interleaved stereo float64.
	samples := make([]float64, numFrames*2)
	for i := 0; i < numFrames; i++ {
		off := i * frameSize
		left := decodeSample(raw, off, bitsPerSample)
		right := left
		if channels == 2 {
			right = decodeSample(raw, off+bytesPerSample, bitsPerSample)
		}
		samples[i*2] = left
		samples[i*2+1] = right
	}

	if sampleRate != SampleRate {
		samples = resampleLinear(samples, int(sampleRate), SampleRate)
		numFrames = len(samples) / 2
	}

	pcm := make([]byte, numFrames*4) // 2 channels x 2 bytes
	for i := 0; i < numFrames; i++ {
		left := clamp16(samples[i*2])
		right := clamp16(samples[i*2+1])
		pcm[i*4] = byte(left)
		pcm[i*4+1] = byte(left >> 8)
		pcm[i*4+2] = byte(right)
		pcm[i*4+3] = byte(right >> 8)
	}
	return pcm, nil
}

// LoadWAV reads and decodes a WAV file from disk.
func LoadWAV(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}
	return DecodeWAV(data)
}

// findChunk locates a RIFF chunk by its 4-byte ID and returns (dataOffset, dataSize).
func findChunk(data []byte, id string) (int, int, error) {
	off := 12 // skip RIFF header
	for off+8 <= len(data) {
		chunkID := string(data[off : off+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		if chunkID == id {
			return off + 8, chunkSize, nil
		}
		// Chunks are word-aligned.
		off += 8 + chunkSize
		if off%2 != 0 {
			off++
		}
	}
	return 0, 0, fmt.Errorf("wav: %q chunk not found", id)
}

// decodeSample reads one sample at the given byte offset as float64 in [-1, 1].
func decodeSample(data []byte, off int, bitsPerSample uint16) float64 {
	switch bitsPerSample {
	case 8:
		// 8-bit WAV is unsigned (128 = silence).
		return (float64(data[off]) - 128.0) / 128.0
	case 16:
		s := int16(data[off]) | int16(data[off+1])<<8
		return float64(s) / 32768.0
	case 24:
		val := int(data[off]) | int(data[off+1])<<8 | int(data[off+2])<<16
		if val >= 1<<23 {
			val -= 1 << 24
		}
		return float64(val) / 8388608.0
	}
	return 0
}

// resampleLinear resamples stereo float64 pairs from srcRate to dstRate.
func resampleLinear(samples []float64, srcRate, dstRate int) []float64 {
	srcFrames := len(samples) / 2
	ratio := float64(srcRate) / float64(dstRate)
	dstFrames := int(math.Ceil(float64(srcFrames) / ratio))
	out := make([]float64, dstFrames*2)

	for i := 0; i < dstFrames; i++ {
		srcPos := float64(i) * ratio
		idx := int(srcPos)
		frac := srcPos - float64(idx)

		if idx+1 < srcFrames {
			out[i*2] = samples[idx*2]*(1-frac) + samples[(idx+1)*2]*frac
			out[i*2+1] = samples[idx*2+1]*(1-frac) + samples[(idx+1)*2+1]*frac
		} else if idx < srcFrames {
			out[i*2] = samples[idx*2]
			out[i*2+1] = samples[idx*2+1]
		}
	}
	return out
}

// clamp16 converts a float64 in [-1, 1] to int16, clamping to avoid overflow.
func clamp16(f float64) int16 {
	s := f * 32767.0
	if s > 32767 {
		return 32767
	}
	if s < -32768 {
		return -32768
	}
	return int16(s)
}
