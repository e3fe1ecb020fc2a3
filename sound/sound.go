// Package sound synthesizes the short PCM cues the mini games share,
// such as beeps and failure buzzes, and plays them through an Ebitengine
// audio context. Tones are rendered once up front; playback just rewinds a
// cached player.
package sound

import (
	"math"
	"time"
)

// SampleRate is the fixed output rate for all rendered PCM.
const SampleRate = 44100

// bytesPerFrame is one 16-bit sample per stereo channel.
const bytesPerFrame = 4

// Waveform selects the oscillator shape for a Tone.
type Waveform uint8

const (
	WaveSine     Waveform = iota // pure tone
	WaveSquare                   // classic chip beep
	WaveTriangle                 // softer chip tone
	WaveSawtooth                 // buzzy
	WaveNoise                    // pitchless; Freq is ignored
)

// Tone describes one synthesized cue.
type Tone struct {
	Freq     float64       // oscillator frequency in Hz
	Duration time.Duration // rendered length
	Volume   float64       // amplitude in [0, 1]; values outside are clamped
	Wave     Waveform
	Decay    float64 // exponential decay rate per second; 0 keeps a flat envelope
}

// Render synthesizes the tone as 16-bit little-endian stereo PCM at
// SampleRate, ready for an Ebitengine audio player.
func Render(t Tone) []byte {
	n := int(float64(SampleRate) * t.Duration.Seconds())
	buf := make([]byte, n*bytesPerFrame)

	vol := t.Volume
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}

	// Deterministic noise source so renders are reproducible.
	rng := uint32(1)

	for i := 0; i < n; i++ {
		ts := float64(i) / SampleRate
		env := 1.0
		if t.Decay > 0 {
			env = math.Exp(-t.Decay * ts)
		}
		v := int16(oscillate(t.Wave, t.Freq, ts, &rng) * vol * env * 28000)
		idx := i * bytesPerFrame
		for ch := 0; ch < 2; ch++ {
			buf[idx+ch*2] = byte(v)
			buf[idx+ch*2+1] = byte(v >> 8)
		}
	}
	return buf
}

// RenderSequence renders the tones back to back into one PCM buffer, for
// jingles and background loops.
func RenderSequence(tones []Tone) []byte {
	var total int
	for _, t := range tones {
		total += int(float64(SampleRate)*t.Duration.Seconds()) * bytesPerFrame
	}
	buf := make([]byte, 0, total)
	for _, t := range tones {
		buf = append(buf, Render(t)...)
	}
	return buf
}

// oscillate returns one sample in [-1, 1] at time ts.
func oscillate(w Waveform, freq, ts float64, rng *uint32) float64 {
	phase := freq * ts
	frac := phase - math.Floor(phase)
	switch w {
	case WaveSquare:
		if frac < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(frac-0.5)
	case WaveSawtooth:
		return 2*frac - 1
	case WaveNoise:
		*rng = *rng*1664525 + 1013904223
		return float64(int32(*rng)) / math.MaxInt32
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
