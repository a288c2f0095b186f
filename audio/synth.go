package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveform maps an oscillator phase in [0,1) to a sample in [-1,1]
type waveform func(phase float64) float64

func sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }

// saw is a falling ramp, used for the harsh damage cue
func saw(p float64) float64 { return 1 - 2*p }

// sweep is an endless oscillator whose pitch moves linearly from start to end
// over the glide, then holds at end
type sweep struct {
	wave       waveform
	start, end float64
	glide      int
	rate       beep.SampleRate

	pos   int
	phase float64
}

func newSweep(wave waveform, start, end float64, glide time.Duration, rate beep.SampleRate) *sweep {
	return &sweep{
		wave:  wave,
		start: start,
		end:   end,
		glide: rate.N(glide),
		rate:  rate,
	}
}

// freq returns the pitch at the current sample
func (s *sweep) freq() float64 {
	if s.pos >= s.glide {
		return s.end
	}
	return s.start + (s.end-s.start)*float64(s.pos)/float64(s.glide)
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := s.wave(s.phase)
		samples[i] = [2]float64{v, v}

		s.phase += s.freq() / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// gate is a trapezoid gain over n samples: linear rise over attack, linear fall over release
type gate struct {
	n, attack, release int
}

func newGate(length, attack, release time.Duration, rate beep.SampleRate) gate {
	return gate{n: rate.N(length), attack: rate.N(attack), release: rate.N(release)}
}

// at returns the gain for sample i, zero outside the gate
func (g gate) at(i int) float64 {
	if i < 0 || i >= g.n {
		return 0
	}
	gain := 1.0
	if i < g.attack {
		gain = float64(i) / float64(g.attack)
	}
	if tail := g.n - i; tail < g.release {
		gain = min(gain, float64(tail)/float64(g.release))
	}
	return gain
}

// shape cuts s to the gate length and applies the gain curve
// The result ends when the gate closes or s runs dry, whichever comes first
func (g gate) shape(s beep.Streamer) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if rem := g.n - pos; len(samples) > rem {
			samples = samples[:rem]
		}
		if len(samples) == 0 {
			return 0, false
		}
		n, _ = s.Stream(samples)
		for i := range samples[:n] {
			k := g.at(pos)
			samples[i][0] *= k
			samples[i][1] *= k
			pos++
		}
		return n, n > 0
	})
}

// newVolume wraps s with a linear gain; beep volume is log2, so zero maps to silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setLinearVolume(v, vol)
	return v
}

func setLinearVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(vol)
	v.Silent = false
}
