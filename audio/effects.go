package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

const (
	killNoteDuration = 70 * time.Millisecond
	killAttack       = 5 * time.Millisecond
	killRelease      = 50 * time.Millisecond

	damageDuration = 180 * time.Millisecond
	damageAttack   = 10 * time.Millisecond
	damageRelease  = 120 * time.Millisecond
	// Damage buzz falls from damageHighHz to damageLowHz over its length
	damageHighHz = 150.0
	damageLowHz  = 70.0

	// Drone beat at zero and full tension: 100 and 150 BPM
	droneBeatCalm  = 600 * time.Millisecond
	droneBeatTense = 400 * time.Millisecond
	droneRootHz    = 55.0
	droneFifthHz   = 82.5
	// Kick pitch decays from kickBaseHz+kickDropHz toward kickBaseHz
	kickBaseHz = 50.0
	kickDropHz = 130.0
	kickDecay  = 25.0

	// musicFloor is the music gain at zero intensity
	musicFloor = 0.15
)

// CreateKillSound generates a rising two-note chime
func CreateKillSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	g := newGate(killNoteDuration, killAttack, killRelease, rate)

	note := func(freq float64) beep.Streamer {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			// Above Nyquist for a low sample rate, the sweep aliases instead of failing
			return g.shape(newSweep(sine, freq, freq, 0, rate))
		}
		return g.shape(tone)
	}

	seq := beep.Seq(note(987.77), note(1318.51))
	return newVolume(seq, cfg.EffectVolumes[SoundKill]*cfg.MasterVolume)
}

// CreateDamageSound generates a short falling saw buzz
func CreateDamageSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	buzz := newSweep(saw, damageHighHz, damageLowHz, damageDuration, rate)
	shaped := newGate(damageDuration, damageAttack, damageRelease, rate).shape(buzz)
	return newVolume(shaped, cfg.EffectVolumes[SoundDamage]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for the given sound, nil for unknown
func GetSoundEffect(s Sound, cfg *Config) beep.Streamer {
	switch s {
	case SoundKill:
		return CreateKillSound(cfg)
	case SoundDamage:
		return CreateDamageSound(cfg)
	}
	return nil
}

// musicGain maps intensity in [0,1] to linear music gain
func musicGain(cfg *Config, intensity float64) float64 {
	intensity = math.Max(0, math.Min(1, intensity))
	return cfg.MasterVolume * cfg.MusicVolume * (musicFloor + (1-musicFloor)*intensity)
}

// DroneGenerator is the endless background loop: a decaying kick on every beat over a low root
// Tension quickens the beat and fades in a fifth above the root; change it under speaker.Lock
type DroneGenerator struct {
	rate    beep.SampleRate
	tension float64

	root, fifth *sweep
	scratch     [][2]float64

	beatPos   int
	kickPhase float64
}

// NewDroneGenerator creates the music loop generator at zero tension
func NewDroneGenerator(rate beep.SampleRate) *DroneGenerator {
	return &DroneGenerator{
		rate:  rate,
		root:  newSweep(sine, droneRootHz, droneRootHz, 0, rate),
		fifth: newSweep(sine, droneFifthHz, droneFifthHz, 0, rate),
	}
}

// SetTension sets the loop tension, clamped to [0,1]
func (g *DroneGenerator) SetTension(level float64) {
	g.tension = max(0, min(1, level))
}

// beatLength returns the current beat in samples
func (g *DroneGenerator) beatLength() int {
	span := float64(droneBeatCalm - droneBeatTense)
	return g.rate.N(droneBeatCalm - time.Duration(span*g.tension))
}

func (g *DroneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	g.root.Stream(samples)
	if len(g.scratch) < len(samples) {
		g.scratch = make([][2]float64, len(samples))
	}
	over := g.scratch[:len(samples)]
	g.fifth.Stream(over)

	beat := g.beatLength()
	for i := range samples {
		if g.beatPos >= beat {
			g.beatPos = 0
			g.kickPhase = 0
		}
		t := float64(g.beatPos) / float64(g.rate)
		decay := math.Exp(-t * kickDecay)
		kick := 0.4 * decay * sine(g.kickPhase)
		g.kickPhase += (kickBaseHz + kickDropHz*decay) / float64(g.rate)
		g.kickPhase -= math.Floor(g.kickPhase)

		v := kick + 0.15*samples[i][0] + 0.08*g.tension*over[i][0]
		samples[i] = [2]float64{v, v}
		g.beatPos++
	}
	return len(samples), true
}

func (g *DroneGenerator) Err() error { return nil }
