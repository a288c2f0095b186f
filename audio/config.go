package audio

import (
	"fmt"
	"strconv"

	"github.com/pixil98/go-errors"
)

// Environment variables read by LoadConfig
const (
	EnvEnabled      = "SHROUD_AUDIO_ENABLED"
	EnvMasterVolume = "SHROUD_AUDIO_MASTER_VOLUME"
	EnvMusicVolume  = "SHROUD_AUDIO_MUSIC_VOLUME"
	EnvSampleRate   = "SHROUD_AUDIO_SAMPLE_RATE"
)

// Config holds audio output settings, volumes are linear in [0,1]
type Config struct {
	Enabled       bool
	MasterVolume  float64
	MusicVolume   float64
	SampleRate    int
	EffectVolumes map[Sound]float64
}

// DefaultConfig returns the built-in audio settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		MusicVolume:  0.4,
		SampleRate:   44100,
		EffectVolumes: map[Sound]float64{
			SoundKill:   1.0,
			SoundDamage: 0.8,
		},
	}
}

// LoadConfig overlays SHROUD_AUDIO_* variables on the defaults
// Every malformed value is reported; valid ones are still applied
func LoadConfig(getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()
	el := errors.NewErrorList()

	if v := getenv(EnvEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			el.Add(fmt.Errorf("%s: %w", EnvEnabled, err))
		} else {
			cfg.Enabled = b
		}
	}

	// Volumes are given as 0-100
	volume := func(name string, dst *float64) {
		v := getenv(name)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			el.Add(fmt.Errorf("%s: %w", name, err))
			return
		}
		*dst = float64(n) / 100.0
	}
	volume(EnvMasterVolume, &cfg.MasterVolume)
	volume(EnvMusicVolume, &cfg.MusicVolume)

	if v := getenv(EnvSampleRate); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			el.Add(fmt.Errorf("%s: %w", EnvSampleRate, err))
		} else {
			cfg.SampleRate = n
		}
	}

	if err := cfg.Validate(); err != nil {
		el.Add(err)
	}
	return cfg, el.Err()
}

// Validate reports every out-of-range setting
func (c *Config) Validate() error {
	el := errors.NewErrorList()

	inUnit := func(name string, v float64) {
		if v < 0 || v > 1 {
			el.Add(fmt.Errorf("%s must be in [0, 1], got %g", name, v))
		}
	}
	inUnit("master volume", c.MasterVolume)
	inUnit("music volume", c.MusicVolume)
	for s, v := range c.EffectVolumes {
		inUnit(s.String()+" volume", v)
	}

	if c.SampleRate < 8000 || c.SampleRate > 192000 {
		el.Add(fmt.Errorf("sample rate must be in [8000, 192000], got %d", c.SampleRate))
	}

	return el.Err()
}
