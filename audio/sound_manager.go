package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/shroud/event"
)

// SoundManager plays effects and the intensity-driven music loop
// It consumes sound and music intents; every call is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	music       *effects.Volume
	musicCtrl   *beep.Ctrl
	drone       *DroneGenerator
	intensity   float64
	initialized bool

	// played counts effects handed to the mixer, by sound
	played [soundCount]int
}

// NewSoundManager creates a new sound manager, nil cfg selects the defaults
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the music loop
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	sm.drone = NewDroneGenerator(rate)
	sm.drone.SetTension(sm.intensity)
	sm.musicCtrl = &beep.Ctrl{Streamer: sm.drone}
	sm.music = newVolume(sm.musicCtrl, musicGain(sm.cfg, sm.intensity))
	sm.mixer.Add(sm.music)

	speaker.Play(sm.mixer)
	sm.initialized = true
	slog.Info("audio initialized", "sample_rate", sm.cfg.SampleRate)
	return nil
}

// Cleanup stops all sounds; the speaker stays open but silent
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.musicCtrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// SetPaused pauses or resumes the music loop
func (sm *SoundManager) SetPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.musicCtrl.Paused = paused
	speaker.Unlock()
}

// Play queues a one-shot sound effect
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[s]++
}

// SetMusicIntensity sets the music level and tempo, clamped to [0,1]
// The level is kept while uninitialized and applied when the loop starts
func (sm *SoundManager) SetMusicIntensity(level float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.intensity = max(0, min(1, level))
	if !sm.initialized {
		return
	}
	speaker.Lock()
	setLinearVolume(sm.music, musicGain(sm.cfg, sm.intensity))
	sm.drone.SetTension(sm.intensity)
	speaker.Unlock()
}

// MusicIntensity returns the last intensity set
func (sm *SoundManager) MusicIntensity() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.intensity
}

// Played returns how many times s reached the mixer
func (sm *SoundManager) Played(s Sound) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[s]
}

// HandleIntent implements event.Handler
func (sm *SoundManager) HandleIntent(in event.Intent) {
	switch in.Type {
	case event.IntentPlayKillSound:
		sm.Play(SoundKill)
	case event.IntentPlayDamageSound:
		sm.Play(SoundDamage)
	case event.IntentSetMusicIntensity:
		sm.SetMusicIntensity(in.Level)
	}
}

// IntentTypes implements event.Handler
func (sm *SoundManager) IntentTypes() []event.IntentType {
	return []event.IntentType{
		event.IntentPlayKillSound,
		event.IntentPlayDamageSound,
		event.IntentSetMusicIntensity,
	}
}
