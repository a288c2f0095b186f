package render

import (
	"sync"

	"github.com/lixenwraith/shroud/event"
)

// HUD is the readout state fed by display intents
type HUD struct {
	mu        sync.RWMutex
	score     int
	health    int
	intensity float64
}

// NewHUD starts the readout at the given health
func NewHUD(health int) *HUD {
	return &HUD{health: health}
}

func (h *HUD) HandleIntent(in event.Intent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch in.Type {
	case event.IntentUpdateScoreDisplay:
		h.score = in.Value
	case event.IntentUpdateHealthDisplay:
		h.health = in.Value
	case event.IntentSetMusicIntensity:
		h.intensity = in.Level
	}
}

func (h *HUD) IntentTypes() []event.IntentType {
	return []event.IntentType{
		event.IntentUpdateScoreDisplay,
		event.IntentUpdateHealthDisplay,
		event.IntentSetMusicIntensity,
	}
}

// Snapshot returns score, health and intensity under one lock
func (h *HUD) Snapshot() (score, health int, intensity float64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.score, h.health, h.intensity
}
