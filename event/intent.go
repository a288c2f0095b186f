package event

// IntentType identifies a side effect requested from the host shell
type IntentType int

const (
	// IntentPlayKillSound plays the enemy kill cue
	// Trigger: dash sweep removed at least one enemy | Payload: none
	IntentPlayKillSound IntentType = iota

	// IntentPlayDamageSound plays the character hurt cue
	// Trigger: contact damage applied | Payload: none
	IntentPlayDamageSound

	// IntentUpdateScoreDisplay refreshes the score readout
	// Trigger: dash sweep removed at least one enemy | Payload: Value = new score
	IntentUpdateScoreDisplay

	// IntentUpdateHealthDisplay refreshes the health readout
	// Trigger: contact damage applied | Payload: Value = new health
	IntentUpdateHealthDisplay

	// IntentSetMusicIntensity drives the music volume from shroud pressure
	// Trigger: every tick while the shroud is enabled | Payload: Level in [0,1]
	IntentSetMusicIntensity

	IntentTypeCount
)

func (t IntentType) String() string {
	switch t {
	case IntentPlayKillSound:
		return "play_kill_sound"
	case IntentPlayDamageSound:
		return "play_damage_sound"
	case IntentUpdateScoreDisplay:
		return "update_score_display"
	case IntentUpdateHealthDisplay:
		return "update_health_display"
	case IntentSetMusicIntensity:
		return "set_music_intensity"
	}
	return "unknown"
}

// Intent is a fire-and-forget notification emitted by a tick
type Intent struct {
	Type  IntentType
	Value int
	Level float64
}

func PlayKillSound() Intent {
	return Intent{Type: IntentPlayKillSound}
}

func PlayDamageSound() Intent {
	return Intent{Type: IntentPlayDamageSound}
}

func UpdateScoreDisplay(score int) Intent {
	return Intent{Type: IntentUpdateScoreDisplay, Value: score}
}

func UpdateHealthDisplay(health int) Intent {
	return Intent{Type: IntentUpdateHealthDisplay, Value: health}
}

func SetMusicIntensity(level float64) Intent {
	return Intent{Type: IntentSetMusicIntensity, Level: level}
}
