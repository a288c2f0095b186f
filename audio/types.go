package audio

// Sound identifies a one-shot sound effect
type Sound int

const (
	SoundKill   Sound = iota // Dash sweep removed enemies
	SoundDamage              // Character took contact damage
	soundCount
)

func (s Sound) String() string {
	switch s {
	case SoundKill:
		return "kill"
	case SoundDamage:
		return "damage"
	}
	return "unknown"
}
