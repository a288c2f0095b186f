package component

import "time"

// Character is the player-controlled entity, exactly one per world
type Character struct {
	Kinetic

	// HitRadius is the combat contact radius around the center (>= 0)
	HitRadius float64

	// Health is the remaining hit points, 0 <= Health <= MaxHealth
	Health    int
	MaxHealth int

	// LastInvulnerableAt is the game time contact damage was last taken
	LastInvulnerableAt time.Duration

	// Dashing is set while the dash window is open
	Dashing bool
	// LastDashAt is the game time the current or last dash started
	LastDashAt time.Duration
	// DashSpent marks a dash whose sweep already hit, used by once-per-activation policy
	DashSpent bool

	Facing Facing
}

func (c Character) Kind() Kind { return KindCharacter }

func (c Character) Radius() float64 { return c.HitRadius }

func (c Character) HP() (int, int) { return c.Health, c.MaxHealth }

// Invulnerable reports whether now falls inside the invulnerability window
func (c Character) Invulnerable(now, window time.Duration) bool {
	return now-c.LastInvulnerableAt < window
}
