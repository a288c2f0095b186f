package parameter

import "time"

// Character
const (
	// CharacterSizeFloat is the character box edge in px
	CharacterSizeFloat = 20.0

	// CharacterHitRadiusFloat is the combat contact radius around the character center
	CharacterHitRadiusFloat = 10.0

	// CharacterMaxHealth is the starting and maximum health
	CharacterMaxHealth = 5

	// CharacterThrustFloat is the input acceleration magnitude in px/ms²
	CharacterThrustFloat = 0.002
)

// Dash
const (
	// DashDuration is how long the dash window stays open after activation
	DashDuration = 250 * time.Millisecond

	// DashCooldown is the minimum time between dash activations
	DashCooldown = 750 * time.Millisecond

	// DashThrustFloat is the acceleration magnitude held while dashing in px/ms²
	DashThrustFloat = 0.012
)

// Combat
const (
	// InvulnerabilityWindow suppresses contact damage after a hit
	InvulnerabilityWindow = 1000 * time.Millisecond
)

// Enemy
const (
	EnemySizeFloat      = 16.0
	EnemyHitRadiusFloat = 8.0

	// EnemyAccelerationFloat is scaled by dt (ms) when steering, giving px/ms² per ms of tick
	EnemyAccelerationFloat = 0.00005

	// SpawnInterval is the time between enemy spawns
	SpawnInterval = 3000 * time.Millisecond
)

// Motion
const (
	// ResistanceFloat is the quadratic drag coefficient (1/px)
	ResistanceFloat = 0.01

	// MinSpeedFloat snaps slower axes to rest in px/ms
	MinSpeedFloat = 0.001

	// GravityFloat is a platformer-style downward pull in px/ms², off by default
	GravityFloat = 1.0 / 1000 / 100
)

// Shroud
const (
	ShroudInitialRadiusFloat = 600.0

	// ShroudShrinkRateFloat is the radius lost per ms
	ShroudShrinkRateFloat = 0.005
)
