package parameter

import (
	"fmt"
	"time"

	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/physics"
	"github.com/lixenwraith/shroud/vmath"
	"github.com/pixil98/go-errors"
)

// Duration is a time.Duration that reads from TOML strings such as "250ms"
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// DashPolicy selects how often the dash sweep may kill during one activation
type DashPolicy uint8

const (
	// DashEveryTick sweeps on every tick of the dash window
	DashEveryTick DashPolicy = iota
	// DashOncePerActivation stops sweeping after the first tick that hits
	DashOncePerActivation
)

func (p DashPolicy) String() string {
	switch p {
	case DashEveryTick:
		return "every_tick"
	case DashOncePerActivation:
		return "once_per_dash"
	}
	return "unknown"
}

// ParseDashPolicy maps a policy name to its value
func ParseDashPolicy(s string) (DashPolicy, error) {
	switch s {
	case "every_tick":
		return DashEveryTick, nil
	case "once_per_dash":
		return DashOncePerActivation, nil
	}
	return 0, fmt.Errorf("unknown dash policy %q", s)
}

func (p *DashPolicy) UnmarshalText(text []byte) error {
	v, err := ParseDashPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p DashPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Tuning is the complete engine configuration
// Zero value is invalid, start from DefaultTuning
type Tuning struct {
	CharacterSize      vmath.Vec2 `toml:"character_size"`
	CharacterHitRadius float64    `toml:"character_hit_radius"`
	CharacterMaxHealth int        `toml:"character_max_health"`
	CharacterThrust    float64    `toml:"character_thrust"`
	Gravity            vmath.Vec2 `toml:"gravity"`

	DashDuration Duration   `toml:"dash_duration"`
	DashCooldown Duration   `toml:"dash_cooldown"`
	DashThrust   float64    `toml:"dash_thrust"`
	DashPolicy   DashPolicy `toml:"dash_policy"`

	InvulnerabilityWindow Duration `toml:"invulnerability_window"`

	EnemySize         vmath.Vec2 `toml:"enemy_size"`
	EnemyHitRadius    float64    `toml:"enemy_hit_radius"`
	EnemyAcceleration float64    `toml:"enemy_acceleration"`
	SpawnInterval     Duration   `toml:"spawn_interval"`
	SpawnOrigin       vmath.Vec2 `toml:"spawn_origin"`

	Resistance float64 `toml:"resistance"`
	MinSpeed   float64 `toml:"min_speed"`

	ShroudEnabled       bool       `toml:"shroud_enabled"`
	ShroudInitialRadius float64    `toml:"shroud_initial_radius"`
	ShroudShrinkRate    float64    `toml:"shroud_shrink_rate"`
	ShroudCenter        vmath.Vec2 `toml:"shroud_center"`

	Level Level `toml:"level"`
}

// DefaultTuning returns the built-in configuration
func DefaultTuning() Tuning {
	return Tuning{
		CharacterSize:      vmath.V(CharacterSizeFloat, CharacterSizeFloat),
		CharacterHitRadius: CharacterHitRadiusFloat,
		CharacterMaxHealth: CharacterMaxHealth,
		CharacterThrust:    CharacterThrustFloat,

		DashDuration: Duration(DashDuration),
		DashCooldown: Duration(DashCooldown),
		DashThrust:   DashThrustFloat,
		DashPolicy:   DashEveryTick,

		InvulnerabilityWindow: Duration(InvulnerabilityWindow),

		EnemySize:         vmath.V(EnemySizeFloat, EnemySizeFloat),
		EnemyHitRadius:    EnemyHitRadiusFloat,
		EnemyAcceleration: EnemyAccelerationFloat,
		SpawnInterval:     Duration(SpawnInterval),
		SpawnOrigin:       vmath.V(ArenaWidthFloat/2-EnemySizeFloat/2, -2*EnemySizeFloat),

		Resistance: ResistanceFloat,
		MinSpeed:   MinSpeedFloat,

		ShroudEnabled:       true,
		ShroudInitialRadius: ShroudInitialRadiusFloat,
		ShroudShrinkRate:    ShroudShrinkRateFloat,
		ShroudCenter:        vmath.V(ArenaWidthFloat/2, ArenaHeightFloat/2),

		Level: DefaultLevel(),
	}
}

// Validate reports every out-of-range value at once
func (t Tuning) Validate() error {
	el := errors.NewErrorList()

	positive := func(name string, v float64) {
		if v <= 0 {
			el.Add(fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			el.Add(fmt.Errorf("%s must be >= 0, got %g", name, v))
		}
	}

	positive("character_size.x", t.CharacterSize.X)
	positive("character_size.y", t.CharacterSize.Y)
	nonNegative("character_hit_radius", t.CharacterHitRadius)
	if t.CharacterMaxHealth <= 0 {
		el.Add(fmt.Errorf("character_max_health must be positive, got %d", t.CharacterMaxHealth))
	}
	nonNegative("character_thrust", t.CharacterThrust)

	positive("dash_duration", float64(t.DashDuration))
	nonNegative("dash_cooldown", float64(t.DashCooldown))
	nonNegative("dash_thrust", t.DashThrust)
	if t.DashPolicy > DashOncePerActivation {
		el.Add(fmt.Errorf("dash_policy %d is not defined", t.DashPolicy))
	}

	nonNegative("invulnerability_window", float64(t.InvulnerabilityWindow))

	positive("enemy_size.x", t.EnemySize.X)
	positive("enemy_size.y", t.EnemySize.Y)
	nonNegative("enemy_hit_radius", t.EnemyHitRadius)
	nonNegative("enemy_acceleration", t.EnemyAcceleration)
	positive("spawn_interval", float64(t.SpawnInterval))

	nonNegative("resistance", t.Resistance)
	nonNegative("min_speed", t.MinSpeed)

	nonNegative("shroud_initial_radius", t.ShroudInitialRadius)
	nonNegative("shroud_shrink_rate", t.ShroudShrinkRate)

	positive("level.size.x", t.Level.Size.X)
	positive("level.size.y", t.Level.Size.Y)
	for i, o := range t.Level.Obstacles {
		if o.Size.X <= 0 || o.Size.Y <= 0 {
			el.Add(fmt.Errorf("level obstacle %d: size must be positive, got (%g, %g)", i, o.Size.X, o.Size.Y))
		}
	}

	// An entity created inside an obstacle can never move: every step it tries still overlaps
	walls := t.Level.ObstacleEntities()
	start := component.Obstacle{Position: t.Level.Start, Size: t.CharacterSize}
	if physics.CollidesAny(start, walls) {
		el.Add(fmt.Errorf("level.start (%g, %g) overlaps an obstacle", t.Level.Start.X, t.Level.Start.Y))
	}
	spawn := component.Obstacle{Position: t.SpawnOrigin, Size: t.EnemySize}
	if physics.CollidesAny(spawn, walls) {
		el.Add(fmt.Errorf("spawn_origin (%g, %g) overlaps an obstacle", t.SpawnOrigin.X, t.SpawnOrigin.Y))
	}

	return el.Err()
}
