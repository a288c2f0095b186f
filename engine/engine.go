package engine

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/parameter"
	"github.com/lixenwraith/shroud/physics"
	"github.com/lixenwraith/shroud/vmath"
)

// Engine runs the per-tick state transition for one tuning
// It holds no game state; every World flows in and out of Tick by value
type Engine struct {
	tuning  parameter.Tuning
	profile physics.MotionProfile
	logger  *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger routes engine diagnostics to l
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New validates the tuning and builds an engine
func New(t parameter.Tuning, opts ...Option) (*Engine, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	e := &Engine{
		tuning:  t,
		profile: physics.MotionProfile{Resistance: t.Resistance, MinSpeed: t.MinSpeed},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Tuning returns the configuration the engine was built with
func (e *Engine) Tuning() parameter.Tuning {
	return e.tuning
}

// NewWorld builds the initial world from the tuning's level
// Dash and invulnerability timestamps start one full window in the past so neither is pending at t=0
func (e *Engine) NewWorld() component.World {
	t := e.tuning
	return component.World{
		Character: component.Character{
			Kinetic: component.Kinetic{
				Position: t.Level.Start,
				Size:     t.CharacterSize,
			},
			HitRadius:          t.CharacterHitRadius,
			Health:             t.CharacterMaxHealth,
			MaxHealth:          t.CharacterMaxHealth,
			LastInvulnerableAt: -t.InvulnerabilityWindow.Std(),
			LastDashAt:         -t.DashCooldown.Std(),
			Facing:             component.FacingRight,
		},
		Obstacles:    slices.Clone(t.Level.Obstacles),
		ShroudRadius: t.ShroudInitialRadius,
		NextEnemyID:  1,
	}
}

// facingVector is the dash direction used when no input direction is held
func facingVector(f component.Facing) vmath.Vec2 {
	if f == component.FacingLeft {
		return vmath.V(-1, 0)
	}
	return vmath.V(1, 0)
}
