package component

import (
	"fmt"
	"time"

	"github.com/lixenwraith/shroud/vmath"
	"github.com/pixil98/go-errors"
)

// World is the complete game state for one tick
// Ticks never mutate a World in place, they return a new value; Obstacles is shared read-only
type World struct {
	Character Character
	Enemies   []Enemy
	Obstacles []Obstacle

	// ShroudRadius is the shrinking safe-zone radius (>= 0)
	ShroudRadius float64
	// LastSpawnAt is the game time of the last enemy spawn
	LastSpawnAt time.Duration
	Score       int

	// NextEnemyID is the id handed to the next spawned enemy
	NextEnemyID uint64
	// Tick counts completed state transitions
	Tick uint64
}

// Over reports whether the character has run out of health
func (w World) Over() bool {
	return w.Character.Health <= 0
}

// ObstacleEntities returns obstacles as collidables
func (w World) ObstacleEntities() []Entity {
	out := make([]Entity, 0, len(w.Obstacles))
	for _, o := range w.Obstacles {
		out = append(out, o)
	}
	return out
}

// EnemyCollidables returns obstacles plus every enemy except the one at index skip
func (w World) EnemyCollidables(skip int) []Entity {
	out := make([]Entity, 0, len(w.Obstacles)+len(w.Enemies))
	for _, o := range w.Obstacles {
		out = append(out, o)
	}
	for i, e := range w.Enemies {
		if i == skip {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Entities returns every entity: character first, then enemies, then obstacles
func (w World) Entities() []Entity {
	out := make([]Entity, 0, 1+len(w.Enemies)+len(w.Obstacles))
	out = append(out, w.Character)
	for _, e := range w.Enemies {
		out = append(out, e)
	}
	for _, o := range w.Obstacles {
		out = append(out, o)
	}
	return out
}

// Validate checks the structural invariants of the world
func (w World) Validate() error {
	el := errors.NewErrorList()

	for _, e := range w.Entities() {
		_, size := e.Bounds()
		if size.X <= 0 || size.Y <= 0 {
			el.Add(fmt.Errorf("%s size must be positive, got (%g, %g)", e.Kind(), size.X, size.Y))
		}
		if r, ok := e.(Radial); ok && r.Radius() < 0 {
			el.Add(fmt.Errorf("%s hit radius must be >= 0, got %g", label(e), r.Radius()))
		}
		if m, ok := e.(Movable); ok {
			b := m.Body()
			if !b.Position.IsFinite() || !b.Velocity.IsFinite() || !b.Acceleration.IsFinite() {
				el.Add(fmt.Errorf("%s motion state is not finite", label(e)))
			}
		}
		if d, ok := e.(Damageable); ok {
			health, maxHealth := d.HP()
			if maxHealth <= 0 {
				el.Add(fmt.Errorf("%s max health must be positive, got %d", label(e), maxHealth))
			}
			if health < 0 || health > maxHealth {
				el.Add(fmt.Errorf("%s health %d outside [0, %d]", label(e), health, maxHealth))
			}
		}
	}

	if w.ShroudRadius < 0 {
		el.Add(fmt.Errorf("shroud radius must be >= 0, got %g", w.ShroudRadius))
	}

	return el.Err()
}

// label names an entity in validation errors
func label(e Entity) string {
	if en, ok := e.(Enemy); ok {
		return fmt.Sprintf("enemy %d", en.ID)
	}
	return e.Kind().String()
}

// CharacterDistanceSq returns the squared distance from the character center to origin
func (w World) CharacterDistanceSq(origin vmath.Vec2) float64 {
	return vmath.DistanceSq(w.Character.Center(), origin)
}
