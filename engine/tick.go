package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/event"
	"github.com/lixenwraith/shroud/parameter"
	"github.com/lixenwraith/shroud/physics"
	"github.com/lixenwraith/shroud/system"
	"github.com/lixenwraith/shroud/vmath"
)

// Tick advances the world by dt at game time now and returns the next world with the intents it produced
//
// Phase order is fixed:
//  1. dash expiry
//  2. character motion against obstacles
//  3. enemy steering and motion against obstacles and the other enemies as they stood before this tick
//  4. dash sweep
//  5. enemy spawn
//  6. shroud shrink and music intensity
//  7. contact damage
//
// The input world is never modified. A world whose character has no health left is returned unchanged.
// dt <= 0 moves nothing, timers and combat still evaluate against now.
// Tick panics when the input world violates its structural invariants.
func (e *Engine) Tick(w component.World, dt, now time.Duration) (component.World, []event.Intent) {
	if err := w.Validate(); err != nil {
		panic(fmt.Sprintf("engine: invalid world at tick %d: %v", w.Tick, err))
	}
	if w.Over() {
		return w, nil
	}

	t := e.tuning
	ms := vmath.Millis(dt)
	if ms < 0 {
		ms = 0
	}

	next := w
	next.Tick++
	var intents []event.Intent

	// Dash expiry
	c, expired := system.ExpireDash(w.Character, now, t.DashDuration.Std())
	if expired {
		e.logger.Debug("dash expired", "tick", next.Tick)
	}

	// Character motion
	c.Kinetic = physics.Step(c.Kinetic, e.profile, w.ObstacleEntities(), ms)
	c.Facing = component.FacingFrom(c.Facing, c.Velocity.X)

	// Enemy motion, collidables come from the input snapshot so results do not depend on slice order
	target := c.Center()
	enemies := make([]component.Enemy, len(w.Enemies))
	for i, en := range w.Enemies {
		en = system.Steer(en, target, t.EnemyAcceleration, ms)
		en.Kinetic = physics.Step(en.Kinetic, e.profile, w.EnemyCollidables(i), ms)
		en.Facing = component.FacingFrom(en.Facing, en.Velocity.X)
		enemies[i] = en
	}

	// Dash sweep
	if system.SweepActive(c, t.DashPolicy) {
		survivors, hit := system.DashSweep(c, enemies)
		if len(hit) > 0 {
			enemies = survivors
			next.Score += len(hit)
			if t.DashPolicy == parameter.DashOncePerActivation {
				c.DashSpent = true
			}
			intents = append(intents, event.PlayKillSound(), event.UpdateScoreDisplay(next.Score))
			e.logger.Debug("dash sweep", "tick", next.Tick, "kills", len(hit), "score", next.Score)
		}
	}

	// Spawn
	if system.ShouldSpawn(w.LastSpawnAt, now, t.SpawnInterval.Std()) {
		enemies = append(enemies, system.SpawnEnemy(next.NextEnemyID, t))
		e.logger.Debug("enemy spawned", "tick", next.Tick, "id", next.NextEnemyID)
		next.NextEnemyID++
		next.LastSpawnAt = now
	}

	// Shroud
	if t.ShroudEnabled {
		next.ShroudRadius = system.ShrinkShroud(w.ShroudRadius, t.ShroudShrinkRate, ms)
		level := system.MusicIntensity(vmath.DistanceSq(c.Center(), t.ShroudCenter), next.ShroudRadius)
		intents = append(intents, event.SetMusicIntensity(level))
	}

	// Contact damage
	c, damaged := system.ContactDamage(c, enemies, now, t.InvulnerabilityWindow.Std())
	if damaged {
		intents = append(intents, event.PlayDamageSound(), event.UpdateHealthDisplay(c.Health))
		e.logger.Debug("contact damage", "tick", next.Tick, "health", c.Health)
		if c.Health == 0 {
			e.logger.Info("character defeated", "tick", next.Tick, "score", next.Score)
		}
	}

	next.Character = c
	next.Enemies = enemies
	return next, intents
}
