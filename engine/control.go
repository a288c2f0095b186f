package engine

import (
	"time"

	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/vmath"
)

// Control is one frame of player input
type Control struct {
	// Direction is the raw input axis, normalized before use; zero means no thrust
	Direction vmath.Vec2
	// Dash requests a dash activation
	Dash bool
}

// DashReady reports whether the cooldown since the last dash start has strictly elapsed
func (e *Engine) DashReady(c component.Character, now time.Duration) bool {
	return !c.Dashing && now-c.LastDashAt > e.tuning.DashCooldown.Std()
}

// ApplyControl sets the character's acceleration from input
// An accepted dash replaces acceleration with dash thrust along the input direction,
// or along the facing when no direction is held. While dashing, input is ignored
// until the dash expires. Gravity is added to every acceleration set here.
func (e *Engine) ApplyControl(w component.World, in Control, now time.Duration) component.World {
	if w.Over() {
		return w
	}

	t := e.tuning
	c := w.Character
	dir := vmath.Normalize(in.Direction)

	switch {
	case in.Dash && e.DashReady(c, now):
		aim := dir
		if aim.IsZero() {
			aim = facingVector(c.Facing)
		}
		c.Dashing = true
		c.DashSpent = false
		c.LastDashAt = now
		c.Acceleration = vmath.Add(vmath.Scale(t.DashThrust, aim), t.Gravity)
		e.logger.Debug("dash started", "at", now, "aim_x", aim.X, "aim_y", aim.Y)
	case c.Dashing:
		return w
	default:
		c.Acceleration = vmath.Add(vmath.Scale(t.CharacterThrust, dir), t.Gravity)
	}

	w.Character = c
	return w
}
