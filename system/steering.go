package system

import (
	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/vmath"
)

// Steer recomputes enemy acceleration as a constant pull toward target: accel * dt * dir
// Acceleration is replaced, not accumulated; an enemy centered on the target gets zero
// No prediction, path-finding or obstacle avoidance
func Steer(e component.Enemy, target vmath.Vec2, accel, dt float64) component.Enemy {
	dir := vmath.Normalize(vmath.Displacement(e.Center(), target))
	e.Acceleration = vmath.Scale(accel*dt, dir)
	return e
}
