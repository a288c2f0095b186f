package physics

import (
	"math"

	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/vmath"
)

// IntegrateVelocity applies quadratic drag and acceleration over dt: v += (-R*v*|v| + a) * dt
// Axes slower than the profile minimum are snapped to zero; dt <= 0 leaves the body unchanged
func IntegrateVelocity(k component.Kinetic, p MotionProfile, dt float64) component.Kinetic {
	if dt <= 0 {
		return k
	}

	drag := vmath.V(
		-p.Resistance*k.Velocity.X*math.Abs(k.Velocity.X),
		-p.Resistance*k.Velocity.Y*math.Abs(k.Velocity.Y),
	)
	v := vmath.Add(k.Velocity, vmath.Scale(dt, drag), vmath.Scale(dt, k.Acceleration))

	k.Velocity = vmath.V(snap(v.X, p.MinSpeed), snap(v.Y, p.MinSpeed))
	return k
}

func snap(v, minSpeed float64) float64 {
	if math.Abs(v) < minSpeed {
		return 0
	}
	return v
}

// IntegratePosition moves the body by velocity*dt unless the moved box overlaps any collidable
// All-or-nothing commit: on overlap the position stays put for this tick, velocity is kept
func IntegratePosition(k component.Kinetic, collidables []component.Entity, dt float64) component.Kinetic {
	if dt <= 0 || k.Velocity.IsZero() {
		return k
	}

	next := vmath.Add(k.Position, vmath.Scale(dt, k.Velocity))
	if boxCollidesAny(next, k.Size, collidables) {
		return k
	}
	k.Position = next
	return k
}

// Step runs velocity then position integration
func Step(k component.Kinetic, p MotionProfile, collidables []component.Entity, dt float64) component.Kinetic {
	k = IntegrateVelocity(k, p, dt)
	return IntegratePosition(k, collidables, dt)
}
