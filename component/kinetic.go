package component

import "github.com/lixenwraith/shroud/vmath"

// Kinetic is the movable body shared by character and enemy
// All motion quantities are per millisecond
type Kinetic struct {
	// Position is the top-left corner of the bounding box
	Position vmath.Vec2
	// Size is the width/height of the bounding box (both > 0)
	Size vmath.Vec2
	// Velocity in px/ms
	Velocity vmath.Vec2
	// Acceleration in px/ms², replaced by input or steering, never accumulated
	Acceleration vmath.Vec2
}

// Bounds returns position and size of the bounding box
func (k Kinetic) Bounds() (vmath.Vec2, vmath.Vec2) {
	return k.Position, k.Size
}

// Center returns the box center, the reference point for radius contact and steering
func (k Kinetic) Center() vmath.Vec2 {
	return vmath.Add(k.Position, vmath.Scale(0.5, k.Size))
}

// Body returns the kinetic state itself
func (k Kinetic) Body() Kinetic {
	return k
}
