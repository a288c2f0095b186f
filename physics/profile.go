package physics

// MotionProfile holds the drag parameters of the integrator
type MotionProfile struct {
	// Resistance is the quadratic drag coefficient: a_drag = -Resistance * v * |v| per axis (1/px)
	Resistance float64
	// MinSpeed snaps any axis slower than this to exactly zero (px/ms)
	MinSpeed float64
}
