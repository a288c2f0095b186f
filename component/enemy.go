package component

// Enemy is a steered entity chasing the character
type Enemy struct {
	// ID is assigned in spawn order and never reused within a world
	ID uint64

	Kinetic

	// HitRadius is the combat contact radius around the center (>= 0)
	HitRadius float64

	Facing Facing
}

func (e Enemy) Kind() Kind { return KindEnemy }

func (e Enemy) Radius() float64 { return e.HitRadius }
