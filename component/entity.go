package component

import "github.com/lixenwraith/shroud/vmath"

// Kind tags the concrete variant behind an Entity
type Kind uint8

const (
	KindCharacter Kind = iota
	KindEnemy
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindEnemy:
		return "enemy"
	case KindObstacle:
		return "obstacle"
	}
	return "unknown"
}

// Entity is anything occupying an axis-aligned box in the world
type Entity interface {
	// Kind returns the variant tag, switch on it exhaustively
	Kind() Kind

	// Bounds returns the top-left corner and the width/height of the box
	Bounds() (position, size vmath.Vec2)
}

// Movable is an entity carrying a kinetic body (character, enemy)
// Obstacles do not implement it and can never be integrated
type Movable interface {
	Entity
	Body() Kinetic
}

// Radial is an entity taking part in radius-based combat contact
type Radial interface {
	Entity
	Center() vmath.Vec2
	Radius() float64
}

// Damageable is an entity with a health pool
type Damageable interface {
	Entity
	HP() (health, maxHealth int)
}

// SquaredDistance returns the squared distance between entity centers
func SquaredDistance(a, b Radial) float64 {
	return vmath.DistanceSq(a.Center(), b.Center())
}
