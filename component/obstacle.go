package component

import "github.com/lixenwraith/shroud/vmath"

// Obstacle is a static box, immovable by construction
type Obstacle struct {
	Position vmath.Vec2 `toml:"position"`
	Size     vmath.Vec2 `toml:"size"`
}

func (o Obstacle) Kind() Kind { return KindObstacle }

func (o Obstacle) Bounds() (vmath.Vec2, vmath.Vec2) {
	return o.Position, o.Size
}
