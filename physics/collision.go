package physics

import (
	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/vmath"
)

// BoxCollision reports whether the axis-aligned boxes [position, position+size] overlap on both axes
// Strict inequalities: boxes sharing only an edge do not collide
func BoxCollision(a, b component.Entity) bool {
	ap, as := a.Bounds()
	bp, bs := b.Bounds()
	return boxOverlap(ap, as, bp, bs)
}

func boxOverlap(ap, as, bp, bs vmath.Vec2) bool {
	return ap.X < bp.X+bs.X &&
		ap.X+as.X > bp.X &&
		ap.Y < bp.Y+bs.Y &&
		ap.Y+as.Y > bp.Y
}

// RadiusCollision reports whether the hit circles around both centers overlap
// Character/enemy contact only, obstacles are not Radial
func RadiusCollision(a, b component.Radial) bool {
	r := a.Radius() + b.Radius()
	return component.SquaredDistance(a, b) < r*r
}

// CollidesAny reports whether e box-overlaps any of others
func CollidesAny(e component.Entity, others []component.Entity) bool {
	p, s := e.Bounds()
	return boxCollidesAny(p, s, others)
}

func boxCollidesAny(p, s vmath.Vec2, others []component.Entity) bool {
	for _, o := range others {
		op, os := o.Bounds()
		if boxOverlap(p, s, op, os) {
			return true
		}
	}
	return false
}
