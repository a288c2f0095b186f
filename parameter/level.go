package parameter

import (
	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/vmath"
)

// Default arena dimensions in px
const (
	ArenaWidthFloat  = 800.0
	ArenaHeightFloat = 480.0
	WallThickness    = 10.0
)

// Level is the static layout a world is created from
type Level struct {
	// Size is the arena extent used by renderers, entities are not clamped to it
	Size vmath.Vec2 `toml:"size"`
	// Start is the character's initial top-left position
	Start     vmath.Vec2           `toml:"start"`
	Obstacles []component.Obstacle `toml:"obstacles"`
}

// DefaultLevel returns the walled arena, open at the top where enemies enter
func DefaultLevel() Level {
	w, h, t := ArenaWidthFloat, ArenaHeightFloat, WallThickness
	wall := func(x, y, ww, hh float64) component.Obstacle {
		return component.Obstacle{Position: vmath.V(x, y), Size: vmath.V(ww, hh)}
	}
	return Level{
		Size:  vmath.V(w, h),
		Start: vmath.V(w/2-CharacterSizeFloat/2, h/2-CharacterSizeFloat/2),
		Obstacles: []component.Obstacle{
			wall(0, 0, t, h),       // left
			wall(w-t, 0, t, h),     // right
			wall(0, h-t, w, t),     // bottom
			wall(160, 120, 40, 40), // pillars
			wall(600, 120, 40, 40),
			wall(160, 320, 40, 40),
			wall(600, 320, 40, 40),
		},
	}
}

// ObstacleEntities returns the layout as collidables
func (l Level) ObstacleEntities() []component.Entity {
	out := make([]component.Entity, 0, len(l.Obstacles))
	for _, o := range l.Obstacles {
		out = append(out, o)
	}
	return out
}
