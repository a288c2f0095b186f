package render

import (
	"math"

	"github.com/lixenwraith/shroud/vmath"
)

// Viewport maps world coordinates onto a cols x rows cell grid covering the arena
type Viewport struct {
	Cols, Rows int
	scaleX     float64
	scaleY     float64
}

// NewViewport fits arena into cols x rows, both clamped to at least one cell
func NewViewport(arena vmath.Vec2, cols, rows int) Viewport {
	cols, rows = max(cols, 1), max(rows, 1)
	return Viewport{
		Cols:   cols,
		Rows:   rows,
		scaleX: arena.X / float64(cols),
		scaleY: arena.Y / float64(rows),
	}
}

// ToCell returns the cell containing p; the result may lie outside the grid
func (v Viewport) ToCell(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X / v.scaleX)), int(math.Floor(p.Y / v.scaleY))
}

// InBounds reports whether the cell lies inside the grid
func (v Viewport) InBounds(x, y int) bool {
	return x >= 0 && x < v.Cols && y >= 0 && y < v.Rows
}

// CellSpan returns the cell rectangle covered by a box, inclusive on both ends
func (v Viewport) CellSpan(pos, size vmath.Vec2) (x0, y0, x1, y1 int) {
	x0, y0 = v.ToCell(pos)
	// Box edges are exclusive, nudge the far corner back inside
	x1, y1 = v.ToCell(vmath.V(pos.X+size.X-1e-9, pos.Y+size.Y-1e-9))
	return x0, y0, x1, y1
}
