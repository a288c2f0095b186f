package render

import (
	"testing"

	"github.com/lixenwraith/shroud/vmath"
	"github.com/pixil98/go-testutil"
)

func TestViewportToCell(t *testing.T) {
	vp := NewViewport(vmath.V(800, 480), 80, 24)

	tests := []struct {
		name  string
		p     vmath.Vec2
		wantX int
		wantY int
	}{
		{"origin", vmath.V(0, 0), 0, 0},
		{"inside first cell", vmath.V(9.9, 19.9), 0, 0},
		{"second cell", vmath.V(10, 20), 1, 1},
		{"far corner", vmath.V(799, 479), 79, 23},
		{"above arena", vmath.V(400, -32), 40, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := vp.ToCell(tt.p)
			testutil.AssertEqual(t, "x", x, tt.wantX)
			testutil.AssertEqual(t, "y", y, tt.wantY)
		})
	}
}

func TestViewportInBounds(t *testing.T) {
	vp := NewViewport(vmath.V(800, 480), 80, 24)
	testutil.AssertEqual(t, "inside", vp.InBounds(79, 23), true)
	testutil.AssertEqual(t, "past right", vp.InBounds(80, 0), false)
	testutil.AssertEqual(t, "above", vp.InBounds(0, -1), false)
}

func TestViewportCellSpan(t *testing.T) {
	vp := NewViewport(vmath.V(800, 480), 80, 24)
	x0, y0, x1, y1 := vp.CellSpan(vmath.V(0, 0), vmath.V(10, 480))
	testutil.AssertEqual(t, "x0", x0, 0)
	testutil.AssertEqual(t, "y0", y0, 0)
	testutil.AssertEqual(t, "x1", x1, 0)
	testutil.AssertEqual(t, "y1", y1, 23)
}

func TestViewportDegenerateSize(t *testing.T) {
	vp := NewViewport(vmath.V(800, 480), 0, -3)
	testutil.AssertEqual(t, "cols", vp.Cols, 1)
	testutil.AssertEqual(t, "rows", vp.Rows, 1)
}
