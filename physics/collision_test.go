package physics

import (
	"testing"

	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/vmath"
)

func box(x, y, w, h float64) component.Obstacle {
	return component.Obstacle{Position: vmath.V(x, y), Size: vmath.V(w, h)}
}

func enemyAt(x, y, size, radius float64) component.Enemy {
	return component.Enemy{
		Kinetic:   component.Kinetic{Position: vmath.V(x, y), Size: vmath.V(size, size)},
		HitRadius: radius,
	}
}

func TestBoxCollision(t *testing.T) {
	tests := []struct {
		name string
		a, b component.Obstacle
		want bool
	}{
		{"overlapping", box(0, 0, 10, 10), box(5, 5, 10, 10), true},
		{"contained", box(0, 0, 10, 10), box(2, 2, 2, 2), true},
		{"shared vertical edge", box(0, 0, 10, 10), box(10, 0, 10, 10), false},
		{"shared horizontal edge", box(0, 0, 10, 10), box(0, 10, 10, 10), false},
		{"shared corner", box(0, 0, 10, 10), box(10, 10, 10, 10), false},
		{"separated on x", box(0, 0, 10, 10), box(20, 0, 10, 10), false},
		{"overlap on x only", box(0, 0, 10, 10), box(5, 30, 10, 10), false},
		{"sliver overlap", box(0, 0, 10, 10), box(9.999, 0, 10, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoxCollision(tt.a, tt.b); got != tt.want {
				t.Errorf("BoxCollision(a, b) = %v, want %v", got, tt.want)
			}
			// Symmetry
			if got := BoxCollision(tt.b, tt.a); got != tt.want {
				t.Errorf("BoxCollision(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxCollisionMixedKinds(t *testing.T) {
	e := enemyAt(95, 95, 10, 5)
	o := box(100, 100, 50, 50)
	if !BoxCollision(e, o) || !BoxCollision(o, e) {
		t.Error("expected enemy and obstacle boxes to overlap")
	}
}

func TestRadiusCollision(t *testing.T) {
	c := component.Character{
		Kinetic:   component.Kinetic{Position: vmath.V(0, 0), Size: vmath.V(10, 10)},
		HitRadius: 10,
	}

	tests := []struct {
		name string
		e    component.Enemy
		want bool
	}{
		{"near", enemyAt(5, 0, 10, 5), true},
		{"far", enemyAt(100, 100, 10, 5), false},
		{"exactly touching", enemyAt(15, 0, 10, 5), false},
		{"just inside", enemyAt(14.9, 0, 10, 5), true},
		{"same center", enemyAt(0, 0, 10, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RadiusCollision(c, tt.e); got != tt.want {
				t.Errorf("RadiusCollision = %v, want %v", got, tt.want)
			}
			if got := RadiusCollision(tt.e, c); got != tt.want {
				t.Errorf("RadiusCollision reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRadiusCollisionUsesCenters(t *testing.T) {
	// Top-left corners 20 apart, but the large box center sits 5 from the small one
	c := component.Character{
		Kinetic:   component.Kinetic{Position: vmath.V(0, 0), Size: vmath.V(40, 40)},
		HitRadius: 3,
	}
	e := enemyAt(20, 23, 4, 3)
	// centers: (20,20) and (22,25) -> distance² = 29 < 36
	if !RadiusCollision(c, e) {
		t.Error("expected center-based radius contact")
	}
}

func TestCollidesAny(t *testing.T) {
	e := enemyAt(0, 0, 10, 0)
	others := []component.Entity{box(10, 0, 5, 5), box(50, 50, 5, 5)}
	if CollidesAny(e, others) {
		t.Error("edge contact must not count")
	}
	others = append(others, enemyAt(9, 9, 10, 0))
	if !CollidesAny(e, others) {
		t.Error("expected overlap with the last entity")
	}
	if CollidesAny(e, nil) {
		t.Error("nothing to collide with")
	}
}
