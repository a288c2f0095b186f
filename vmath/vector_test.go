package vmath

import (
	"math"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

const epsilon = 1e-9

func TestAdd(t *testing.T) {
	testutil.AssertEqual(t, "pair", Add(V(1, 2), V(3, 4)), V(4, 6))
	testutil.AssertEqual(t, "variadic", Add(V(1, 1), V(2, 2), V(3, 3), V(-6, 0)), V(0, 6))
}

func TestScaleAndDisplacement(t *testing.T) {
	testutil.AssertEqual(t, "scale", Scale(2.5, V(2, -4)), V(5, -10))
	testutil.AssertEqual(t, "scale zero", Scale(0, V(7, 7)), Zero)
	testutil.AssertEqual(t, "displacement", Displacement(V(1, 1), V(4, 5)), V(3, 4))
	testutil.AssertEqual(t, "distance sq", DistanceSq(V(1, 1), V(4, 5)), 25.0)
}

func TestNormalizeZeroVector(t *testing.T) {
	n := Normalize(Zero)
	if !n.IsZero() {
		t.Errorf("Normalize(0,0) = %v, want (0,0)", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		t.Errorf("Normalize(0,0) produced NaN: %v", n)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	tests := []Vec2{
		V(3, 4),
		V(-1, 0),
		V(0, 1e-6),
		V(1e9, -1e9),
		V(-0.3, 0.7),
	}

	for _, v := range tests {
		n := Normalize(v)
		if mag := Magnitude(n); math.Abs(mag-1) > epsilon {
			t.Errorf("|Normalize(%v)| = %v, want 1", v, mag)
		}
		// Same direction: parallel (zero cross product) and positive dot product
		cross := v.X*n.Y - v.Y*n.X
		dot := v.X*n.X + v.Y*n.Y
		if math.Abs(cross) > epsilon*Magnitude(v) || dot <= 0 {
			t.Errorf("Normalize(%v) = %v changes direction", v, n)
		}
	}
}

func TestClamp(t *testing.T) {
	testutil.AssertEqual(t, "below", Clamp(-1, 0, 1), 0.0)
	testutil.AssertEqual(t, "above", Clamp(3, 0, 1), 1.0)
	testutil.AssertEqual(t, "inside", Clamp(0.25, 0, 1), 0.25)
}

func TestMillis(t *testing.T) {
	testutil.AssertEqual(t, "16ms", Millis(16*time.Millisecond), 16.0)
	testutil.AssertEqual(t, "half ms", Millis(500*time.Microsecond), 0.5)
}

func TestIsFinite(t *testing.T) {
	testutil.AssertEqual(t, "finite", V(1e300, -3).IsFinite(), true)
	testutil.AssertEqual(t, "nan", V(math.NaN(), 0).IsFinite(), false)
	testutil.AssertEqual(t, "inf", V(0, math.Inf(-1)).IsFinite(), false)
}
