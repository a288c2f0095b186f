package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/vmath"
	"github.com/pixil98/go-testutil"
)

var testProfile = MotionProfile{Resistance: 0.01, MinSpeed: 0.001}

func body(pos, vel, acc vmath.Vec2) component.Kinetic {
	return component.Kinetic{Position: pos, Size: vmath.V(10, 10), Velocity: vel, Acceleration: acc}
}

func TestIntegrateVelocityAcceleration(t *testing.T) {
	k := body(vmath.Zero, vmath.Zero, vmath.V(0.25, -0.5))
	got := IntegrateVelocity(k, testProfile, 4)
	testutil.AssertEqual(t, "velocity", got.Velocity, vmath.V(1, -2))
	testutil.AssertEqual(t, "position untouched", got.Position, vmath.Zero)
}

func TestIntegrateVelocityQuadraticDrag(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"positive", 0.5},
		{"negative", -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := body(vmath.Zero, vmath.V(tt.v, 0), vmath.Zero)
			got := IntegrateVelocity(k, testProfile, 2)
			// v - R*v*|v|*dt
			want := tt.v - testProfile.Resistance*tt.v*math.Abs(tt.v)*2
			if math.Abs(got.Velocity.X-want) > 1e-12 {
				t.Errorf("velocity = %v, want %v", got.Velocity.X, want)
			}
			if math.Abs(got.Velocity.X) >= math.Abs(tt.v) {
				t.Errorf("drag must reduce speed: %v -> %v", tt.v, got.Velocity.X)
			}
			if math.Signbit(got.Velocity.X) != math.Signbit(tt.v) {
				t.Errorf("drag flipped sign: %v -> %v", tt.v, got.Velocity.X)
			}
		})
	}
}

func TestIntegrateVelocityDragGrowsWithSpeed(t *testing.T) {
	slow := IntegrateVelocity(body(vmath.Zero, vmath.V(0.1, 0), vmath.Zero), testProfile, 1)
	fast := IntegrateVelocity(body(vmath.Zero, vmath.V(1, 0), vmath.Zero), testProfile, 1)
	lossSlow := 0.1 - slow.Velocity.X
	lossFast := 1 - fast.Velocity.X
	// Quadratic: ten times the speed loses a hundred times as much
	if math.Abs(lossFast/lossSlow-100) > 1e-6 {
		t.Errorf("drag ratio = %v, want 100", lossFast/lossSlow)
	}
}

func TestIntegrateVelocityMinSpeedClamp(t *testing.T) {
	k := body(vmath.Zero, vmath.V(0.0005, 0.3), vmath.V(0, 0))
	got := IntegrateVelocity(k, testProfile, 1)
	if got.Velocity.X != 0 {
		t.Errorf("sub-threshold axis = %v, want exactly 0", got.Velocity.X)
	}
	if got.Velocity.Y == 0 {
		t.Error("fast axis must not be snapped")
	}

	// Acceleration that lands below the threshold is snapped too
	k = body(vmath.Zero, vmath.Zero, vmath.V(-0.0001, 0.0001))
	got = IntegrateVelocity(k, testProfile, 1)
	testutil.AssertEqual(t, "snapped", got.Velocity, vmath.Zero)
}

func TestIntegrateVelocityDecaysToRest(t *testing.T) {
	k := body(vmath.Zero, vmath.V(0.5, -0.4), vmath.Zero)
	for i := 0; i < 100000 && !k.Velocity.IsZero(); i++ {
		k = IntegrateVelocity(k, testProfile, 16)
	}
	testutil.AssertEqual(t, "at rest", k.Velocity, vmath.Zero)
}

func TestIntegrateVelocityNonPositiveDt(t *testing.T) {
	k := body(vmath.Zero, vmath.V(0.5, 0), vmath.V(1, 1))
	testutil.AssertEqual(t, "dt=0", IntegrateVelocity(k, testProfile, 0), k)
	testutil.AssertEqual(t, "dt<0", IntegrateVelocity(k, testProfile, -5), k)
}

func TestIntegratePositionFree(t *testing.T) {
	k := body(vmath.V(0, 0), vmath.V(0.5, 0.25), vmath.Zero)
	got := IntegratePosition(k, nil, 4)
	testutil.AssertEqual(t, "position", got.Position, vmath.V(2, 1))
	testutil.AssertEqual(t, "velocity", got.Velocity, k.Velocity)
}

func TestIntegratePositionRejectedOnOverlap(t *testing.T) {
	wall := []component.Entity{box(12, -100, 10, 200)}
	k := body(vmath.V(0, 0), vmath.V(1, 0.5), vmath.Zero)

	// 5ms moves the box to x=5..15 which enters the wall at x=12
	got := IntegratePosition(k, wall, 5)
	testutil.AssertEqual(t, "frozen position", got.Position, k.Position)

	// Moving up to touch the wall edge exactly is allowed
	got = IntegratePosition(k, wall, 2)
	testutil.AssertEqual(t, "touching position", got.Position, vmath.V(2, 1))
}

func TestStepUpdatesVelocityEvenWhenBlocked(t *testing.T) {
	wall := []component.Entity{box(10, 0, 10, 10)}
	k := body(vmath.V(0, 0), vmath.V(1, 0), vmath.V(0.25, 0))
	got := Step(k, MotionProfile{}, wall, 1)
	testutil.AssertEqual(t, "position frozen", got.Position, vmath.V(0, 0))
	testutil.AssertEqual(t, "velocity updated", got.Velocity, vmath.V(1.25, 0))
}

func TestIntegratePositionNoAxisSliding(t *testing.T) {
	// Diagonal move where only the x component would hit: the whole move is dropped
	wall := []component.Entity{box(11, -50, 10, 100)}
	k := body(vmath.V(0, 0), vmath.V(1, 1), vmath.Zero)
	got := IntegratePosition(k, wall, 3)
	testutil.AssertEqual(t, "no sliding", got.Position, vmath.V(0, 0))
}
