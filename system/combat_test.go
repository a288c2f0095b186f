package system

import (
	"slices"
	"testing"
	"time"

	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/parameter"
	"github.com/lixenwraith/shroud/vmath"
	"github.com/pixil98/go-testutil"
)

const now = 10 * time.Second

// hero is centered on the origin
func hero() component.Character {
	return component.Character{
		Kinetic:            component.Kinetic{Position: vmath.V(-5, -5), Size: vmath.V(10, 10)},
		HitRadius:          10,
		Health:             5,
		MaxHealth:          5,
		LastInvulnerableAt: -time.Hour,
	}
}

// foe returns an enemy whose center is (x, y)
func foe(id uint64, x, y float64) component.Enemy {
	return component.Enemy{
		ID:        id,
		Kinetic:   component.Kinetic{Position: vmath.V(x-5, y-5), Size: vmath.V(10, 10)},
		HitRadius: 5,
	}
}

func TestExpireDash(t *testing.T) {
	dur := parameter.DashDuration

	tests := []struct {
		name       string
		dashing    bool
		startedAgo time.Duration
		wantExpire bool
	}{
		{"past duration", true, dur + time.Millisecond, true},
		{"exactly duration", true, dur, false},
		{"inside window", true, dur / 2, false},
		{"not dashing", false, time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := hero()
			c.Dashing = tt.dashing
			c.LastDashAt = now - tt.startedAgo
			c.Acceleration = vmath.V(0.012, 0)

			got, expired := ExpireDash(c, now, dur)
			testutil.AssertEqual(t, "expired", expired, tt.wantExpire)
			if tt.wantExpire {
				testutil.AssertEqual(t, "dashing", got.Dashing, false)
				testutil.AssertEqual(t, "acceleration", got.Acceleration, vmath.Zero)
				return
			}
			testutil.AssertEqual(t, "unchanged", got, c)
		})
	}
}

func TestSweepActive(t *testing.T) {
	c := hero()
	if SweepActive(c, parameter.DashEveryTick) {
		t.Error("idle character must not sweep")
	}

	c.Dashing = true
	if !SweepActive(c, parameter.DashEveryTick) || !SweepActive(c, parameter.DashOncePerActivation) {
		t.Error("fresh dash must sweep under both policies")
	}

	c.DashSpent = true
	if !SweepActive(c, parameter.DashEveryTick) {
		t.Error("every-tick policy ignores spent flag")
	}
	if SweepActive(c, parameter.DashOncePerActivation) {
		t.Error("once-per-dash policy must stop after a hit")
	}
}

func TestDashSweep(t *testing.T) {
	c := hero()
	c.Dashing = true
	enemies := []component.Enemy{foe(1, 5, 0), foe(2, 100, 100)}

	survivors, hit := DashSweep(c, enemies)
	testutil.AssertEqual(t, "hit count", len(hit), 1)
	testutil.AssertEqual(t, "hit id", hit[0].ID, uint64(1))
	testutil.AssertEqual(t, "survivor count", len(survivors), 1)
	testutil.AssertEqual(t, "survivor id", survivors[0].ID, uint64(2))

	// Input slice is left intact
	testutil.AssertEqual(t, "input length", len(enemies), 2)
}

func TestDashSweepNoCap(t *testing.T) {
	c := hero()
	enemies := []component.Enemy{foe(1, 1, 0), foe(2, 0, 1), foe(3, -1, 0), foe(4, 300, 0), foe(5, 0, -2)}

	survivors, hit := DashSweep(c, enemies)
	testutil.AssertEqual(t, "hit count", len(hit), 4)
	testutil.AssertEqual(t, "survivors", len(survivors), 1)

	ids := make([]uint64, 0, len(hit))
	for _, e := range hit {
		ids = append(ids, e.ID)
	}
	if !slices.Equal(ids, []uint64{1, 2, 3, 5}) {
		t.Errorf("hit order = %v, want [1 2 3 5]", ids)
	}
}

func TestContactDamage(t *testing.T) {
	window := parameter.InvulnerabilityWindow

	t.Run("outside window", func(t *testing.T) {
		c := hero()
		c.LastInvulnerableAt = now - 2000*time.Millisecond
		got, damaged := ContactDamage(c, []component.Enemy{foe(1, 5, 0)}, now, window)
		testutil.AssertEqual(t, "damaged", damaged, true)
		testutil.AssertEqual(t, "health", got.Health, 4)
		testutil.AssertEqual(t, "window restarted", got.LastInvulnerableAt, now)
	})

	t.Run("inside window", func(t *testing.T) {
		c := hero()
		c.LastInvulnerableAt = now - 500*time.Millisecond
		got, damaged := ContactDamage(c, []component.Enemy{foe(1, 5, 0)}, now, window)
		testutil.AssertEqual(t, "damaged", damaged, false)
		testutil.AssertEqual(t, "unchanged", got, c)
	})

	t.Run("window edge is vulnerable", func(t *testing.T) {
		c := hero()
		c.LastInvulnerableAt = now - window
		_, damaged := ContactDamage(c, []component.Enemy{foe(1, 5, 0)}, now, window)
		testutil.AssertEqual(t, "damaged", damaged, true)
	})

	t.Run("many enemies cost one point", func(t *testing.T) {
		c := hero()
		enemies := []component.Enemy{foe(1, 1, 0), foe(2, 0, 1), foe(3, -1, 0)}
		got, damaged := ContactDamage(c, enemies, now, window)
		testutil.AssertEqual(t, "damaged", damaged, true)
		testutil.AssertEqual(t, "health", got.Health, 4)
	})

	t.Run("no contact", func(t *testing.T) {
		c := hero()
		got, damaged := ContactDamage(c, []component.Enemy{foe(1, 100, 100)}, now, window)
		testutil.AssertEqual(t, "damaged", damaged, false)
		testutil.AssertEqual(t, "health", got.Health, 5)
	})

	t.Run("floored at zero", func(t *testing.T) {
		c := hero()
		c.Health = 0
		got, damaged := ContactDamage(c, []component.Enemy{foe(1, 0, 0)}, now, window)
		testutil.AssertEqual(t, "damaged", damaged, false)
		testutil.AssertEqual(t, "health", got.Health, 0)
	})
}
