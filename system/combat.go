package system

import (
	"time"

	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/parameter"
	"github.com/lixenwraith/shroud/physics"
	"github.com/lixenwraith/shroud/vmath"
)

// ExpireDash closes the dash window once now - LastDashAt exceeds duration
// On transition dashing is cleared and acceleration reset, ending residual dash thrust
func ExpireDash(c component.Character, now, duration time.Duration) (component.Character, bool) {
	if !c.Dashing || now-c.LastDashAt <= duration {
		return c, false
	}
	c.Dashing = false
	c.Acceleration = vmath.Zero
	return c, true
}

// SweepActive reports whether the dash sweep runs this tick under the given policy
func SweepActive(c component.Character, policy parameter.DashPolicy) bool {
	if !c.Dashing {
		return false
	}
	switch policy {
	case parameter.DashEveryTick:
		return true
	case parameter.DashOncePerActivation:
		return !c.DashSpent
	}
	return false
}

// DashSweep partitions enemies into survivors and those inside the character's hit radius
// No cap on hits per tick, input order is preserved in both partitions
func DashSweep(c component.Character, enemies []component.Enemy) (survivors, hit []component.Enemy) {
	survivors = make([]component.Enemy, 0, len(enemies))
	for _, e := range enemies {
		if physics.RadiusCollision(c, e) {
			hit = append(hit, e)
			continue
		}
		survivors = append(survivors, e)
	}
	return survivors, hit
}

// ContactDamage applies at most one point of damage per call
// Skipped inside the invulnerability window; any overlapping enemy costs exactly 1 health
// and restarts the window at now. Health never drops below zero.
func ContactDamage(c component.Character, enemies []component.Enemy, now, window time.Duration) (component.Character, bool) {
	if c.Invulnerable(now, window) || c.Health <= 0 {
		return c, false
	}
	for _, e := range enemies {
		if physics.RadiusCollision(c, e) {
			c.Health--
			c.LastInvulnerableAt = now
			return c, true
		}
	}
	return c, false
}
