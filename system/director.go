package system

import (
	"time"

	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/parameter"
	"github.com/lixenwraith/shroud/vmath"
)

// ShouldSpawn reports whether the spawn interval has strictly elapsed since last
func ShouldSpawn(last, now, interval time.Duration) bool {
	return now-last > interval
}

// SpawnEnemy builds a resting enemy at the fixed spawn origin
func SpawnEnemy(id uint64, t parameter.Tuning) component.Enemy {
	return component.Enemy{
		ID: id,
		Kinetic: component.Kinetic{
			Position: t.SpawnOrigin,
			Size:     t.EnemySize,
		},
		HitRadius: t.EnemyHitRadius,
	}
}

// ShrinkShroud reduces the radius linearly with dt, floored at zero
func ShrinkShroud(radius, rate, dt float64) float64 {
	if dt <= 0 {
		return radius
	}
	r := radius - rate*dt
	if r < 0 {
		return 0
	}
	return r
}

// MusicIntensity maps squared distance from the shroud center against the radius to [0,1]
// clamp((dist²/radius² - 0.5) * 2.5, 0, 1); a collapsed shroud is full intensity
func MusicIntensity(distSq, radius float64) float64 {
	if radius <= 0 {
		return 1
	}
	return vmath.Clamp((distSq/(radius*radius)-0.5)*2.5, 0, 1)
}
