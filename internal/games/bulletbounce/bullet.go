package bulletbounce

import (
	"math"
	"math/rand"
)

// Bullet is a projectile bouncing around the arena. It dies when it runs
// out of bounces, ages out, or hits the player.
type Bullet struct {
	X, Y       float64
	VelX, VelY float64
	Bounces    int
	Age        int
}

// Update advances the bullet one tick, reflecting off arena walls with a
// small random deflection. Reports whether the bullet is still alive and
// whether it bounced this tick.
func (b *Bullet) Update(arenaW, arenaH, radius, jitter float64, maxBounces, lifetime int, rng *rand.Rand) (alive, bounced bool) {
	b.X += b.VelX
	b.Y += b.VelY
	b.Age++

	if b.X-radius < 0 {
		b.X = radius
		b.VelX = -b.VelX
		bounced = true
	} else if b.X+radius > arenaW {
		b.X = arenaW - radius
		b.VelX = -b.VelX
		bounced = true
	}

	if b.Y-radius < 0 {
		b.Y = radius
		b.VelY = -b.VelY
		bounced = true
	} else if b.Y+radius > arenaH {
		b.Y = arenaH - radius
		b.VelY = -b.VelY
		bounced = true
	}

	if bounced {
		b.Bounces++
		b.deflect(jitter, rng)
	}

	alive = b.Bounces <= maxBounces && b.Age < lifetime
	return alive, bounced
}

// deflect rotates the velocity by a random angle within the jitter range,
// preserving speed.
func (b *Bullet) deflect(jitter float64, rng *rand.Rand) {
	if jitter <= 0 {
		return
	}
	angle := math.Atan2(b.VelY, b.VelX) + (rng.Float64()*2-1)*jitter
	speed := math.Hypot(b.VelX, b.VelY)
	b.VelX = math.Cos(angle) * speed
	b.VelY = math.Sin(angle) * speed
}

// Hits reports whether the bullet overlaps a circle at (px, py).
func (b *Bullet) Hits(px, py, playerRadius, bulletRadius float64) bool {
	return math.Hypot(b.X-px, b.Y-py) < playerRadius+bulletRadius
}
