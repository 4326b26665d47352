package bulletbounce

import (
	"math"
	"math/rand"
	"testing"
)

func TestBulletFlight(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := Bullet{X: 100, Y: 100, VelX: 10, VelY: 0}

	alive, bounced := b.Update(800, 600, 5, 0.1, 3, 300, rng)

	if !alive {
		t.Error("Bullet in open space should stay alive")
	}
	if bounced {
		t.Error("Bullet in open space should not bounce")
	}
	if b.X != 110 || b.Y != 100 {
		t.Errorf("Bullet at (%f, %f), expected (110, 100)", b.X, b.Y)
	}
	if b.Age != 1 {
		t.Errorf("Age = %d, expected 1", b.Age)
	}
}

func TestBulletWallBounce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := Bullet{X: 792, Y: 300, VelX: 10, VelY: 0}

	// Zero jitter keeps the reflection exact.
	alive, bounced := b.Update(800, 600, 5, 0, 3, 300, rng)

	if !alive || !bounced {
		t.Fatalf("Expected a live bounce, got alive=%v bounced=%v", alive, bounced)
	}
	if b.VelX != -10 {
		t.Errorf("VelX = %f, expected reflection to -10", b.VelX)
	}
	if b.X != 795 {
		t.Errorf("X = %f, expected clamp to the wall at 795", b.X)
	}
	if b.Bounces != 1 {
		t.Errorf("Bounces = %d, expected 1", b.Bounces)
	}
}

func TestBulletBounceJitterKeepsSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := Bullet{X: 3, Y: 300, VelX: -10, VelY: 0}

	b.Update(800, 600, 5, 0.1, 3, 300, rng)

	speed := math.Hypot(b.VelX, b.VelY)
	if math.Abs(speed-10) > 1e-9 {
		t.Errorf("Speed after deflection = %f, expected 10", speed)
	}
}

func TestBulletBounceLimit(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// Bounce back and forth in a narrow corridor until spent.
	b := Bullet{X: 10, Y: 300, VelX: 15, VelY: 0}

	alive := true
	steps := 0
	for alive && steps < 100 {
		alive, _ = b.Update(20, 600, 5, 0, 3, 300, rng)
		steps++
	}

	if alive {
		t.Fatal("Bullet should die after exhausting its bounces")
	}
	if b.Bounces <= 3 {
		t.Errorf("Bounces = %d, expected the limit to be exceeded", b.Bounces)
	}
}

func TestBulletLifetime(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := Bullet{X: 400, Y: 300, VelX: 0, VelY: 0}

	alive := true
	for i := 0; i < 299; i++ {
		alive, _ = b.Update(800, 600, 5, 0, 3, 300, rng)
	}
	if !alive {
		t.Fatal("Bullet should survive until its lifetime runs out")
	}

	alive, _ = b.Update(800, 600, 5, 0, 3, 300, rng)
	if alive {
		t.Error("Bullet should expire at its lifetime")
	}
}

func TestBulletHits(t *testing.T) {
	b := Bullet{X: 100, Y: 100}

	if !b.Hits(110, 100, 20, 5) {
		t.Error("Bullet 10 units away should hit a radius-20 player")
	}
	if b.Hits(200, 100, 20, 5) {
		t.Error("Bullet 100 units away should miss")
	}
}
