package stackdash

import (
	"testing"

	"github.com/mgrishin/arcade-hub/internal/config"
)

func testResolver() (Resolver, *Player) {
	cfg := config.DefaultStackDashConfig()
	r := NewResolver(cfg.Collision.SnapAbove, cfg.Collision.SnapBelow, cfg.Physics.LedgeEpsilon)
	return r, NewPlayer(&cfg)
}

func TestResolveGroundSnap(t *testing.T) {
	r, p := testResolver()
	plat := Platform{X: 0, Y: 400, W: 300, H: 20}

	// Feet at 403, inside the snap band around the platform top.
	p.X = 100
	p.Y = 373
	p.VelY = 2
	p.OnGround = false

	r.Resolve(p, []Platform{plat})

	if !p.OnGround {
		t.Fatal("Player should be grounded after snapping")
	}
	if p.Y != plat.Y-p.H/2 {
		t.Errorf("Player Y = %f, expected feet on platform top at %f", p.Y, plat.Y-p.H/2)
	}
	if p.VelY != 0 {
		t.Errorf("Vertical velocity should be zeroed on snap, got %f", p.VelY)
	}
}

func TestResolveNoSnapWhileRising(t *testing.T) {
	r, p := testResolver()
	plat := Platform{X: 0, Y: 400, W: 300, H: 20}

	// Feet just above the platform top, moving up. No overlap, no snap.
	p.X = 100
	p.Y = 368
	p.VelY = -3
	p.OnGround = false

	r.Resolve(p, []Platform{plat})

	if p.OnGround {
		t.Error("Rising player must not snap to a platform")
	}
	if p.Y != 368 {
		t.Errorf("Player Y should be untouched, got %f", p.Y)
	}
}

func TestResolveFirstPlatformWins(t *testing.T) {
	r, p := testResolver()
	a := Platform{X: 0, Y: 400, W: 300, H: 20}
	b := Platform{X: 0, Y: 395, W: 300, H: 20}

	// Feet at 401, inside the snap band of both platforms.
	p.X = 100
	p.Y = 371
	p.VelY = 1
	p.OnGround = false

	r.Resolve(p, []Platform{a, b})
	if p.Y != a.Y-p.H/2 {
		t.Errorf("First platform in order should win, Y = %f, expected %f", p.Y, a.Y-p.H/2)
	}

	p.Y = 371
	p.VelY = 1
	p.OnGround = false

	r.Resolve(p, []Platform{b, a})
	if p.Y != b.Y-p.H/2 {
		t.Errorf("First platform in order should win, Y = %f, expected %f", p.Y, b.Y-p.H/2)
	}
}

func TestResolveSidePushOut(t *testing.T) {
	r, p := testResolver()
	block := Platform{X: 200, Y: 300, W: 100, H: 100}

	// Shallow overlap past the block's right edge, moving right.
	p.X = 295
	p.Y = 350
	p.VelX = 3
	p.OnGround = false

	r.Resolve(p, []Platform{block})

	if p.X != block.X-p.W/2 {
		t.Errorf("Player X = %f, expected push-out to %f", p.X, block.X-p.W/2)
	}
	if p.VelX != 0 {
		t.Errorf("Horizontal velocity should be zeroed, got %f", p.VelX)
	}
}

func TestResolveHeadBump(t *testing.T) {
	r, p := testResolver()
	block := Platform{X: 200, Y: 300, W: 100, H: 100}

	// Shallow overlap past the block's top edge while moving up.
	p.X = 250
	p.Y = 275
	p.VelY = -4
	p.OnGround = false

	r.Resolve(p, []Platform{block})

	want := block.Y + block.H + p.H/2
	if p.Y != want {
		t.Errorf("Player Y = %f, expected push below the block to %f", p.Y, want)
	}
	if p.VelY != 0 {
		t.Errorf("Vertical velocity should be zeroed, got %f", p.VelY)
	}
}

func TestResolveVelocityGate(t *testing.T) {
	r, p := testResolver()
	block := Platform{X: 200, Y: 300, W: 100, H: 100}

	// Same shallow side overlap as the push-out test, but the player is not
	// moving into the surface. No resolution applies.
	p.X = 295
	p.Y = 350
	p.VelX = 0
	p.VelY = 0
	p.OnGround = false

	r.Resolve(p, []Platform{block})

	if p.X != 295 || p.Y != 350 {
		t.Errorf("Stationary player should be untouched, got (%f, %f)", p.X, p.Y)
	}
}

func TestResolveLedgeRelease(t *testing.T) {
	r, p := testResolver()

	// Grounded last tick, now past the platform edge with nothing below.
	p.X = 500
	p.Y = 370
	p.VelY = 0
	p.OnGround = true

	r.Resolve(p, []Platform{{X: 0, Y: 400, W: 300, H: 20}})

	if p.OnGround {
		t.Error("Player past the ledge should no longer be grounded")
	}
	if p.VelY != 0.1 {
		t.Errorf("Ledge release should seed a small fall velocity, got %f", p.VelY)
	}
}
