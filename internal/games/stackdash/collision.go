package stackdash

import "math"

// Resolver separates the actor from platforms after each position update.
// Tolerances come from config; the zero value is unusable.
type Resolver struct {
	SnapAbove    float64 // Ground-snap band above a platform top
	SnapBelow    float64 // ... and below it
	LedgeEpsilon float64 // Fall velocity seeded when walking off a ledge
}

// NewResolver builds a resolver from collision tolerances.
func NewResolver(snapAbove, snapBelow, ledgeEpsilon float64) Resolver {
	return Resolver{
		SnapAbove:    snapAbove,
		SnapBelow:    snapBelow,
		LedgeEpsilon: ledgeEpsilon,
	}
}

// Resolve runs two passes over the platforms in insertion order.
//
// Pass one snaps the actor onto a platform top when its feet are inside the
// snap band, it overlaps the platform horizontally, and it is not moving
// upward. The first matching platform wins and resolution stops there.
//
// Pass two separates remaining overlaps along the axis of minimum
// penetration. Each direction only applies when the actor is actually
// moving into the surface, and the velocity component along the resolved
// axis is zeroed.
//
// Finally, an actor that just left the ground with zero vertical velocity
// gets a tiny downward push so gravity takes over immediately.
func (r Resolver) Resolve(p *Player, platforms []Platform) {
	wasOnGround := p.OnGround
	p.OnGround = false

	// Ground-snap pass.
	for _, plat := range platforms {
		if math.Abs(p.X-(plat.X+plat.W/2)) < plat.W/2+p.W/2 &&
			p.Y+p.H/2 >= plat.Y-r.SnapAbove &&
			p.Y+p.H/2 <= plat.Y+r.SnapBelow &&
			p.VelY >= 0 {
			p.Y = plat.Y - p.H/2
			p.VelY = 0
			p.OnGround = true
			return
		}
	}

	// Minimum-overlap pass.
	rect := p.Rect()
	for _, plat := range platforms {
		if !rect.Intersects(plat.Rect()) {
			continue
		}

		// Overlap depth past each platform edge.
		overRight := plat.X + plat.W - (p.X - p.W/2)
		overLeft := p.X + p.W/2 - plat.X
		overBottom := plat.Y + plat.H - (p.Y - p.H/2)
		overTop := p.Y + p.H/2 - plat.Y

		minOverlap := math.Min(math.Min(overLeft, overRight), math.Min(overTop, overBottom))

		switch {
		case minOverlap == overTop && p.VelY < 0:
			// Head bump: push back under the platform.
			p.Y = plat.Y + plat.H + p.H/2
			p.VelY = 0
		case minOverlap == overRight && p.VelX > 0:
			p.X = plat.X - p.W/2
			p.VelX = 0
		case minOverlap == overLeft && p.VelX < 0:
			p.X = plat.X + plat.W + p.W/2
			p.VelX = 0
		case minOverlap == overBottom && p.VelY > 0:
			// Landed on top.
			p.Y = plat.Y - p.H/2
			p.VelY = 0
			p.OnGround = true
		}
	}

	// Ledge release: walked off an edge without jumping.
	if wasOnGround && !p.OnGround && p.VelY == 0 {
		p.VelY = r.LedgeEpsilon
	}
}
