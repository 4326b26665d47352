package stackdash

import (
	"math"
	"math/rand"

	"github.com/mgrishin/arcade-hub/internal/config"
	"github.com/mgrishin/arcade-hub/internal/core"
)

// Spawn placement margins in world units.
const (
	tileEdgeMargin    = 30 // Tiles keep this distance from platform edges
	tileHoverMin      = 30 // Tiles float this far above their platform
	tileHoverMax      = 60
	powerUpEdgeMargin = 50
	powerUpHover      = 30
)

// Platform is a solid surface the actor can stand on.
// Bridges placed by the player are platforms too; they only differ in color.
type Platform struct {
	X, Y   float64 // Top-left corner
	W, H   float64
	Bridge bool
}

// Rect returns the platform's bounding box.
func (p Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Right returns the platform's right edge.
func (p Platform) Right() float64 {
	return p.X + p.W
}

// Tile is a collectible resource hovering above a platform.
// Position is center-based.
type Tile struct {
	X, Y      float64
	Collected bool
}

// Rect returns the tile's bounding box for the given tile dimensions.
func (t Tile) Rect(w, h float64) core.RectF {
	return core.NewRectF(t.X-w/2, t.Y-h/2, w, h)
}

// PowerUpKind identifies a power-up variant.
type PowerUpKind int

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpJump
	PowerUpMagnet
)

// String returns a short display name for the power-up.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpJump:
		return "jump"
	case PowerUpMagnet:
		return "magnet"
	default:
		return "unknown"
	}
}

// PowerUp is a collectible effect trigger. Position is center-based.
type PowerUp struct {
	X, Y      float64
	Kind      PowerUpKind
	Collected bool
}

// Rect returns the power-up's bounding box for the given radius.
func (p PowerUp) Rect(radius float64) core.RectF {
	return core.NewRectF(p.X-radius, p.Y-radius, radius*2, radius*2)
}

// Level owns all world geometry for a single run: the platform chain,
// collectibles, and the finish line. Generation is fully determined by the
// seed, so two levels built from the same seed and config are identical.
type Level struct {
	Platforms []Platform
	Tiles     []Tile
	PowerUps  []PowerUp
	Finish    core.RectF
	Width     float64
	GroundY   float64 // Top of the ground platform

	cfg *config.StackDashConfig
}

// NewLevel generates a level from the given seed.
func NewLevel(cfg *config.StackDashConfig, seed int64) *Level {
	l := &Level{
		Platforms: make([]Platform, 0, 32),
		Tiles:     make([]Tile, 0, 64),
		PowerUps:  make([]PowerUp, 0, 8),
		Width:     cfg.World.LevelWidth,
		GroundY:   cfg.World.Height - cfg.World.GroundDepth,
		cfg:       cfg,
	}
	l.generate(rand.New(rand.NewSource(seed)))
	return l
}

// MaxTraversableGap returns the widest gap the actor can clear from a
// standing jump: horizontal speed times the airtime of a full jump arc.
// The generator clamps drawn gaps to this bound, which keeps the platform
// chain traversable without a reachability search.
func (l *Level) MaxTraversableGap() float64 {
	airtime := 2 * math.Abs(l.cfg.Physics.JumpPower) / l.cfg.Physics.Gravity
	return l.cfg.Physics.BaseSpeed * airtime
}

// generate lays out the platform chain left to right.
func (l *Level) generate(rng *rand.Rand) {
	lv := &l.cfg.Level

	// Ground platform spans the whole level.
	l.Platforms = append(l.Platforms, Platform{
		X: 0,
		Y: l.GroundY,
		W: l.Width,
		H: l.cfg.World.GroundDepth,
	})

	maxGap := l.MaxTraversableGap()
	gap := 100.0 // First gap is fixed; later gaps are redrawn per platform

	x := lv.FirstPlatformX
	for x < l.Width-lv.EndMargin {
		y := l.GroundY - randIn(rng, lv.HeightMin, lv.HeightMax)
		plat := Platform{X: x, Y: y, W: lv.PlatformWidth, H: lv.PlatformHeight}
		l.Platforms = append(l.Platforms, plat)

		l.spawnTiles(rng, plat)

		if rng.Float64() < l.cfg.PowerUps.Chance {
			l.PowerUps = append(l.PowerUps, PowerUp{
				X:    x + randIn(rng, powerUpEdgeMargin, lv.PlatformWidth-powerUpEdgeMargin),
				Y:    y - powerUpHover,
				Kind: PowerUpKind(rng.Intn(3)),
			})
		}

		x += lv.PlatformWidth + gap

		gap = randIn(rng, lv.GapMin, lv.GapMax)
		if gap > maxGap {
			gap = maxGap
		}
	}

	l.Finish = core.NewRectF(
		l.Width-l.cfg.World.FinishOffset,
		l.GroundY-l.cfg.World.FinishHeight,
		l.cfg.World.FinishWidth,
		l.cfg.World.FinishHeight,
	)
}

// spawnTiles places a random handful of tiles hovering above a platform.
func (l *Level) spawnTiles(rng *rand.Rand, plat Platform) {
	lv := &l.cfg.Level

	n := lv.TilesMin
	if lv.TilesMax > lv.TilesMin {
		n += rng.Intn(lv.TilesMax - lv.TilesMin + 1)
	}

	for i := 0; i < n; i++ {
		l.Tiles = append(l.Tiles, Tile{
			X: plat.X + randIn(rng, tileEdgeMargin, plat.W-tileEdgeMargin),
			Y: plat.Y - randIn(rng, tileHoverMin, tileHoverMax),
		})
	}
}

// CollectTile marks and reports the first uncollected tile overlapping the
// given rect. At most one tile is collected per call.
func (l *Level) CollectTile(r core.RectF) bool {
	for i := range l.Tiles {
		t := &l.Tiles[i]
		if t.Collected {
			continue
		}
		if r.Intersects(t.Rect(l.cfg.Level.TileWidth, l.cfg.Level.TileHeight)) {
			t.Collected = true
			return true
		}
	}
	return false
}

// CollectPowerUp marks and returns the first uncollected power-up
// overlapping the given rect.
func (l *Level) CollectPowerUp(r core.RectF) (PowerUpKind, bool) {
	for i := range l.PowerUps {
		p := &l.PowerUps[i]
		if p.Collected {
			continue
		}
		if r.Intersects(p.Rect(l.cfg.PowerUps.Radius)) {
			p.Collected = true
			return p.Kind, true
		}
	}
	return 0, false
}

// PullTiles drags uncollected tiles within range toward (px, py) by at most
// step world units. Used by the magnet power-up.
func (l *Level) PullTiles(px, py, within, step float64) {
	for i := range l.Tiles {
		t := &l.Tiles[i]
		if t.Collected {
			continue
		}
		dx, dy := px-t.X, py-t.Y
		d := math.Hypot(dx, dy)
		if d == 0 || d > within {
			continue
		}
		move := math.Min(step, d)
		t.X += dx / d * move
		t.Y += dy / d * move
	}
}

// OverGap reports whether the actor is falling over a gap with no platform
// within probe depth below. The probe is suppressed during the jump-safety
// window, while grounded, near the jump apex, and when the actor is not
// committed to horizontal motion.
func (l *Level) OverGap(p *Player) bool {
	if p.JumpSafety > 0 {
		return false
	}
	br := &l.cfg.Bridge
	if p.VelY <= br.MinFallSpeed || p.OnGround || math.Abs(p.VelX) <= br.MinRunSpeed {
		return false
	}

	probe := core.NewRectF(p.X-br.ProbeWidth/2, p.Y, br.ProbeWidth, br.ProbeDepth)
	for _, plat := range l.Platforms {
		if probe.Intersects(plat.Rect()) {
			return false
		}
	}
	return true
}

// BuildBridge appends a bridge platform slightly below the given actor
// position, so the falling actor lands on it on a following tick.
func (l *Level) BuildBridge(x, y float64) {
	br := &l.cfg.Bridge
	l.Platforms = append(l.Platforms, Platform{
		X:      x + br.OffsetX,
		Y:      y + br.OffsetY,
		W:      br.Width,
		H:      br.Height,
		Bridge: true,
	})
}

// AtFinish reports whether the given rect touches the finish line.
func (l *Level) AtFinish(r core.RectF) bool {
	return r.Intersects(l.Finish)
}

// randIn draws a uniform value from [lo, hi].
func randIn(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
