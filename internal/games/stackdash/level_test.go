package stackdash

import (
	"math"
	"testing"

	"github.com/mgrishin/arcade-hub/internal/config"
)

func defaultLevel(seed int64) (*Level, *config.StackDashConfig) {
	cfg := config.DefaultStackDashConfig()
	return NewLevel(&cfg, seed), &cfg
}

func TestLevelDeterminism(t *testing.T) {
	l1, _ := defaultLevel(12345)
	l2, _ := defaultLevel(12345)

	if len(l1.Platforms) != len(l2.Platforms) {
		t.Fatalf("Platform counts differ: %d vs %d", len(l1.Platforms), len(l2.Platforms))
	}
	for i := range l1.Platforms {
		if l1.Platforms[i] != l2.Platforms[i] {
			t.Errorf("Platform %d differs: %+v vs %+v", i, l1.Platforms[i], l2.Platforms[i])
		}
	}

	if len(l1.Tiles) != len(l2.Tiles) {
		t.Fatalf("Tile counts differ: %d vs %d", len(l1.Tiles), len(l2.Tiles))
	}
	for i := range l1.Tiles {
		if l1.Tiles[i] != l2.Tiles[i] {
			t.Errorf("Tile %d differs: %+v vs %+v", i, l1.Tiles[i], l2.Tiles[i])
		}
	}

	if len(l1.PowerUps) != len(l2.PowerUps) {
		t.Fatalf("PowerUp counts differ: %d vs %d", len(l1.PowerUps), len(l2.PowerUps))
	}
	for i := range l1.PowerUps {
		if l1.PowerUps[i] != l2.PowerUps[i] {
			t.Errorf("PowerUp %d differs: %+v vs %+v", i, l1.PowerUps[i], l2.PowerUps[i])
		}
	}
}

func TestLevelSeedVariation(t *testing.T) {
	l1, _ := defaultLevel(1)
	l2, _ := defaultLevel(2)

	same := len(l1.Platforms) == len(l2.Platforms)
	if same {
		for i := range l1.Platforms {
			if l1.Platforms[i] != l2.Platforms[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Different seeds should produce different layouts")
	}
}

func TestLevelGroundPlatform(t *testing.T) {
	l, cfg := defaultLevel(7)

	ground := l.Platforms[0]
	if ground.X != 0 || ground.W != cfg.World.LevelWidth {
		t.Errorf("Ground should span the level, got X=%f W=%f", ground.X, ground.W)
	}
	if ground.Y != cfg.World.Height-cfg.World.GroundDepth {
		t.Errorf("Ground top should be at %f, got %f", cfg.World.Height-cfg.World.GroundDepth, ground.Y)
	}
}

func TestLevelGapBounds(t *testing.T) {
	for _, seed := range []int64{1, 42, 999, 31337} {
		l, cfg := defaultLevel(seed)

		maxGap := math.Min(cfg.Level.GapMax, l.MaxTraversableGap())

		// Elevated platforms follow the ground platform in insertion order.
		elevated := l.Platforms[1:]
		for i := 1; i < len(elevated); i++ {
			gap := elevated[i].X - elevated[i-1].Right()
			if gap < cfg.Level.GapMin && gap != 100 {
				t.Errorf("seed %d: gap %d = %f below minimum %f", seed, i, gap, cfg.Level.GapMin)
			}
			if gap > maxGap {
				t.Errorf("seed %d: gap %d = %f exceeds traversable bound %f", seed, i, gap, maxGap)
			}
		}
	}
}

func TestLevelTraversableByJump(t *testing.T) {
	l, cfg := defaultLevel(42)

	// Every gap in the chain must be clearable by a full jump arc.
	airtime := 2 * math.Abs(cfg.Physics.JumpPower) / cfg.Physics.Gravity
	reach := cfg.Physics.BaseSpeed * airtime

	elevated := l.Platforms[1:]
	for i := 1; i < len(elevated); i++ {
		gap := elevated[i].X - elevated[i-1].Right()
		if gap > reach {
			t.Errorf("Gap %d of %f world units exceeds jump reach %f", i, gap, reach)
		}
	}
}

func TestLevelTilePlacement(t *testing.T) {
	l, cfg := defaultLevel(42)

	elevated := l.Platforms[1:]
	for i, tile := range l.Tiles {
		found := false
		for _, plat := range elevated {
			if tile.X >= plat.X && tile.X <= plat.Right() &&
				tile.Y >= plat.Y-tileHoverMax && tile.Y <= plat.Y-tileHoverMin {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Tile %d at (%f, %f) does not hover above any platform", i, tile.X, tile.Y)
		}
	}

	// Per-platform tile counts stay within the configured bounds.
	total := len(l.Tiles)
	minTotal := len(elevated) * cfg.Level.TilesMin
	maxTotal := len(elevated) * cfg.Level.TilesMax
	if total < minTotal || total > maxTotal {
		t.Errorf("Tile total %d outside [%d, %d]", total, minTotal, maxTotal)
	}
}

func TestLevelFinishPlacement(t *testing.T) {
	l, cfg := defaultLevel(3)

	wantX := cfg.World.LevelWidth - cfg.World.FinishOffset
	if l.Finish.X != wantX {
		t.Errorf("Finish X = %f, expected %f", l.Finish.X, wantX)
	}
	if l.Finish.Bottom() != l.GroundY {
		t.Errorf("Finish should stand on the ground, bottom = %f, ground = %f", l.Finish.Bottom(), l.GroundY)
	}
}

func TestCollectTile(t *testing.T) {
	cfg := config.DefaultStackDashConfig()
	l := &Level{cfg: &cfg}
	l.Tiles = []Tile{{X: 100, Y: 100}}

	r := l.Tiles[0].Rect(cfg.Level.TileWidth, cfg.Level.TileHeight)

	if !l.CollectTile(r) {
		t.Fatal("Overlapping rect should collect the tile")
	}
	if !l.Tiles[0].Collected {
		t.Error("Tile should be marked collected")
	}
	if l.CollectTile(r) {
		t.Error("A collected tile must not be collected twice")
	}
}

func TestCollectPowerUp(t *testing.T) {
	cfg := config.DefaultStackDashConfig()
	l := &Level{cfg: &cfg}
	l.PowerUps = []PowerUp{{X: 200, Y: 100, Kind: PowerUpJump}}

	r := l.PowerUps[0].Rect(cfg.PowerUps.Radius)

	kind, ok := l.CollectPowerUp(r)
	if !ok || kind != PowerUpJump {
		t.Fatalf("CollectPowerUp = (%v, %v), expected (jump, true)", kind, ok)
	}
	if _, ok := l.CollectPowerUp(r); ok {
		t.Error("A collected power-up must not be collected twice")
	}
}

func TestPullTiles(t *testing.T) {
	cfg := config.DefaultStackDashConfig()
	l := &Level{cfg: &cfg}
	l.Tiles = []Tile{
		{X: 150, Y: 100}, // Within range of (100, 100)
		{X: 900, Y: 100}, // Far outside
	}

	l.PullTiles(100, 100, cfg.PowerUps.MagnetRange, cfg.PowerUps.MagnetPull)

	if l.Tiles[0].X >= 150 {
		t.Errorf("In-range tile should move toward the player, X = %f", l.Tiles[0].X)
	}
	if l.Tiles[1].X != 900 {
		t.Errorf("Out-of-range tile should not move, X = %f", l.Tiles[1].X)
	}
}

func TestOverGap(t *testing.T) {
	cfg := config.DefaultStackDashConfig()
	l := &Level{cfg: &cfg}
	// Two platforms with a hole between x=300 and x=400.
	l.Platforms = []Platform{
		{X: 0, Y: 400, W: 300, H: 20},
		{X: 400, Y: 400, W: 300, H: 20},
	}

	p := NewPlayer(&cfg)
	p.X = 350
	p.Y = 320 // Probe reaches down to 420, past the platform tops at 400
	p.VelX = 3
	p.VelY = 5
	p.OnGround = false
	p.JumpSafety = 0

	if !l.OverGap(p) {
		t.Error("Falling between platforms should register as a gap")
	}

	// Platform below the probe suppresses the gap.
	p.X = 150
	if l.OverGap(p) {
		t.Error("A platform under the probe should suppress the gap")
	}

	p.X = 350
	p.JumpSafety = 5
	if l.OverGap(p) {
		t.Error("Gap probe must stay off during the jump-safety window")
	}

	p.JumpSafety = 0
	p.VelY = 1 // Near the jump apex
	if l.OverGap(p) {
		t.Error("Gap probe must not fire near the jump apex")
	}

	p.VelY = 5
	p.VelX = 0.2 // Barely drifting
	if l.OverGap(p) {
		t.Error("Gap probe must not fire without committed horizontal motion")
	}

	p.VelX = 3
	p.OnGround = true
	if l.OverGap(p) {
		t.Error("Gap probe must not fire while grounded")
	}
}

func TestBuildBridge(t *testing.T) {
	cfg := config.DefaultStackDashConfig()
	l := &Level{cfg: &cfg}

	l.BuildBridge(500, 300)

	if len(l.Platforms) != 1 {
		t.Fatalf("Expected 1 bridge platform, got %d", len(l.Platforms))
	}
	b := l.Platforms[0]
	if !b.Bridge {
		t.Error("Bridge platform should be flagged as a bridge")
	}
	if b.X != 500+cfg.Bridge.OffsetX || b.Y != 300+cfg.Bridge.OffsetY {
		t.Errorf("Bridge at (%f, %f), expected (%f, %f)",
			b.X, b.Y, 500+cfg.Bridge.OffsetX, 300+cfg.Bridge.OffsetY)
	}
	if b.W != cfg.Bridge.Width || b.H != cfg.Bridge.Height {
		t.Errorf("Bridge size (%f, %f), expected (%f, %f)", b.W, b.H, cfg.Bridge.Width, cfg.Bridge.Height)
	}
}
