package stackdash

import "math"

// Snapshot contains the complete mutable game state for determinism tests
// and save/restore. Level geometry is not included: it is regenerated from
// the seed on Reset, and only per-run mutations (collected flags, tile
// positions shifted by the magnet, bridges) are carried here. Uses
// primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	State      string
	StateTimer int
	Score      int
	Timer      int
	CameraX    float64

	// Actor state
	PlayerX    float64
	PlayerY    float64
	PlayerVelX float64
	PlayerVelY float64
	OnGround   bool
	JumpSafety int
	Tiles      int

	// Effect state (each effect is 2 ints: Kind, TicksLeft)
	EffectCount int
	EffectData  []int

	// Collected flags, in level order (1 = collected)
	TileData    []int
	PowerUpData []int

	// Tile centers, in level order (each tile is 2 floats: X, Y).
	// The magnet effect moves uncollected tiles, so positions are state.
	TilePos []float64

	// Bridges appended during the run (each bridge is 2 floats: X, Y)
	BridgeCount int
	BridgeData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	effectData := make([]int, len(g.player.Effects)*2)
	for i, e := range g.player.Effects {
		effectData[i*2] = int(e.Kind)
		effectData[i*2+1] = e.TicksLeft
	}

	tileData := make([]int, len(g.level.Tiles))
	tilePos := make([]float64, len(g.level.Tiles)*2)
	for i, t := range g.level.Tiles {
		if t.Collected {
			tileData[i] = 1
		}
		tilePos[i*2] = t.X
		tilePos[i*2+1] = t.Y
	}

	powerUpData := make([]int, len(g.level.PowerUps))
	for i, p := range g.level.PowerUps {
		if p.Collected {
			powerUpData[i] = 1
		}
	}

	var bridgeData []float64
	for _, plat := range g.level.Platforms {
		if plat.Bridge {
			bridgeData = append(bridgeData, plat.X, plat.Y)
		}
	}

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:      g.state,
		StateTimer: g.stateTimer,
		Score:      g.score,
		Timer:      g.timer,
		CameraX:    g.cameraX,

		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
		PlayerVelX: g.player.VelX,
		PlayerVelY: g.player.VelY,
		OnGround:   g.player.OnGround,
		JumpSafety: g.player.JumpSafety,
		Tiles:      g.player.Tiles,

		EffectCount: len(g.player.Effects),
		EffectData:  effectData,

		TileData:    tileData,
		PowerUpData: powerUpData,
		TilePos:     tilePos,

		BridgeCount: len(bridgeData) / 2,
		BridgeData:  bridgeData,
	}
}

// ApplySnapshot restores game state from a snapshot. The level must already
// be generated from the same seed and config the snapshot was taken under.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.state = snap.State
	g.stateTimer = snap.StateTimer
	g.score = snap.Score
	g.timer = snap.Timer
	g.cameraX = snap.CameraX

	g.player.X = snap.PlayerX
	g.player.Y = snap.PlayerY
	g.player.VelX = snap.PlayerVelX
	g.player.VelY = snap.PlayerVelY
	g.player.OnGround = snap.OnGround
	g.player.JumpSafety = snap.JumpSafety
	g.player.Tiles = snap.Tiles

	g.player.Effects = make([]Effect, snap.EffectCount)
	for i := 0; i < snap.EffectCount; i++ {
		idx := i * 2
		if idx+1 < len(snap.EffectData) {
			g.player.Effects[i] = Effect{
				Kind:      EffectKind(snap.EffectData[idx]),
				TicksLeft: snap.EffectData[idx+1],
			}
		}
	}

	for i := range g.level.Tiles {
		g.level.Tiles[i].Collected = i < len(snap.TileData) && snap.TileData[i] == 1
		if idx := i * 2; idx+1 < len(snap.TilePos) {
			g.level.Tiles[i].X = snap.TilePos[idx]
			g.level.Tiles[i].Y = snap.TilePos[idx+1]
		}
	}
	for i := range g.level.PowerUps {
		g.level.PowerUps[i].Collected = i < len(snap.PowerUpData) && snap.PowerUpData[i] == 1
	}

	// Drop old bridges, replay the snapshot's.
	kept := g.level.Platforms[:0]
	for _, plat := range g.level.Platforms {
		if !plat.Bridge {
			kept = append(kept, plat)
		}
	}
	g.level.Platforms = kept
	for i := 0; i < snap.BridgeCount; i++ {
		idx := i * 2
		if idx+1 < len(snap.BridgeData) {
			g.level.Platforms = append(g.level.Platforms, Platform{
				X:      snap.BridgeData[idx],
				Y:      snap.BridgeData[idx+1],
				W:      g.cfg.Bridge.Width,
				H:      g.cfg.Bridge.Height,
				Bridge: true,
			})
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.StateTimer) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Timer)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.CameraX)

	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerVelX)
	h = h*31 + math.Float64bits(snap.PlayerVelY)
	if snap.OnGround {
		h = h*31 + 1
	} else {
		h = h * 31
	}
	h = h*31 + uint64(snap.JumpSafety) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Tiles)      //#nosec G115 -- hash computation

	h = h*31 + uint64(snap.EffectCount) //#nosec G115 -- hash computation
	for _, v := range snap.EffectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.TileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PowerUpData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.TilePos {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.BridgeCount) //#nosec G115 -- hash computation
	for _, v := range snap.BridgeData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
