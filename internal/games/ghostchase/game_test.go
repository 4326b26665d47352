package ghostchase

import (
	"testing"

	"github.com/mgrishin/arcade-hub/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func hasSound(sounds []core.SoundEvent, want core.SoundEvent) bool {
	for _, s := range sounds {
		if s == want {
			return true
		}
	}
	return false
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	if g.state != StateStarting {
		t.Errorf("state = %q, expected starting", g.state)
	}
	if len(g.orbs) != g.cfg.Round.Orbs {
		t.Errorf("Orb count = %d, expected %d", len(g.orbs), g.cfg.Round.Orbs)
	}
	rx, ry := g.maze.RunnerStart()
	if g.runnerX != rx || g.runnerY != ry {
		t.Errorf("Runner at (%d, %d), expected (%d, %d)", g.runnerX, g.runnerY, rx, ry)
	}
	gx, gy := g.maze.GhostStart()
	if g.ghostX != gx || g.ghostY != gy {
		t.Errorf("Ghost at (%d, %d), expected (%d, %d)", g.ghostX, g.ghostY, gx, gy)
	}
	for _, o := range g.orbs {
		if g.maze.IsWall(o.X, o.Y) {
			t.Errorf("Orb at (%d, %d) is inside a wall", o.X, o.Y)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (int, int, int, int, int) {
		g := New()
		g.Reset(testRuntime(12345))
		for tick := 0; tick < 800; tick++ {
			in := core.NewInputFrame()
			switch (tick / 30) % 4 {
			case 0:
				in.Set(core.ActionUp)
			case 1:
				in.Set(core.ActionLeft)
			case 2:
				in.Set(core.ActionDown)
			case 3:
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		return g.runnerX, g.runnerY, g.ghostX, g.ghostY, g.score
	}

	rx1, ry1, gx1, gy1, s1 := run()
	rx2, ry2, gx2, gy2, s2 := run()

	if rx1 != rx2 || ry1 != ry2 {
		t.Errorf("Runner positions diverged: (%d, %d) vs (%d, %d)", rx1, ry1, rx2, ry2)
	}
	if gx1 != gx2 || gy1 != gy2 {
		t.Errorf("Ghost positions diverged: (%d, %d) vs (%d, %d)", gx1, gy1, gx2, gy2)
	}
	if s1 != s2 {
		t.Errorf("Scores diverged: %d vs %d", s1, s2)
	}
}

func TestGameRunnerMoveCooldown(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.state = StatePlaying

	// Find a walkable neighbor and the input that reaches it.
	moves := []struct {
		action core.Action
		dx, dy int
	}{
		{core.ActionUp, 0, -1},
		{core.ActionDown, 0, 1},
		{core.ActionLeft, -1, 0},
		{core.ActionRight, 1, 0},
	}
	var action core.Action
	found := false
	for _, mv := range moves {
		if g.maze.Walkable(g.runnerX+mv.dx, g.runnerY+mv.dy, false) {
			action = mv.action
			found = true
			break
		}
	}
	if !found {
		t.Fatal("Runner start has no walkable neighbor")
	}

	in := core.NewInputFrame()
	in.Set(action)

	x, y := g.runnerX, g.runnerY
	g.Step(in)
	if g.runnerX == x && g.runnerY == y {
		t.Fatal("Runner should move on the first input")
	}

	// The cooldown blocks further steps.
	x, y = g.runnerX, g.runnerY
	g.Step(in)
	if g.runnerX != x || g.runnerY != y {
		t.Error("Runner moved again before the cooldown expired")
	}
}

func TestGameRunnerBlockedByWall(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.state = StatePlaying

	// The runner corner borders the outer wall on two sides.
	in := core.NewInputFrame()
	in.Set(core.ActionRight)

	x, y := g.runnerX, g.runnerY
	g.Step(in)
	if g.runnerX != x || g.runnerY != y {
		t.Error("Runner should not walk into the border wall")
	}
}

func TestGameOrbCollection(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.state = StatePlaying

	// A single orb under the runner: collecting it also opens the exit.
	g.orbs = []Orb{{X: g.runnerX, Y: g.runnerY}}
	g.collected = 0

	res := g.Step(core.NewInputFrame())

	if g.collected != 1 {
		t.Errorf("collected = %d, expected 1", g.collected)
	}
	if res.State.Score != g.cfg.Scoring.OrbPoints {
		t.Errorf("Score = %d, expected %d", res.State.Score, g.cfg.Scoring.OrbPoints)
	}
	if !g.exitOpen {
		t.Error("Exit should open after the last orb")
	}
	if !hasSound(res.Sounds, core.SoundPickup) {
		t.Error("Orb pickup should emit a pickup sound")
	}
	if !hasSound(res.Sounds, core.SoundPowerup) {
		t.Error("Exit opening should emit a powerup sound")
	}
}

func TestGameEscape(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.state = StatePlaying

	g.exitOpen = true
	g.runnerX, g.runnerY = g.maze.ExitCell()
	// Keep the ghost away from the exit.
	g.ghostX, g.ghostY = g.maze.RunnerStart()
	g.ghostCooldown = 100

	res := g.Step(core.NewInputFrame())

	if g.state != StateEscaped {
		t.Fatalf("state = %q, expected escaped", g.state)
	}
	if !res.State.Won {
		t.Error("Escaping should count as a win")
	}
	remaining := (g.cfg.Round.TimeLimitTicks - g.timer) / 60
	want := remaining * g.cfg.Scoring.EscapeBonusRate
	if g.score != want {
		t.Errorf("Score = %d, expected escape bonus %d", g.score, want)
	}
	if !hasSound(res.Sounds, core.SoundSuccess) {
		t.Error("Escaping should emit a success sound")
	}
}

func TestGameCaught(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.state = StatePlaying

	g.ghostX, g.ghostY = g.runnerX, g.runnerY

	res := g.Step(core.NewInputFrame())

	if g.state != StateGameOver {
		t.Fatalf("state = %q, expected game over", g.state)
	}
	if g.lossReason != lossCaught {
		t.Errorf("lossReason = %q, expected caught", g.lossReason)
	}
	if res.State.Won {
		t.Error("Being caught is not a win")
	}
	if !hasSound(res.Sounds, core.SoundFall) {
		t.Error("Being caught should emit a fall sound")
	}
}

func TestGameTimeout(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.state = StatePlaying

	g.timer = g.cfg.Round.TimeLimitTicks - 1
	// Keep the ghost parked so only the timer can end the round.
	g.ghostCooldown = 100

	g.Step(core.NewInputFrame())

	if g.state != StateGameOver {
		t.Fatalf("state = %q, expected game over on timeout", g.state)
	}
	if g.lossReason != lossTimeout {
		t.Errorf("lossReason = %q, expected timeout", g.lossReason)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.state = StatePlaying

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if g.state != StatePaused {
		t.Fatalf("state = %q, expected paused", g.state)
	}

	x, y, timer := g.runnerX, g.runnerY, g.timer
	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	for i := 0; i < 30; i++ {
		g.Step(up)
	}
	if g.runnerX != x || g.runnerY != y || g.timer != timer {
		t.Error("Simulation must not advance while paused")
	}

	g.Step(pause)
	if g.state != StatePlaying {
		t.Errorf("state = %q after unpause, expected playing", g.state)
	}
}

func TestGameStartingCountdown(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	in := core.NewInputFrame()
	for i := 0; i < g.cfg.Round.StartTicks; i++ {
		g.Step(in)
	}
	if g.state != StatePlaying {
		t.Errorf("state = %q after countdown, expected playing", g.state)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if len(out) == 0 {
		t.Fatal("Render produced no output")
	}

	hasRunner, hasWall := false, false
	for _, c := range out {
		if c == RunnerChar {
			hasRunner = true
		}
		if c == WallChar {
			hasWall = true
		}
	}
	if !hasRunner {
		t.Error("Render should draw the runner")
	}
	if !hasWall {
		t.Error("Render should draw maze walls")
	}
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "ghostchase" {
		t.Errorf("ID = %q", g.ID())
	}
	if g.Title() != "Ghost Chase" {
		t.Errorf("Title = %q", g.Title())
	}
}
