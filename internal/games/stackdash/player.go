package stackdash

import (
	"github.com/mgrishin/arcade-hub/internal/config"
	"github.com/mgrishin/arcade-hub/internal/core"
)

// EffectKind identifies a timed power-up effect on the actor.
type EffectKind int

const (
	EffectSpeed EffectKind = iota
	EffectJump
	EffectMagnet
)

// Effect is a timed modifier. Effects are plain data; how each kind changes
// the simulation is decided at the single point where it is read.
type Effect struct {
	Kind      EffectKind
	TicksLeft int
}

// Player is the runner actor. Position is the center of its bounding box,
// in world units.
type Player struct {
	X, Y       float64
	VelX, VelY float64
	W, H       float64
	OnGround   bool
	JumpSafety int // Ticks left during which the gap probe stays off
	Tiles      int // Carried resource count
	Effects    []Effect

	cfg *config.StackDashConfig
}

// NewPlayer creates the actor at its configured start position, grounded.
func NewPlayer(cfg *config.StackDashConfig) *Player {
	return &Player{
		X:        cfg.Player.StartX,
		Y:        cfg.Player.StartY,
		W:        cfg.Player.Width,
		H:        cfg.Player.Height,
		OnGround: true,
		Effects:  make([]Effect, 0, 3),
		cfg:      cfg,
	}
}

// Rect returns the actor's bounding box.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X-p.W/2, p.Y-p.H/2, p.W, p.H)
}

// Update advances the actor by one tick: horizontal intent, gravity, jump,
// position integration, safety countdown, and effect timers. baseSpeed is
// the pre-difficulty movement speed. Reports whether a jump started.
func (p *Player) Update(in core.InputFrame, baseSpeed float64) bool {
	speed := p.MoveSpeed(baseSpeed)

	p.VelX = 0
	if in.Has(core.ActionLeft) {
		p.VelX = -speed
	}
	if in.Has(core.ActionRight) {
		p.VelX = speed
	}

	if !p.OnGround {
		p.VelY += p.cfg.Physics.Gravity
	}

	jumped := false
	if in.Has(core.ActionJump) && p.OnGround {
		p.jump()
		jumped = true
	}

	p.X += p.VelX
	p.Y += p.VelY

	if p.JumpSafety > 0 {
		p.JumpSafety--
	}

	p.tickEffects()

	return jumped
}

// MoveSpeed returns the effective horizontal speed: the base reduced
// linearly by carried tiles, then boosted by an active speed effect.
func (p *Player) MoveSpeed(baseSpeed float64) float64 {
	speed := baseSpeed * (1 - float64(p.Tiles)/float64(p.cfg.Player.MaxTiles*2))
	if p.HasEffect(EffectSpeed) {
		speed *= p.cfg.PowerUps.SpeedFactor
	}
	return speed
}

// JumpStrength returns the effective jump impulse (negative, up).
func (p *Player) JumpStrength() float64 {
	strength := p.cfg.Physics.JumpPower
	if p.HasEffect(EffectJump) {
		strength *= p.cfg.PowerUps.JumpFactor
	}
	return strength
}

// jump launches the actor. Callers must check OnGround first.
func (p *Player) jump() {
	p.VelY = p.JumpStrength()
	p.OnGround = false

	// Nudge out of the snap band so the next resolve doesn't re-ground us.
	p.Y -= 2

	p.JumpSafety = p.cfg.Player.JumpSafety
}

// Fall sends the actor into a terminal drop after a failed gap crossing.
func (p *Player) Fall() {
	p.VelY = p.cfg.Physics.FallSpeed
}

// AddTile adds one resource tile, up to the carry cap.
func (p *Player) AddTile() {
	if p.Tiles < p.cfg.Player.MaxTiles {
		p.Tiles++
	}
}

// RemoveTile consumes one resource tile. Reports whether one was held.
func (p *Player) RemoveTile() bool {
	if p.Tiles > 0 {
		p.Tiles--
		return true
	}
	return false
}

// ApplyEffect starts or renews a timed effect.
func (p *Player) ApplyEffect(kind EffectKind) {
	for i := range p.Effects {
		if p.Effects[i].Kind == kind {
			p.Effects[i].TicksLeft = p.cfg.PowerUps.Duration
			return
		}
	}
	p.Effects = append(p.Effects, Effect{Kind: kind, TicksLeft: p.cfg.PowerUps.Duration})
}

// HasEffect reports whether an effect of the given kind is active.
func (p *Player) HasEffect(kind EffectKind) bool {
	for _, e := range p.Effects {
		if e.Kind == kind && e.TicksLeft > 0 {
			return true
		}
	}
	return false
}

// tickEffects counts down and drops expired effects.
func (p *Player) tickEffects() {
	kept := p.Effects[:0]
	for _, e := range p.Effects {
		e.TicksLeft--
		if e.TicksLeft > 0 {
			kept = append(kept, e)
		}
	}
	p.Effects = kept
}
