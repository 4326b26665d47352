// Package audio plays short synthesized sound effects for game events.
// All sounds are generated waveforms, so there are no asset files to ship.
// Playback is fire-and-forget: simulation results never depend on it, and
// an uninitialized player silently drops every event (the SSH server path).
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/mgrishin/arcade-hub/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Player owns the speaker and mixes game sound effects into it.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates a player. Call Initialize before playing.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences the mixer. beep has no speaker close, so clearing the
// mixer is as far as shutdown goes.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// SetMuted enables or disables playback without tearing down the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Play queues the streamers for a tick's sound events. Events on an
// uninitialized or muted player are dropped.
func (p *Player) Play(events []core.SoundEvent) {
	if len(events) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	for _, ev := range events {
		p.mixer.Add(streamerFor(ev))
	}
}

// streamerFor maps a sound event to a finite generated streamer.
func streamerFor(ev core.SoundEvent) beep.Streamer {
	switch ev {
	case core.SoundJump:
		// Quick upward chirp.
		return take(120, NewSweepGenerator(sampleRate, 220, 440))
	case core.SoundPickup:
		// Bright blip.
		return take(80, NewToneGenerator(sampleRate, 880))
	case core.SoundDrop:
		// Low thunk.
		return take(100, NewSweepGenerator(sampleRate, 300, 150))
	case core.SoundFall:
		// Long downward slide.
		return take(300, NewSweepGenerator(sampleRate, 400, 80))
	case core.SoundPowerup:
		return take(200, NewArpeggioGenerator(sampleRate, 523.25, 784.0))
	case core.SoundSuccess:
		return take(400, NewArpeggioGenerator(sampleRate, 523.25, 659.25, 784.0, 1046.5))
	default:
		return take(80, NewToneGenerator(sampleRate, 440))
	}
}

// take cuts a generator down to the given duration in milliseconds.
func take(ms int, s beep.Streamer) beep.Streamer {
	return beep.Take(sampleRate.N(time.Millisecond*time.Duration(ms)), s)
}
