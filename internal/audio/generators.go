package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator produces a sine tone with a short attack envelope so the
// start doesn't click.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a fixed-frequency tone generator.
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Min(t/0.01, 1.0)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator produces a sine tone gliding between two frequencies over
// a fixed sweep window, with a decaying envelope.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	window   int
	phase    float64
}

// NewSweepGenerator creates a frequency sweep generator.
func NewSweepGenerator(sr beep.SampleRate, from, to float64) *SweepGenerator {
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		window: sr.N(time.Millisecond * 300),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.window), 1.0)
		freq := g.from + (g.to-g.from)*progress

		// Integrate phase so the glide stays continuous.
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Exp(-progress * 3)
		sample := 0.2 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ArpeggioGenerator steps through a sequence of notes, one per fixed slot.
type ArpeggioGenerator struct {
	sr    beep.SampleRate
	notes []float64
	pos   int
	slot  int // Samples per note
}

// NewArpeggioGenerator creates a note-sequence generator.
func NewArpeggioGenerator(sr beep.SampleRate, notes ...float64) *ArpeggioGenerator {
	return &ArpeggioGenerator{
		sr:    sr,
		notes: notes,
		slot:  sr.N(time.Millisecond * 100),
	}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if len(g.notes) == 0 {
		return 0, false
	}
	for i := range samples {
		note := g.pos / g.slot
		if note >= len(g.notes) {
			note = len(g.notes) - 1
		}
		freq := g.notes[note]

		t := float64(g.pos) / float64(g.sr)
		slotT := float64(g.pos%g.slot) / float64(g.sr)
		envelope := math.Min(slotT/0.005, 1.0) * math.Exp(-slotT*10)

		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}
