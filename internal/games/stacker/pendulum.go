package stacker

import "math"

// Pendulum is the deterministic oscillator that sways the block-in-play.
// No randomness, no damping: the horizontal offset is a pure function of
// the accumulated phase.
type Pendulum struct {
	Angle     float64 // Accumulated phase in radians
	Speed     float64 // Phase advance per tick
	Amplitude float64 // Horizontal sway in length-units
}

// Advance moves the phase forward by one tick.
func (p *Pendulum) Advance() {
	p.Angle += p.Speed
}

// SwayX returns the horizontal offset for the current phase.
func (p *Pendulum) SwayX() float64 {
	return math.Sin(p.Angle) * p.Amplitude
}
