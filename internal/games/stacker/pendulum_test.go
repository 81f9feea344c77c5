package stacker

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-stacker/internal/core"
)

func TestPendulumSway(t *testing.T) {
	p := Pendulum{Speed: 0.02, Amplitude: 10}

	for i := 0; i < 10; i++ {
		p.Advance()
	}

	want := math.Sin(p.Angle) * 10
	if got := p.SwayX(); got != want {
		t.Errorf("SwayX() = %v, expected %v", got, want)
	}
	if p.SwayX() > 10 || p.SwayX() < -10 {
		t.Errorf("sway %v escaped the amplitude", p.SwayX())
	}
}

func TestPendulumCoversFullRange(t *testing.T) {
	p := Pendulum{Speed: 0.02, Amplitude: 10}

	minX, maxX := 0.0, 0.0
	// One full period is 2*pi/0.02 ticks
	for i := 0; i < 315; i++ {
		p.Advance()
		minX = math.Min(minX, p.SwayX())
		maxX = math.Max(maxX, p.SwayX())
	}

	if maxX < 9.9 || minX > -9.9 {
		t.Errorf("swing range [%v, %v] should approach [-10, 10]", minX, maxX)
	}
}

func TestPendulumDrivesSwingingBlock(t *testing.T) {
	g := newTestGame(t, 20)

	g.Step(core.NewInputFrame())

	if g.pendulum.Angle == 0 {
		t.Fatal("pendulum should advance on every live tick")
	}

	wantX := math.Sin(g.pendulum.Angle) * g.cfg.Pendulum.Amplitude
	if g.swinging.Pos.X != wantX {
		t.Errorf("swinging block x = %v, expected %v", g.swinging.Pos.X, wantX)
	}
	if g.swinging.Pos.Y != g.swingLevel() {
		t.Errorf("swinging block y = %v, expected swing level %v", g.swinging.Pos.Y, g.swingLevel())
	}

	// The kinematic body tracks the logical position exactly
	body := g.swinging.Body.Position()
	if body.X != g.swinging.Pos.X || body.Y != g.swinging.Pos.Y {
		t.Errorf("body position (%v, %v) diverged from block (%v, %v)",
			body.X, body.Y, g.swinging.Pos.X, g.swinging.Pos.Y)
	}
}

func TestSwingLevelTracksTowerHeight(t *testing.T) {
	g := newTestGame(t, 21)

	before := g.swingLevel()
	placeSwingingAt(g, 0)
	g.dropBlock()

	want := before + g.cfg.Block.Height
	if g.swingLevel() != want {
		t.Errorf("swing level after drop = %v, expected %v", g.swingLevel(), want)
	}

	g.Step(core.NewInputFrame())
	if g.swinging.Pos.Y != g.swingLevel() {
		t.Errorf("swinging block should track the raised swing level, y = %v", g.swinging.Pos.Y)
	}
}
