// Package stacker implements a physics-assisted tower-stacking game.
// A pendulum sways the block-in-play above a growing tower; the player
// drops it, and alignment with the block below decides the score and
// whether the block joins the stack cleanly or topples off.
package stacker

import (
	"github.com/vovakirdan/tui-stacker/internal/core"
	"github.com/vovakirdan/tui-stacker/internal/physics"
)

// KinematicState describes who owns a block's motion.
type KinematicState int

const (
	// StateSwinging blocks are positioned by the pendulum controller.
	StateSwinging KinematicState = iota
	// StateSettled blocks are part of the tower, simulated by the physics world.
	StateSettled
	// StateFalling blocks have been dislodged from the tower and are on
	// their way out of the playable volume.
	StateFalling
)

// String returns a human-readable name for the state.
func (s KinematicState) String() string {
	switch s {
	case StateSwinging:
		return "Swinging"
	case StateSettled:
		return "Settled"
	case StateFalling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// Block is a single physical block. One concrete type covers the base
// slab, the block-in-play and every settled block; the KinematicState tag
// and the physics handle replace any specialization.
type Block struct {
	Size  core.Vec3      // Fixed extents, shared across the session
	Pos   core.Vec3      // Mutable center position, synced from physics
	Color core.Color     // Assigned at spawn, immutable afterwards
	Body  physics.Body   // Opaque handle into the physics world
	Group physics.Group  // Tower or Pendulum collision group
	State KinematicState // Swinging, Settled or Falling

	// settleY is the vertical level the block was booked at when it
	// joined the tower. Sinking well below it marks the block Falling.
	settleY float64
}

// syncFromBody refreshes the visual position from the physics body.
func (b *Block) syncFromBody() {
	if b.Body != nil {
		b.Pos = b.Body.Position()
	}
}
