// Package physics defines the narrow rigid-body interface the game core
// consumes, plus a Chipmunk2D-backed implementation. Games own their world
// exclusively and mutate it only inside a simulation tick.
package physics

import "github.com/vovakirdan/tui-stacker/internal/core"

// BodyKind describes how the simulator integrates a body.
type BodyKind int

const (
	// KindStatic bodies never move and have infinite mass.
	KindStatic BodyKind = iota
	// KindKinematic bodies are positioned by game code and ignore gravity.
	KindKinematic
	// KindDynamic bodies are fully simulated: gravity, collisions, toppling.
	KindDynamic
)

// Group is a collision-filter tag. Bodies in GroupPendulum collide with
// nothing, which keeps the swinging block from touching the tower before
// it is dropped. Bodies in GroupTower collide with each other.
type Group uint

const (
	GroupTower Group = 1 << iota
	GroupPendulum
)

// Body is an opaque handle to a rigid body owned by a World.
type Body interface {
	// Position returns the body's current center position.
	Position() core.Vec3

	// SetPosition teleports the body. Valid for any kind; used to mirror
	// the pendulum position onto kinematic bodies and to snap perfect drops.
	SetPosition(pos core.Vec3)

	// Angle returns the body's rotation in radians.
	Angle() float64

	// SetMass changes the body's mass. Only meaningful for dynamic bodies.
	SetMass(mass float64)

	// SetKind switches the body between static, kinematic and dynamic
	// integration. Switching to dynamic requires a SetMass plus
	// RecomputeMass before the next Step.
	SetKind(kind BodyKind)

	// SetGroup reassigns the body's collision group.
	SetGroup(g Group)

	// RecomputeMass re-derives mass-dependent properties (moment of
	// inertia) from the current mass and the body's box extents. Must be
	// called after SetMass.
	RecomputeMass()
}

// World is the external rigid-body simulator contract. The production
// implementation wraps Chipmunk2D; tests may substitute their own.
type World interface {
	// AddBox creates a box-shaped body and inserts it into the world.
	// The Z extent and Z position are carried through unchanged: the
	// simulation itself runs in the X/Y plane.
	AddBox(pos, size core.Vec3, mass float64, kind BodyKind, group Group) Body

	// Remove releases a body and its shape from the world. The handle
	// must not be used afterwards.
	Remove(b Body)

	// Step advances the simulation by dt seconds.
	Step(dt float64)
}
