package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-stacker/internal/core"
)

// Simulation tuning. Slop and friction follow the usual Chipmunk box-stack
// settings; elasticity is zero so blocks land dead instead of bouncing.
const (
	defaultIterations = 20
	collisionSlop     = 0.1
	boxFriction       = 0.8
	boxElasticity     = 0.0
)

// Space is a Chipmunk2D-backed World. The stacking game plays in the X/Y
// plane; the depth coordinate of every body is stored on the handle and
// passed through untouched.
type Space struct {
	space *cp.Space
}

// NewSpace creates a physics world with the given downward gravity
// (length-units per second squared, negative pulls down).
func NewSpace(gravityY float64) *Space {
	space := cp.NewSpace()
	space.Iterations = defaultIterations
	space.SetGravity(cp.Vector{X: 0, Y: gravityY})
	space.SetCollisionSlop(collisionSlop)
	return &Space{space: space}
}

// boxBody implements Body for a box shape in a Chipmunk space.
type boxBody struct {
	body  *cp.Body
	shape *cp.Shape
	size  core.Vec3
	z     float64
}

// AddBox implements World.
func (s *Space) AddBox(pos, size core.Vec3, mass float64, kind BodyKind, group Group) Body {
	var body *cp.Body
	switch kind {
	case KindStatic:
		body = cp.NewStaticBody()
	case KindKinematic:
		body = cp.NewKinematicBody()
	default:
		body = cp.NewBody(mass, cp.MomentForBox(mass, size.X, size.Y))
	}
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	s.space.AddBody(body)

	shape := s.space.AddShape(cp.NewBox(body, size.X, size.Y, 0))
	shape.SetFriction(boxFriction)
	shape.SetElasticity(boxElasticity)
	shape.SetFilter(filterFor(group))

	return &boxBody{body: body, shape: shape, size: size, z: pos.Z}
}

// Remove implements World.
func (s *Space) Remove(b Body) {
	bb, ok := b.(*boxBody)
	if !ok {
		return
	}
	s.space.RemoveShape(bb.shape)
	s.space.RemoveBody(bb.body)
}

// Step implements World.
func (s *Space) Step(dt float64) {
	s.space.Step(dt)
}

// filterFor maps a collision group to a Chipmunk shape filter. Pendulum
// bodies carry an empty mask so they collide with nothing.
func filterFor(g Group) cp.ShapeFilter {
	if g == GroupPendulum {
		return cp.NewShapeFilter(cp.NO_GROUP, uint(GroupPendulum), 0)
	}
	return cp.NewShapeFilter(cp.NO_GROUP, uint(GroupTower), uint(GroupTower))
}

func (b *boxBody) Position() core.Vec3 {
	p := b.body.Position()
	return core.Vec3{X: p.X, Y: p.Y, Z: b.z}
}

func (b *boxBody) SetPosition(pos core.Vec3) {
	b.body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	b.z = pos.Z
}

func (b *boxBody) Angle() float64 {
	return b.body.Angle()
}

func (b *boxBody) SetMass(mass float64) {
	b.body.SetMass(mass)
}

func (b *boxBody) SetKind(kind BodyKind) {
	switch kind {
	case KindStatic:
		b.body.SetType(cp.BODY_STATIC)
	case KindKinematic:
		b.body.SetType(cp.BODY_KINEMATIC)
	default:
		b.body.SetType(cp.BODY_DYNAMIC)
	}
}

func (b *boxBody) SetGroup(g Group) {
	b.shape.SetFilter(filterFor(g))
}

func (b *boxBody) RecomputeMass() {
	b.body.SetMoment(cp.MomentForBox(b.body.Mass(), b.size.X, b.size.Y))
}

// Ensure the adapter satisfies the port.
var (
	_ World = (*Space)(nil)
	_ Body  = (*boxBody)(nil)
)
