package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-stacker/internal/core"
)

const dt = 1.0 / 60.0

func TestDynamicBodyFalls(t *testing.T) {
	w := NewSpace(-30)

	b := w.AddBox(core.Vec3{Y: 10}, core.Vec3{X: 3, Y: 1, Z: 3}, 1, KindDynamic, GroupTower)

	for i := 0; i < 60; i++ {
		w.Step(dt)
	}

	if b.Position().Y >= 10 {
		t.Errorf("dynamic body should fall under gravity, still at y=%v", b.Position().Y)
	}
}

func TestKinematicBodyIgnoresGravity(t *testing.T) {
	w := NewSpace(-30)

	b := w.AddBox(core.Vec3{Y: 10}, core.Vec3{X: 3, Y: 1, Z: 3}, 0, KindKinematic, GroupPendulum)

	for i := 0; i < 60; i++ {
		w.Step(dt)
	}

	if b.Position().Y != 10 {
		t.Errorf("kinematic body should hold position, moved to y=%v", b.Position().Y)
	}
}

func TestDynamicBodyRestsOnStatic(t *testing.T) {
	w := NewSpace(-30)

	w.AddBox(core.Vec3{Y: 0}, core.Vec3{X: 3, Y: 1, Z: 3}, 0, KindStatic, GroupTower)
	b := w.AddBox(core.Vec3{Y: 4}, core.Vec3{X: 3, Y: 1, Z: 3}, 1, KindDynamic, GroupTower)

	for i := 0; i < 300; i++ {
		w.Step(dt)
	}

	// Centers one block-height apart when resting, within collision slop
	got := b.Position().Y
	if math.Abs(got-1) > 0.25 {
		t.Errorf("body should rest on the static block at y≈1, got y=%v", got)
	}
}

func TestPendulumGroupDoesNotCollide(t *testing.T) {
	w := NewSpace(-30)

	w.AddBox(core.Vec3{Y: 0}, core.Vec3{X: 3, Y: 1, Z: 3}, 0, KindStatic, GroupTower)
	b := w.AddBox(core.Vec3{Y: 4}, core.Vec3{X: 3, Y: 1, Z: 3}, 1, KindDynamic, GroupPendulum)

	for i := 0; i < 300; i++ {
		w.Step(dt)
	}

	// Falls straight through the static block
	if b.Position().Y > -5 {
		t.Errorf("pendulum-group body should pass through the tower, stuck at y=%v", b.Position().Y)
	}
}

func TestKinematicToDynamicTransition(t *testing.T) {
	w := NewSpace(-30)

	b := w.AddBox(core.Vec3{Y: 10}, core.Vec3{X: 3, Y: 1, Z: 3}, 0, KindKinematic, GroupPendulum)

	w.Step(dt)
	if b.Position().Y != 10 {
		t.Fatalf("body should not move while kinematic")
	}

	b.SetKind(KindDynamic)
	b.SetMass(1)
	b.RecomputeMass()
	b.SetGroup(GroupTower)

	for i := 0; i < 60; i++ {
		w.Step(dt)
	}

	if b.Position().Y >= 10 {
		t.Errorf("body should fall after becoming dynamic, still at y=%v", b.Position().Y)
	}
}

func TestRemoveBody(t *testing.T) {
	w := NewSpace(-30)

	floor := w.AddBox(core.Vec3{Y: 0}, core.Vec3{X: 30, Y: 1, Z: 3}, 0, KindStatic, GroupTower)
	b := w.AddBox(core.Vec3{Y: 4}, core.Vec3{X: 3, Y: 1, Z: 3}, 1, KindDynamic, GroupTower)

	w.Remove(floor)

	for i := 0; i < 300; i++ {
		w.Step(dt)
	}

	// With the floor gone the box keeps falling
	if b.Position().Y > -5 {
		t.Errorf("box should fall past removed floor, stuck at y=%v", b.Position().Y)
	}
}

func TestDepthCoordinatePassthrough(t *testing.T) {
	w := NewSpace(-30)

	b := w.AddBox(core.Vec3{X: 1, Y: 2, Z: 0.5}, core.Vec3{X: 3, Y: 1, Z: 3}, 1, KindDynamic, GroupTower)

	for i := 0; i < 30; i++ {
		w.Step(dt)
	}

	if b.Position().Z != 0.5 {
		t.Errorf("depth should be carried through unchanged, got z=%v", b.Position().Z)
	}

	b.SetPosition(core.Vec3{X: 1, Y: 2, Z: -0.25})
	if b.Position().Z != -0.25 {
		t.Errorf("SetPosition should update depth, got z=%v", b.Position().Z)
	}
}
