package stacker

import (
	"testing"

	"github.com/vovakirdan/tui-stacker/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

// placeSwingingAt moves the block-in-play to an exact horizontal offset,
// bypassing the pendulum, so drop alignment is controlled precisely.
func placeSwingingAt(g *Game, x float64) {
	pos := core.Vec3{X: x, Y: g.swingLevel(), Z: 0}
	g.swinging.Pos = pos
	g.swinging.Body.SetPosition(pos)
}

func TestDropScoringThresholds(t *testing.T) {
	tests := []struct {
		name      string
		alignment float64
		points    int
	}{
		{"dead center", 0.0, 10},
		{"forgiven near miss", 0.3, 10},
		{"just inside perfect", 0.49, 10},
		{"perfect boundary is partial", 0.5, 5},
		{"partial", 1.0, 5},
		{"just inside partial", 1.99, 5},
		{"partial boundary is poor", 2.0, 1},
		{"wide miss", 3.5, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			placeSwingingAt(g, tc.alignment)

			g.dropBlock()

			if g.score != tc.points {
				t.Errorf("alignment %v scored %d, expected %d", tc.alignment, g.score, tc.points)
			}
		})
	}
}

func TestDropSettlesAndRespawns(t *testing.T) {
	g := newTestGame(t, 2)
	old := g.swinging
	placeSwingingAt(g, 0.2)

	g.dropBlock()

	if old.State != StateSettled {
		t.Errorf("dropped block state = %v, expected Settled", old.State)
	}
	if g.tower.Len() != 2 {
		t.Errorf("settled count = %d, expected 2 (base + dropped)", g.tower.Len())
	}
	if g.tower.Top() != old {
		t.Error("dropped block should be the new tower top")
	}
	if g.swinging == nil || g.swinging == old {
		t.Error("a fresh swinging block should spawn after every drop")
	}
	if g.swinging.State != StateSwinging {
		t.Errorf("new block state = %v, expected Swinging", g.swinging.State)
	}
	if g.spawnCount != 1 {
		t.Errorf("spawnCount = %d, expected 1", g.spawnCount)
	}

	// New block spawns centered, a fixed offset above the new tower top
	wantY := g.tower.Height() + g.cfg.Block.Height*g.cfg.Pendulum.HeightOffset
	if g.swinging.Pos.X != 0 || g.swinging.Pos.Y != wantY {
		t.Errorf("spawn position = (%v, %v), expected (0, %v)", g.swinging.Pos.X, g.swinging.Pos.Y, wantY)
	}
}

func TestFirstDropScenario(t *testing.T) {
	// Base at height 0, first drop with alignment 0.3
	g := newTestGame(t, 3)
	placeSwingingAt(g, 0.3)

	g.dropBlock()

	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
	if g.tower.Height() != g.cfg.Block.Height {
		t.Errorf("tower height = %v, expected %v", g.tower.Height(), g.cfg.Block.Height)
	}
	if g.tower.Len() != 2 {
		t.Errorf("settled count = %d, expected 2", g.tower.Len())
	}
}

func TestPerfectDropSnapsOntoTop(t *testing.T) {
	g := newTestGame(t, 4)
	placeSwingingAt(g, 0.3)
	dropY := g.swinging.Pos.Y

	g.dropBlock()

	top := g.tower.Top()
	if top.Pos.X != 0 || top.Pos.Z != 0 {
		t.Errorf("perfect drop should snap to (0, 0) horizontally, got (%v, %v)", top.Pos.X, top.Pos.Z)
	}
	if top.Pos.Y != dropY {
		t.Errorf("snap must not change the vertical position, got %v want %v", top.Pos.Y, dropY)
	}
	if body := top.Body.Position(); body.X != 0 {
		t.Errorf("snap must overwrite the physics position too, body at x=%v", body.X)
	}
}

func TestPartialDropKeepsPosition(t *testing.T) {
	g := newTestGame(t, 5)
	placeSwingingAt(g, 1.2)

	g.dropBlock()

	if got := g.tower.Top().Pos.X; got != 1.2 {
		t.Errorf("partial drop should settle where it lands, got x=%v", got)
	}
}

func TestTowerHeightAfterConsecutiveDrops(t *testing.T) {
	g := newTestGame(t, 6)

	const n = 5
	for i := 0; i < n; i++ {
		placeSwingingAt(g, 0)
		g.dropBlock()
	}

	want := float64(n) * g.cfg.Block.Height
	if g.tower.Height() != want {
		t.Errorf("height after %d drops = %v, expected %v", n, g.tower.Height(), want)
	}
	if g.tower.Len() != n+1 {
		t.Errorf("settled count = %d, expected %d", g.tower.Len(), n+1)
	}
}

func TestColorRotatesEveryFifthSpawn(t *testing.T) {
	g := newTestGame(t, 7)

	for i := 1; i <= 10; i++ {
		placeSwingingAt(g, 0)
		g.dropBlock()

		want := i / 5
		if g.rotations != want {
			t.Errorf("after spawn %d: rotations = %d, expected %d", i, g.rotations, want)
		}
	}
}

func TestFallenBlockRemovedOnce(t *testing.T) {
	g := newTestGame(t, 8)
	placeSwingingAt(g, 1.0)
	g.dropBlock()
	scoreAfterDrop := g.score
	heightAfterDrop := g.tower.Height()

	// Push the settled block below the out-of-bounds threshold
	b := g.tower.Top()
	b.Body.SetPosition(core.Vec3{X: 1.0, Y: -10.01, Z: 0})

	g.Step(core.NewInputFrame())

	if g.tower.Len() != 1 {
		t.Fatalf("settled count = %d, expected 1 (only the base)", g.tower.Len())
	}
	if g.score != scoreAfterDrop-g.cfg.Scoring.FallPenalty {
		t.Errorf("score = %d, expected %d", g.score, scoreAfterDrop-g.cfg.Scoring.FallPenalty)
	}
	if g.tower.Height() != heightAfterDrop-g.cfg.Block.Height {
		t.Errorf("height = %v, expected %v", g.tower.Height(), heightAfterDrop-g.cfg.Block.Height)
	}

	// Lingering near the threshold must not double-charge
	scoreAfterRemoval := g.score
	g.Step(core.NewInputFrame())
	if g.score != scoreAfterRemoval {
		t.Errorf("score changed again after removal: %d -> %d", scoreAfterRemoval, g.score)
	}
	if g.tower.Len() != 1 {
		t.Errorf("settled count changed again after removal: %d", g.tower.Len())
	}
}

func TestPoorDropEventuallyFallsAndScoresPenalty(t *testing.T) {
	g := newTestGame(t, 9)
	placeSwingingAt(g, 3.5) // No overlap with the base at all
	g.dropBlock()
	scoreAfterDrop := g.score
	b := g.tower.Top()

	sawFalling := false
	for i := 0; i < 600 && g.tower.Len() > 1; i++ {
		g.Step(core.NewInputFrame())
		if b.State == StateFalling {
			sawFalling = true
		}
	}

	if g.tower.Len() != 1 {
		t.Fatal("free-hanging block should leave the playable volume")
	}
	if !sawFalling {
		t.Error("dislodged block should pass through the Falling state")
	}
	if g.score != scoreAfterDrop-g.cfg.Scoring.FallPenalty {
		t.Errorf("score = %d, expected %d", g.score, scoreAfterDrop-g.cfg.Scoring.FallPenalty)
	}
}

func TestBaseBlockIsNeverRemoved(t *testing.T) {
	g := newTestGame(t, 10)
	base := g.tower.Base()

	// Even a corrupted world state must not evict the base
	base.Body.SetPosition(core.Vec3{Y: -12})
	g.Step(core.NewInputFrame())

	if g.tower.Base() != base {
		t.Fatal("base slab must stay in the stack")
	}
	if g.tower.Len() != 1 {
		t.Errorf("settled count = %d, expected 1", g.tower.Len())
	}
	if g.score != 0 {
		t.Errorf("base handling must not touch the score, got %d", g.score)
	}
}

func TestDropTriggerWithoutSwingingBlockIsNoop(t *testing.T) {
	g := newTestGame(t, 11)
	g.swinging = nil

	in := core.NewInputFrame()
	in.Set(core.ActionDrop)
	g.Step(in)

	if g.score != 0 || g.spawnCount != 0 {
		t.Errorf("drop with no swinging block changed state: score=%d spawns=%d", g.score, g.spawnCount)
	}
	if g.tower.Len() != 1 {
		t.Errorf("settled count = %d, expected 1", g.tower.Len())
	}
}

func TestZenModeSkipsFallPenalty(t *testing.T) {
	g := NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12})

	placeSwingingAt(g, 1.0)
	g.dropBlock()
	scoreAfterDrop := g.score

	b := g.tower.Top()
	b.Body.SetPosition(core.Vec3{X: 1.0, Y: -10.5, Z: 0})
	g.Step(core.NewInputFrame())

	if g.tower.Len() != 1 {
		t.Fatal("zen mode still removes fallen blocks")
	}
	if g.score != scoreAfterDrop {
		t.Errorf("zen mode must not apply the fall penalty, score %d -> %d", scoreAfterDrop, g.score)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 13)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if g.state != StatePaused {
		t.Fatalf("state = %s, expected paused", g.state)
	}

	angle := g.pendulum.Angle
	g.Step(core.NewInputFrame())
	if g.pendulum.Angle != angle {
		t.Error("pendulum must not advance while paused")
	}

	g.Step(pause)
	if g.state == StatePaused {
		t.Error("second pause press should resume")
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, 14)
	placeSwingingAt(g, 0)
	g.dropBlock()

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.score != 0 || g.spawnCount != 0 || g.tower.Len() != 1 {
		t.Errorf("restart should reset the session: score=%d spawns=%d settled=%d",
			g.score, g.spawnCount, g.tower.Len())
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 12345)
		for tick := 0; tick < 240; tick++ {
			in := core.NewInputFrame()
			if tick == 30 || tick == 90 || tick == 150 {
				in.Set(core.ActionDrop)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.TowerHeight != snap2.TowerHeight {
		t.Errorf("determinism failed: heights differ. Run1=%v, Run2=%v", snap1.TowerHeight, snap2.TowerHeight)
	}
}
