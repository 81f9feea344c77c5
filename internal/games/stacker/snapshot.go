package stacker

import "math"

// Snapshot captures the observable game state for determinism testing.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick        uint64
	Score       int
	SpawnCount  int
	Rotations   int
	State       string
	Mode        int
	Angle       float64
	TowerHeight float64
	Color       int
	RNGState    uint64

	// Swinging block position; zeroes when no block is in play
	SwingX, SwingY float64

	// Settled stack (each block is 5 values: x, y, z, state, color)
	BlockCount int
	BlockData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blocks := g.tower.Blocks()
	blockData := make([]float64, 0, len(blocks)*5)
	for _, b := range blocks {
		blockData = append(blockData,
			b.Pos.X, b.Pos.Y, b.Pos.Z,
			float64(b.State), float64(b.Color),
		)
	}

	snap := Snapshot{
		Tick:        uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:       g.score,
		SpawnCount:  g.spawnCount,
		Rotations:   g.rotations,
		State:       g.state,
		Mode:        int(g.mode),
		Angle:       g.pendulum.Angle,
		TowerHeight: g.tower.Height(),
		Color:       int(g.currentColor),
		RNGState:    g.rng.state,
		BlockCount:  len(blocks),
		BlockData:   blockData,
	}
	if g.swinging != nil {
		snap.SwingX = g.swinging.Pos.X
		snap.SwingY = g.swinging.Pos.Y
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rotations)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Color)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlockCount) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Angle)
	h = h*31 + math.Float64bits(snap.TowerHeight)
	h = h*31 + math.Float64bits(snap.SwingX)
	h = h*31 + math.Float64bits(snap.SwingY)

	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}
	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState
	return h
}
