package stacker

// rng is a small deterministic xorshift generator used for palette picks.
// Kept separate from math/rand so its state is a single word that can be
// captured in snapshots for determinism tests.
type rng struct {
	state uint64
}

// newRNG seeds the generator. A zero seed is remapped because xorshift
// has a fixed point at zero.
func newRNG(seed int64) *rng {
	s := uint64(seed) //#nosec G115 -- bit reinterpretation is intended
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	return &rng{state: s}
}

func (r *rng) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a uniform value in [0, n).
func (r *rng) Intn(n int) int {
	return int(r.next() % uint64(n)) //#nosec G115 -- n is a small palette size
}
