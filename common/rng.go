package common

// RNG is the deterministic linear congruential generator shared by every gameplay
// stream. The same seed and the same sequence of calls always yield the same values.
type RNG struct {
	state int32
}

func NewRNG(seed int32) RNG {
	return RNG{state: seed}
}

// Next advances the stream and returns a value in [0, 0x7fff].
func (r *RNG) Next() int32 {
	r.state = r.state*214013 + 2531011
	return (r.state >> 16) & 0x7fff
}

// Range returns a value in the inclusive range [lo, hi].
func (r *RNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + int(r.Next())%(hi-lo+1)
}

// Chance reports true on average once every n calls.
func (r *RNG) Chance(n int) bool {
	return r.Range(0, n-1) == 0
}

// State exposes the raw generator state for checksums and snapshots.
func (r *RNG) State() int32 { return r.state }

func (r *RNG) Reseed(seed int32) { r.state = seed }

// Derive produces a seed for a child stream. The child is keyed by a draw from r and a
// salt (usually the actor type), so it only depends on r's own call history.
func (r *RNG) Derive(salt int) int32 {
	hi := r.Next()
	lo := r.Next()
	return (hi<<15 | lo) ^ int32(salt)*0x2545
}
