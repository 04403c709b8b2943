package testutil

import (
	"math"
	"math/rand"
	"strings"
	"sync"
)

// runeSamples covers every UTF-8 encoded width.
var runeSamples = []rune{'a', 'z', '0', 'é', 'ß', 'Ж', '€', '漢', '😃', '𝄞'}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64. One draw in eight is an extreme
// (0, 1, MaxUint64-1 or MaxUint64) so overflow paths are exercised.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rand.Intn(8) == 0 {
		return []uint64{0, 1, math.MaxUint64 - 1, math.MaxUint64}[r.rand.Intn(4)]
	}
	return r.rand.Uint64()
}

// Uint64s returns n values drawn with Uint64.
func (r *RNG) Uint64s(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.Uint64()
	}
	return out
}

// UTF8String returns a string of n runes of mixed encoded width.
func (r *RNG) UTF8String(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sb strings.Builder
	for range n {
		sb.WriteRune(runeSamples[r.rand.Intn(len(runeSamples))])
	}
	return sb.String()
}

// Ints returns n values in [0, limit).
func (r *RNG) Ints(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(limit)
	}
	return out
}
