package identifier

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// Generator produces the 64-bit identifiers used for both users and tasks.
//
// Generation never fails and never checks for collisions; uniqueness is
// enforced by the store with a pre-insert existence check.
type Generator interface {
	// Generate returns an identifier derived from the seed string and
	// process-local entropy. An empty seed is valid; uniqueness then rests
	// entirely on the time-seeded random draw, so callers generating several
	// unseeded ids within the same nanosecond may collide.
	Generate(seed string) uint64
}

// idMask keeps generated ids inside the non-negative int64 range so they
// survive SQL bigint columns and database/sql parameter binding.
const idMask = 1<<63 - 1

type clockSeededGenerator struct{}

// NewGenerator creates the default Generator.
func NewGenerator() Generator {
	return clockSeededGenerator{}
}

// Generate XORs a 64-bit FNV-1a hash of the seed with 64 random bits drawn
// from a PRNG seeded with the current wall-clock nanoseconds. The hash keeps
// ids for distinct seeds apart even when two calls share a nanosecond.
func (clockSeededGenerator) Generate(seed string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(seed))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return (rng.Uint64() ^ h.Sum64()) & idMask
}
