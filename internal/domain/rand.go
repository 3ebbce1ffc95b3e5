package domain

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Source yields the integer draws that drive synthetic signals: rain
// occurrence, runoff drift, warning-news counts. Scoring code never touches
// math/rand directly so tests can script exact draw sequences.
type Source interface {
	// IntBetween returns a uniform integer in [min, max], both inclusive.
	IntBetween(min, max int) int
}

type pcgSource struct {
	rng *rand.Rand
}

// NewSource creates a seeded random source. The same seed always produces
// the same draw sequence, which makes whole generation runs reproducible.
// Non-cryptographic PRNG is intentional. #nosec G404
func NewSource(seed int64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seedWord(seed, "hi"), seedWord(seed, "lo")))}
}

func (s *pcgSource) IntBetween(min, max int) int {
	return s.rng.IntN(max-min+1) + min
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d:%s", seed, salt)
	return h.Sum64()
}
