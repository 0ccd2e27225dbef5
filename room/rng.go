package room

import (
	"hash/fnv"
	"math/rand"
)

// NewDeterministicRNG seeds a *rand.Rand from a root seed string: the same
// seed always reproduces the same stream across process restarts.
func NewDeterministicRNG(rootSeed string) *rand.Rand {
	return rand.New(rand.NewSource(hashSeed(rootSeed)))
}

// SubsystemRNG derives an independent, reproducible RNG stream for a named
// subsystem (weapon spread, event scheduling, KOTH tiebreaks) from the
// room's root seed, so subsystems never share or perturb each other's draw
// sequence.
func SubsystemRNG(rootSeed, label string) *rand.Rand {
	return rand.New(rand.NewSource(hashSeed(rootSeed + "::" + label)))
}

func hashSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
