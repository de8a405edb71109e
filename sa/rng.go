package sa

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === AnalysisKey ===

// AnalysisKey uniquely identifies a reproducible sensitivity analysis.
// Two analyses with the same AnalysisKey, factor space and evaluator
// MUST produce bit-for-bit identical indices, regardless of worker count.
type AnalysisKey int64

// NewAnalysisKey creates an AnalysisKey from a seed value.
func NewAnalysisKey(seed int64) AnalysisKey {
	return AnalysisKey(seed)
}

// === Stream names ===

const (
	// StreamUncertainty is the RNG stream for plain Monte Carlo weight draws.
	// Uses the master seed directly.
	StreamUncertainty = "uncertainty"
)

// StreamRun returns the stream name for Monte Carlo run i.
func StreamRun(i int) string {
	return fmt.Sprintf("run_%d", i)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per stream.
//
// Derivation formula:
//   - For StreamUncertainty: uses masterSeed directly
//   - For all other streams: masterSeed XOR fnv1a64(streamName)
//
// Thread-safety: NOT thread-safe. Workers that need a per-run source
// should call NewRunRNG, which does not touch the cache.
type PartitionedRNG struct {
	key     AnalysisKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from an AnalysisKey.
func NewPartitionedRNG(key AnalysisKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:     key,
		streams: make(map[string]*rand.Rand),
	}
}

// ForStream returns a deterministically-seeded RNG for the named stream.
// The same name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForStream(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(deriveSeed(p.key, name)))
	p.streams[name] = rng
	return rng
}

// Key returns the AnalysisKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() AnalysisKey {
	return p.key
}

// RunSeed returns the seed of Monte Carlo run i under key.
// Pure function of (key, i): safe to call from any goroutine.
func RunSeed(key AnalysisKey, i int) int64 {
	return deriveSeed(key, StreamRun(i))
}

// NewRunRNG returns a fresh RNG for Monte Carlo run i under key.
func NewRunRNG(key AnalysisKey, i int) *rand.Rand {
	return rand.New(rand.NewSource(RunSeed(key, i)))
}

func deriveSeed(key AnalysisKey, name string) int64 {
	if name == StreamUncertainty {
		return int64(key)
	}
	return int64(key) ^ fnv1a64(name)
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
