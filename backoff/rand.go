package backoff

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// Source returns a copy of the configuration drawing jitter from src.
// Sequences derived from the copy share the source, so a deterministic
// source (e.g. rand.NewPCG with fixed seeds) reproduces the same
// jittered delays. Without an injected source every iteration gets an
// independent crypto-seeded generator.
func (b Backoff) Source(src rand.Source) Backoff {
	b.src = src

	return b
}

// rand returns the generator used for jitter draws.
func (b Backoff) rand() *rand.Rand {
	if b.src != nil {
		return rand.New(b.src)
	}

	return rand.New(rand.NewPCG(cryptoSeed())) // #nosec G404 -- jitter is not security critical
}

// cryptoSeed derives PCG seeds from crypto/rand, falling back to the wall
// clock if entropy is unavailable so jitter never blocks.
func cryptoSeed() (uint64, uint64) {
	var seed [16]byte

	if _, err := crand.Read(seed[:]); err != nil {
		now := uint64(time.Now().UnixNano()) // #nosec G115 -- wraparound is harmless in a seed

		return now, now ^ 0x9e3779b97f4a7c15
	}

	return binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:])
}
