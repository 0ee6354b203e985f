package backoff

import (
	"iter"
	"math"
	"math/rand/v2"
	"time"
)

// Delay computes the sequence element for a single 0-based attempt: the
// duration to wait after that attempt fails, and ok reporting whether a
// further attempt should be made. The last element of the sequence
// (attempt == Retries()-1) and any attempt past it report ok=false.
//
// Delay is a pure function of the configuration apart from the jitter
// draw; with jitter 0 it is fully deterministic.
func (b Backoff) Delay(attempt uint) (time.Duration, bool) {
	if b.retries == 0 || attempt >= b.retries-1 {
		return 0, false
	}

	var rng *rand.Rand
	if b.jitter > 0 {
		rng = b.rand()
	}

	return b.delay(attempt, rng), true
}

// Delays returns the lazy delay sequence: exactly Retries() elements, the
// last with ok=false to signal exhaustion, all earlier ones a duration
// within [min, max]. The sequence is restartable; each range re-derives
// it with fresh jitter draws.
func (b Backoff) Delays() iter.Seq2[time.Duration, bool] {
	return b.DelaysFrom(0)
}

// DelaysFrom returns the delay sequence resumed at the given 0-based
// attempt, yielding the remaining Retries()-start elements. A start at or
// past Retries() yields nothing.
func (b Backoff) DelaysFrom(start uint) iter.Seq2[time.Duration, bool] {
	return func(yield func(time.Duration, bool) bool) {
		if b.retries == 0 || start >= b.retries {
			return
		}

		var rng *rand.Rand
		if b.jitter > 0 {
			rng = b.rand()
		}

		for attempt := start; attempt < b.retries-1; attempt++ {
			if !yield(b.delay(attempt, rng), true) {
				return
			}
		}

		yield(0, false)
	}
}

// delay computes min * factor^attempt saturated to max, applies the
// jitter draw in [-jitter*raw, +jitter*raw], and clamps the result back
// into [min, max]. rng may be nil when jitter is 0.
func (b Backoff) delay(attempt uint, rng *rand.Rand) time.Duration {
	raw := float64(b.min) * math.Pow(b.factor, float64(attempt))

	// Saturate before jittering; covers both exceeding max and float
	// overflow to +Inf.
	if raw > float64(b.max) {
		raw = float64(b.max)
	}

	if b.jitter > 0 {
		spread := b.jitter * raw
		raw += (rng.Float64()*2 - 1) * spread
	}

	d := time.Duration(raw)
	if d < b.min {
		d = b.min
	}

	if d > b.max {
		d = b.max
	}

	return d
}
