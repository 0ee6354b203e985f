package backoff

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// Defaults applied by New.
const (
	DefaultMin    = 100 * time.Millisecond
	DefaultMax    = 10 * time.Second
	DefaultFactor = 2.0
)

// Configuration errors returned by the builder methods.
var (
	// ErrInvalidRange is returned when min is negative or exceeds max.
	ErrInvalidRange = errors.New("invalid delay range")

	// ErrInvalidFactor is returned when the growth factor is not positive.
	ErrInvalidFactor = errors.New("factor must be positive")

	// ErrInvalidJitter is returned when the jitter fraction is outside [0, 1].
	ErrInvalidJitter = errors.New("jitter must be within [0, 1]")
)

// Backoff is an immutable exponential backoff configuration.
//
// The zero value is inert (an already-exhausted sequence); use New to
// obtain a useful configuration. Values are safe to copy and to share
// across goroutines: iteration never mutates the configuration.
type Backoff struct {
	retries uint
	min     time.Duration
	max     time.Duration
	factor  float64
	jitter  float64
	src     rand.Source
}

// New creates a configuration producing a sequence of retries elements,
// bounded by DefaultMin and DefaultMax, growing by DefaultFactor, with no
// jitter. Adjust with Range, Factor, Jitter, and Source.
func New(retries uint) Backoff {
	return Backoff{
		retries: retries,
		min:     DefaultMin,
		max:     DefaultMax,
		factor:  DefaultFactor,
	}
}

// Range returns a copy of the configuration bounded by [min, max].
// Returns ErrInvalidRange if min is negative or exceeds max.
func (b Backoff) Range(min, max time.Duration) (Backoff, error) {
	if min < 0 {
		return Backoff{}, fmt.Errorf("%w: min %v is negative", ErrInvalidRange, min)
	}

	if min > max {
		return Backoff{}, fmt.Errorf("%w: min %v exceeds max %v", ErrInvalidRange, min, max)
	}

	b.min = min
	b.max = max

	return b, nil
}

// Factor returns a copy of the configuration growing each delay by factor.
// Returns ErrInvalidFactor if factor is not positive. Factors below 1 are
// allowed and shrink toward min.
func (b Backoff) Factor(factor float64) (Backoff, error) {
	if factor <= 0 {
		return Backoff{}, fmt.Errorf("%w: got %v", ErrInvalidFactor, factor)
	}

	b.factor = factor

	return b, nil
}

// Jitter returns a copy of the configuration randomizing each delay by up
// to the given fraction of its unjittered value, in either direction.
// Returns ErrInvalidJitter if jitter is outside [0, 1].
func (b Backoff) Jitter(jitter float64) (Backoff, error) {
	if jitter < 0 || jitter > 1 {
		return Backoff{}, fmt.Errorf("%w: got %v", ErrInvalidJitter, jitter)
	}

	b.jitter = jitter

	return b, nil
}

// Retries returns the number of elements the delay sequence produces.
func (b Backoff) Retries() uint {
	return b.retries
}
