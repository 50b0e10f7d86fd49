// Package clock provides the clock capability: an injectable source of
// the current instant. Core packages never call time.Now directly;
// they depend on a Clock so tests can freeze or script time without
// patching global state.
package clock

import (
	"errors"
	"time"
)

// ErrUnavailable is returned when a clock cannot produce an instant.
// Callers surface it unchanged; there is no retry policy.
var ErrUnavailable = errors.New("clock unavailable")

// Clock produces the current instant. Implementations must be safe for
// concurrent use.
type Clock interface {
	// Now returns the current instant on the UTC timescale. An error
	// means the clock failed; it wraps or is ErrUnavailable.
	Now() (time.Time, error)
}

// Real reads the system clock. Use only at entry points (cmd/*);
// everything below takes a Clock.
type Real struct{}

// Now returns time.Now in UTC. It never fails.
func (Real) Now() (time.Time, error) {
	return time.Now().UTC(), nil
}

// Fixed always returns the same instant. The test analog of freezing
// the process clock.
type Fixed struct {
	T time.Time
}

// NewFixed returns a Clock frozen at t.
func NewFixed(t time.Time) Fixed {
	return Fixed{T: t}
}

// Now returns the frozen instant.
func (f Fixed) Now() (time.Time, error) {
	return f.T, nil
}

// Func adapts a function to the Clock interface, for stepped or
// scripted time sources in tests.
type Func func() (time.Time, error)

// Now calls the wrapped function.
func (f Func) Now() (time.Time, error) {
	return f()
}

// Stuck is a clock that always fails with ErrUnavailable. It exists to
// exercise error propagation in callers.
type Stuck struct{}

// Now always returns ErrUnavailable.
func (Stuck) Now() (time.Time, error) {
	return time.Time{}, ErrUnavailable
}

var (
	_ Clock = Real{}
	_ Clock = Fixed{}
	_ Clock = Func(nil)
	_ Clock = Stuck{}
)
