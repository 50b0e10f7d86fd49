// Package zonerule provides the zone-rule capability: resolving a named
// civil timezone to the offset rules that map instants to wall-clock
// readings and back. The rules are exposed as a *time.Location, which
// carries the zone's full historical and future DST transition table;
// consumers apply it through the time package and never branch on DST
// themselves.
//
// The capability is an interface rather than a direct time.LoadLocation
// call so that tests can substitute fixed or synthetic rule sets and so
// that resolution can be cached process-wide.
package zonerule

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidZone is the sentinel matched by errors.Is for any zone name
// the provider does not recognize. An invalid zone is a programming or
// configuration error: fatal to the call, never retried.
var ErrInvalidZone = errors.New("invalid timezone")

// InvalidZoneError reports an unrecognized zone name. It matches
// ErrInvalidZone and wraps the underlying lookup failure when there is
// one.
type InvalidZoneError struct {
	Name string
	Err  error
}

func (e *InvalidZoneError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid timezone %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("invalid timezone %q", e.Name)
}

func (e *InvalidZoneError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidZone.
func (e *InvalidZoneError) Is(target error) bool { return target == ErrInvalidZone }

// Provider resolves zone names to rule sets. Implementations must be
// safe for concurrent use; resolved locations are read-only for the
// process lifetime.
type Provider interface {
	// Resolve returns the rule set for the named zone, or an error
	// matching ErrInvalidZone if the name is not recognized.
	Resolve(name string) (*time.Location, error)
}

// IANA resolves zone names against the IANA timezone database via the
// time package (system tzdata or the embedded copy).
type IANA struct{}

// Resolve looks up an Olson-style name such as "Europe/London". The
// empty string is rejected rather than defaulting to UTC: a missing
// zone is a caller bug this package refuses to paper over.
func (IANA) Resolve(name string) (*time.Location, error) {
	if name == "" {
		return nil, &InvalidZoneError{Name: name}
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &InvalidZoneError{Name: name, Err: err}
	}
	return loc, nil
}

// FixedProvider serves rule sets from an in-memory map, for tests that
// need deterministic or synthetic zones (including time.FixedZone
// values) without touching tzdata.
type FixedProvider struct {
	zones map[string]*time.Location
}

// NewFixedProvider returns a provider backed by the given map. The map
// is not copied; callers must not mutate it afterwards.
func NewFixedProvider(zones map[string]*time.Location) *FixedProvider {
	return &FixedProvider{zones: zones}
}

// Resolve returns the mapped location or an InvalidZoneError.
func (p *FixedProvider) Resolve(name string) (*time.Location, error) {
	loc, ok := p.zones[name]
	if !ok {
		return nil, &InvalidZoneError{Name: name}
	}
	return loc, nil
}

var (
	_ Provider = IANA{}
	_ Provider = (*FixedProvider)(nil)
)
