package period

import (
	"log/slog"

	"github.com/codeGROOVE-dev/tzperiod/pkg/clock"
	"github.com/codeGROOVE-dev/tzperiod/pkg/zonerule"
)

// Option configures a Calculator.
type Option func(*OptionHolder)

// WithProvider sets the zone-rule provider. Tests use this to supply a
// fixed rule set instead of the IANA database.
func WithProvider(p zonerule.Provider) Option {
	return func(o *OptionHolder) {
		o.zones = p
	}
}

// WithClock sets the clock capability consumed by Current. Tests use
// this to freeze or script time; no global state is ever patched.
func WithClock(c clock.Clock) Option {
	return func(o *OptionHolder) {
		o.clock = c
	}
}

// WithLogger sets the logger. The calculator logs at Debug only.
func WithLogger(logger *slog.Logger) Option {
	return func(o *OptionHolder) {
		o.logger = logger
	}
}

// OptionHolder holds configuration options.
type OptionHolder struct {
	zones  zonerule.Provider
	clock  clock.Clock
	logger *slog.Logger
}
