// Package period computes, for an instant on the UTC timescale and a
// named civil timezone, the civil date that instant falls on and the
// 1-indexed half-hour period of that civil day it falls in.
//
// Periods are counted in absolute elapsed time from the day's local
// midnight instant, never in wall-clock arithmetic. That single choice
// is what makes DST transitions fall out automatically: a civil day
// whose UTC offset jumps forward spans 23 hours of absolute time and
// has periods 1..46, a day whose offset jumps back spans 25 hours and
// has periods 1..50, and every other day has the nominal 1..48. No code
// in this package branches on DST; all offset knowledge lives in the
// injected zone-rule capability.
package period

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/tzperiod/pkg/civil"
	"github.com/codeGROOVE-dev/tzperiod/pkg/clock"
	"github.com/codeGROOVE-dev/tzperiod/pkg/zonerule"
)

// Length is the fixed period granularity. Every period covers exactly
// this much absolute time, measured from the day-start instant.
const Length = 30 * time.Minute

// NominalPerDay is the period count of a civil day with no offset
// transition. Spring-forward days have 46, fall-back days 50; zones
// with half-hour DST deltas produce 47 or 49.
const NominalPerDay = 48

// ErrInstantBeforeDay reports that an instant precedes the start of the
// civil day it was claimed to fall in. It indicates a caller bug: the
// date must come from LocalDate (or be otherwise consistent with the
// instant), and the calculator surfaces the inconsistency rather than
// producing a period index below 1.
var ErrInstantBeforeDay = errors.New("instant precedes start of civil day")

// Calculator resolves civil dates and period indexes. All methods are
// pure and safe for concurrent use; the only shared state is the
// injected zone-rule provider, which is read-only.
type Calculator struct {
	zones  zonerule.Provider
	clk    clock.Clock
	logger *slog.Logger
}

// New returns a Calculator. By default it resolves zones against the
// IANA database through a caching provider and reads the system clock;
// tests swap either capability with options.
func New(opts ...Option) *Calculator {
	holder := &OptionHolder{}
	for _, opt := range opts {
		opt(holder)
	}

	logger := holder.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	zones := holder.zones
	if zones == nil {
		zones = zonerule.NewCachingProvider(zonerule.IANA{}, 256, logger)
	}
	clk := holder.clock
	if clk == nil {
		clk = clock.Real{}
	}

	return &Calculator{zones: zones, clk: clk, logger: logger}
}

// LocalDate returns the civil date the zone's wall clock shows at the
// given instant. The mapping is total for any recognized zone; the only
// error condition is an invalid zone name.
func (c *Calculator) LocalDate(at time.Time, zone string) (civil.Date, error) {
	loc, err := c.zones.Resolve(zone)
	if err != nil {
		return civil.Date{}, err
	}
	return civil.DateOf(at.In(loc)), nil
}

// DayStart returns the instant, on the UTC timescale, at which the
// given civil day begins in the zone: 00:00:00 local wall-clock.
//
// On a fall-back day the 00:00-01:00 hour can occur twice; the day
// anchor is the first occurrence, which is what the zone rules yield
// for an unambiguous midnight. If a spring-forward gap swallows
// midnight itself, disambiguation is delegated to the zone rules as
// applied by time.Date, which normalizes the nonexistent reading
// forward using the post-transition offset — the result is the first
// valid instant of that civil day.
func (c *Calculator) DayStart(d civil.Date, zone string) (time.Time, error) {
	loc, err := c.zones.Resolve(zone)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc).UTC(), nil
}

// Period returns the 1-indexed half-hour period of civil day d that the
// instant falls in, where d has already been resolved for the same
// instant and zone (see LocalDate). An instant exactly on a period
// boundary belongs to the following period: period 1 begins exactly at
// the day-start instant.
func (c *Calculator) Period(at time.Time, d civil.Date, zone string) (int, error) {
	start, err := c.DayStart(d, zone)
	if err != nil {
		return 0, err
	}
	elapsed := at.Sub(start)
	if elapsed < 0 {
		return 0, fmt.Errorf("%w: %s is %s before %s in %s",
			ErrInstantBeforeDay, at.UTC().Format(time.RFC3339), -elapsed, d, zone)
	}
	return int(elapsed/Length) + 1, nil
}

// Locate resolves the instant to its (civil date, period) pair in one
// call: LocalDate followed by Period.
func (c *Calculator) Locate(at time.Time, zone string) (civil.Date, int, error) {
	date, err := c.LocalDate(at, zone)
	if err != nil {
		return civil.Date{}, 0, err
	}
	p, err := c.Period(at, date, zone)
	if err != nil {
		return civil.Date{}, 0, err
	}
	return date, p, nil
}

// Current reads the injected clock and resolves "now" to its
// (civil date, period) pair. It carries no logic of its own; clock
// failures propagate unchanged.
func (c *Calculator) Current(zone string) (civil.Date, int, error) {
	now, err := c.clk.Now()
	if err != nil {
		return civil.Date{}, 0, err
	}
	date, p, err := c.Locate(now, zone)
	if err != nil {
		return civil.Date{}, 0, err
	}
	c.logger.Debug("resolved current period", "zone", zone, "instant", now, "date", date.String(), "period", p)
	return date, p, nil
}

// DayPeriods returns the number of periods in the given civil day:
// NominalPerDay except on offset-transition days, where the day's
// absolute span shrinks or grows by the transition delta.
func (c *Calculator) DayPeriods(d civil.Date, zone string) (int, error) {
	start, err := c.DayStart(d, zone)
	if err != nil {
		return 0, err
	}
	next, err := c.DayStart(d.AddDays(1), zone)
	if err != nil {
		return 0, err
	}
	return int(next.Sub(start) / Length), nil
}

// Bounds returns the half-open UTC interval [start, end) covered by
// period p of civil day d. The period index must be in range for that
// day (1 through DayPeriods).
func (c *Calculator) Bounds(d civil.Date, p int, zone string) (start, end time.Time, err error) {
	count, err := c.DayPeriods(d, zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if p < 1 || p > count {
		return time.Time{}, time.Time{}, fmt.Errorf("period %d out of range for %s in %s (1..%d)", p, d, zone, count)
	}
	dayStart, err := c.DayStart(d, zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = dayStart.Add(time.Duration(p-1) * Length)
	return start, start.Add(Length), nil
}
