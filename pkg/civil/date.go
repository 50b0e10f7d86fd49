// Package civil provides a calendar date value type with no time-of-day
// or timezone component.
//
// A time.Time is always a specific instant in a specific location, which
// makes it a poor carrier for "a day on the wall calendar": the clock and
// zone parts are never meaningful and leak into comparisons and
// serialization. Date keeps only year, month and day; interpreting a Date
// as a span of absolute time requires a timezone and is the job of the
// period package.
package civil

import (
	"fmt"
	"time"
)

// Date is a civil calendar date: a (year, month, day) triple in the
// proleptic Gregorian calendar. The zero value is not a valid date.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// DateOf returns the date read off t's wall clock, in t's location.
// Callers that want the date of an instant in a particular zone convert
// first: DateOf(t.In(loc)).
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in ISO 8601 form, "2006-01-02".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing civil date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String returns the date in ISO 8601 form, "2006-01-02".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsValid reports whether d names a real calendar day.
func (d Date) IsValid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	// time.Date normalizes out-of-range days (e.g. Feb 30 -> Mar 2), so a
	// valid date is one that survives the round trip unchanged.
	return DateOf(time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)) == d
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d is earlier than d2.
func (d Date) Before(d2 Date) bool {
	if d.Year != d2.Year {
		return d.Year < d2.Year
	}
	if d.Month != d2.Month {
		return d.Month < d2.Month
	}
	return d.Day < d2.Day
}

// After reports whether d is later than d2.
func (d Date) After(d2 Date) bool {
	return d2.Before(d)
}

// AddDays returns the date n days after d (n may be negative). The
// arithmetic is done in UTC so DST cannot make a day disappear or repeat.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// MarshalText implements encoding.TextMarshaler using the ISO 8601 form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
