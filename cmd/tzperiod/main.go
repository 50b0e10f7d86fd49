// Package main implements the tzperiod CLI for resolving instants to
// civil dates and half-hour settlement periods.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/codeGROOVE-dev/tzperiod/pkg/civil"
	"github.com/codeGROOVE-dev/tzperiod/pkg/period"
	"github.com/codeGROOVE-dev/tzperiod/pkg/zonerule"
	"github.com/fatih/color"
)

var (
	zone    = flag.String("zone", "", "IANA timezone name (or set TZPERIOD_ZONE; default Europe/London)")
	at      = flag.String("at", "", "RFC 3339 instant to resolve instead of now, e.g. 2022-03-27T01:00:00Z")
	date    = flag.String("date", "", "civil date (2006-01-02) for -grid; defaults to today in the zone")
	grid    = flag.Bool("grid", false, "print the full period grid for one civil day")
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	version = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("tzperiod CLI v1.0.0")
		return
	}

	// Configure logging
	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if *zone == "" {
		*zone = os.Getenv("TZPERIOD_ZONE")
	}
	if *zone == "" {
		*zone = "Europe/London"
	}

	// One provider serves both the calculator and the grid's wall-clock
	// rendering, so every zone lookup goes through the same cache.
	zones := zonerule.NewCachingProvider(zonerule.IANA{}, 64, logger)
	calc := period.New(period.WithProvider(zones), period.WithLogger(logger))

	if *grid {
		if err := printGrid(calc, zones, *zone, *date, *at); err != nil {
			logger.Error("grid rendering failed", "zone", *zone, "error", err)
			os.Exit(1)
		}
		return
	}

	instant, err := resolveInstant(*at)
	if err != nil {
		logger.Error("invalid -at instant", "error", err)
		os.Exit(1)
	}

	var d civil.Date
	var p int
	if instant.IsZero() {
		d, p, err = calc.Current(*zone)
	} else {
		d, p, err = calc.Locate(instant, *zone)
	}
	if err != nil {
		logger.Error("period resolution failed", "zone", *zone, "error", err)
		os.Exit(1)
	}

	printResult(calc, *zone, d, p)
}

// resolveInstant parses the -at flag; a zero time means "use the clock".
func resolveInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}

func printResult(calc *period.Calculator, zone string, d civil.Date, p int) {
	count, err := calc.DayPeriods(d, zone)
	if err != nil {
		count = period.NominalPerDay
	}

	fmt.Printf("\n🌍 Zone:    %s\n", zone)
	fmt.Printf("📅 Date:    %s", d)
	switch {
	case count < period.NominalPerDay:
		fmt.Printf(" %s", color.YellowString("(short day, clocks go forward: %d periods)", count))
	case count > period.NominalPerDay:
		fmt.Printf(" %s", color.YellowString("(long day, clocks go back: %d periods)", count))
	}
	fmt.Println()

	fmt.Printf("🕐 Period:  %s of %d", color.New(color.FgGreen, color.Bold).Sprintf("%d", p), count)
	if start, end, err := calc.Bounds(d, p, zone); err == nil {
		fmt.Printf("  [%s → %s UTC)", start.Format("15:04"), end.Format("15:04"))
	}
	fmt.Println()
	fmt.Println()
}

// printGrid renders every period of one civil day with its UTC start
// and the local wall-clock reading, highlighting offset transitions.
func printGrid(calc *period.Calculator, zones zonerule.Provider, zone, dateStr, atStr string) error {
	d, err := gridDate(calc, zone, dateStr, atStr)
	if err != nil {
		return err
	}
	loc, err := zones.Resolve(zone)
	if err != nil {
		return err
	}
	count, err := calc.DayPeriods(d, zone)
	if err != nil {
		return err
	}

	fmt.Printf("\n📅 %s in %s — %d periods\n", d, zone, count)
	fmt.Printf("%-8s %-18s %-12s %s\n", "period", "starts (UTC)", "local", "offset")

	var prevOffset int
	for p := 1; p <= count; p++ {
		start, _, err := calc.Bounds(d, p, zone)
		if err != nil {
			return err
		}
		local := start.In(loc)
		abbrev, offset := local.Zone()

		line := fmt.Sprintf("%-8d %-18s %-12s %s (%s)", p,
			start.Format("2006-01-02 15:04"), local.Format("15:04"),
			offsetLabel(offset), abbrev)

		if p > 1 && offset != prevOffset {
			color.New(color.FgYellow).Printf("%s ← clocks change\n", line)
		} else {
			fmt.Println(line)
		}
		prevOffset = offset
	}
	fmt.Println()
	return nil
}

// gridDate picks the civil day to render: -date wins, then the day of
// -at, then today in the zone.
func gridDate(calc *period.Calculator, zone, dateStr, atStr string) (civil.Date, error) {
	if dateStr != "" {
		return civil.ParseDate(dateStr)
	}
	instant, err := resolveInstant(atStr)
	if err != nil {
		return civil.Date{}, err
	}
	if !instant.IsZero() {
		return calc.LocalDate(instant, zone)
	}
	d, _, err := calc.Current(zone)
	return d, err
}

func offsetLabel(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	if m == 0 {
		return fmt.Sprintf("UTC%s%d", sign, h)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, h, m)
}
