package period

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for date_from / date_to request parameters.
const DateLayout = "2006-01-02"

// Range is an inclusive calendar date range. Start carries 00:00:00 and End
// carries 23:59:59 so the range can be embedded directly in BETWEEN-style
// comparisons against timestamp columns without dropping same-day rows.
type Range struct {
	Start time.Time
	End   time.Time
}

// InvalidDateError reports a caller-supplied date string that does not parse.
type InvalidDateError struct {
	Field string
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date for %s: %q (expected %s)", e.Field, e.Value, DateLayout)
}

// SpanStrategy selects how a missing range endpoint is derived when exactly
// one of date_from / date_to is supplied. Reports differ on this on purpose:
// tables tend to use a fixed span, charts a calendar horizon.
type SpanStrategy int

const (
	// SpanFixedDays extends the present endpoint by ResolveOptions.DefaultSpanDays.
	SpanFixedDays SpanStrategy = iota

	// SpanCalendarHorizon extends to a granularity-sized calendar boundary:
	// daily to the end/start of the month, monthly to the end/start of the
	// year, yearly by five years.
	SpanCalendarHorizon
)

// ResolveOptions configures Resolve for one caller.
type ResolveOptions struct {
	Strategy        SpanStrategy
	DefaultSpanDays int
}

// Resolve turns optional raw date_from/date_to request values into a concrete
// Range for granularity g, deterministic given now.
//
// Both absent: daily and monthly default to month-to-date, yearly to
// year-to-date. The asymmetry mirrors long-standing report defaults and is
// kept as-is.
//
// One present: the other endpoint is derived per opts.Strategy.
//
// Both present: each must parse as a calendar date; ordering is NOT corrected.
// A from after to is passed through and yields an empty bucket sequence
// downstream.
func Resolve(rawFrom, rawTo string, g Granularity, now time.Time, opts ResolveOptions) (Range, error) {
	switch {
	case rawFrom == "" && rawTo == "":
		return defaultRange(g, now), nil

	case rawFrom != "" && rawTo != "":
		from, err := parseDate("date_from", rawFrom)
		if err != nil {
			return Range{}, err
		}
		to, err := parseDate("date_to", rawTo)
		if err != nil {
			return Range{}, err
		}
		return newRange(from, to), nil

	case rawFrom != "":
		from, err := parseDate("date_from", rawFrom)
		if err != nil {
			return Range{}, err
		}
		return newRange(from, extendForward(from, g, opts)), nil

	default:
		to, err := parseDate("date_to", rawTo)
		if err != nil {
			return Range{}, err
		}
		return newRange(extendBackward(to, g, opts), to), nil
	}
}

func defaultRange(g Granularity, now time.Time) Range {
	var start time.Time
	if g == Yearly {
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	} else {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	return newRange(start, now)
}

func extendForward(from time.Time, g Granularity, opts ResolveOptions) time.Time {
	if opts.Strategy == SpanCalendarHorizon {
		switch g {
		case Daily:
			// Last day of from's month.
			return time.Date(from.Year(), from.Month()+1, 1, 0, 0, 0, 0, from.Location()).AddDate(0, 0, -1)
		case Monthly:
			return time.Date(from.Year(), time.December, 31, 0, 0, 0, 0, from.Location())
		default:
			return from.AddDate(5, 0, 0)
		}
	}
	return from.AddDate(0, 0, spanDays(opts))
}

func extendBackward(to time.Time, g Granularity, opts ResolveOptions) time.Time {
	if opts.Strategy == SpanCalendarHorizon {
		switch g {
		case Daily:
			return time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, to.Location())
		case Monthly:
			return time.Date(to.Year(), time.January, 1, 0, 0, 0, 0, to.Location())
		default:
			return to.AddDate(-5, 0, 0)
		}
	}
	return to.AddDate(0, 0, -spanDays(opts))
}

func spanDays(opts ResolveOptions) int {
	if opts.DefaultSpanDays > 0 {
		return opts.DefaultSpanDays
	}
	return 30
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, &InvalidDateError{Field: field, Value: raw}
	}
	return t, nil
}

func newRange(start, end time.Time) Range {
	return Range{
		Start: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
		End:   time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location()),
	}
}
