package zulu

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Unit identifies one calendar or clock unit.
type Unit int

const (
	UnitMicrosecond Unit = iota
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
	UnitDecade
	UnitCentury
)

func (u Unit) String() string {
	switch u {
	case UnitMicrosecond:
		return "microsecond"
	case UnitSecond:
		return "second"
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	case UnitDay:
		return "day"
	case UnitWeek:
		return "week"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	case UnitDecade:
		return "decade"
	case UnitCentury:
		return "century"
	}
	return "unit(" + strconv.Itoa(int(u)) + ")"
}

// Delta is a calendar-aware shift amount. Calendar units go through the
// calendar arithmetic of the time package (a month added to Jan 31 lands in
// March, as AddDate defines), clock units are exact.
type Delta struct {
	Years, Months, Weeks, Days int
	Hours, Minutes, Seconds    int
	Microseconds               int
}

// Negate returns the delta with every component sign-flipped.
func (d Delta) Negate() Delta {
	return Delta{
		Years: -d.Years, Months: -d.Months, Weeks: -d.Weeks, Days: -d.Days,
		Hours: -d.Hours, Minutes: -d.Minutes, Seconds: -d.Seconds,
		Microseconds: -d.Microseconds,
	}
}

// Apply shifts t by the delta, calendar units first.
func (d Delta) Apply(t time.Time) time.Time {
	if d.Years != 0 || d.Months != 0 || d.Weeks != 0 || d.Days != 0 {
		t = t.AddDate(d.Years, d.Months, 7*d.Weeks+d.Days)
	}
	return t.Add(time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second +
		time.Duration(d.Microseconds)*time.Microsecond)
}

// StartOf truncates the instant to the beginning of the given unit. Weeks
// start on Monday.
func (i Instant) StartOf(u Unit) Instant {
	y, mo, d := i.t.Date()
	h, mi, s := i.t.Clock()

	switch u {
	case UnitMicrosecond:
		return i
	case UnitSecond:
		return New(y, mo, d, h, mi, s, 0, nil)
	case UnitMinute:
		return New(y, mo, d, h, mi, 0, 0, nil)
	case UnitHour:
		return New(y, mo, d, h, 0, 0, 0, nil)
	case UnitDay:
		return New(y, mo, d, 0, 0, 0, 0, nil)
	case UnitWeek:
		back := (int(i.t.Weekday()) + 6) % 7
		return New(y, mo, d-back, 0, 0, 0, 0, nil)
	case UnitMonth:
		return New(y, mo, 1, 0, 0, 0, 0, nil)
	case UnitYear:
		return New(y, time.January, 1, 0, 0, 0, 0, nil)
	case UnitDecade:
		return New(y-y%10, time.January, 1, 0, 0, 0, 0, nil)
	case UnitCentury:
		return New(y-y%100, time.January, 1, 0, 0, 0, 0, nil)
	}
	return i
}

// EndOf returns the last representable instant within the given unit: one
// microsecond before the next unit boundary.
func (i Instant) EndOf(u Unit) Instant {
	var step Delta
	switch u {
	case UnitMicrosecond:
		return i
	case UnitSecond:
		step.Seconds = 1
	case UnitMinute:
		step.Minutes = 1
	case UnitHour:
		step.Hours = 1
	case UnitDay:
		step.Days = 1
	case UnitWeek:
		step.Weeks = 1
	case UnitMonth:
		step.Months = 1
	case UnitYear:
		step.Years = 1
	case UnitDecade:
		step.Years = 10
	case UnitCentury:
		step.Years = 100
	}
	return i.StartOf(u).Shift(step).Shift(Delta{Microseconds: -1})
}

// Duration converts the delta to an exact time.Duration, counting weeks and
// days at 24 hours. Months and years have no fixed length and must be zero.
func (d Delta) Duration() (time.Duration, error) {
	if d.Years != 0 || d.Months != 0 {
		return 0, &ValueError{Reason: "months and years do not have a fixed duration"}
	}
	return time.Duration(7*d.Weeks+d.Days)*24*time.Hour +
		time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second +
		time.Duration(d.Microseconds)*time.Microsecond, nil
}

// ParseDuration parses a clock duration: either the "2h45m" forms the time
// package accepts, or a bare (possibly fractional) second count.
func ParseDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(f * float64(time.Second)), nil
	}
	return 0, &ParseError{
		Input:  s,
		Reason: fmt.Sprintf("value %q is not a recognized duration", s),
	}
}

// Style selects the verbosity of a humanized duration.
type Style int

const (
	StyleLong   Style = iota // "2 hours"
	StyleShort               // "2 hr"
	StyleNarrow              // "2h"
)

// DeltaFormat controls FormatDuration. The zero value formats long English
// at second granularity.
type DeltaFormat struct {
	Style Style
	// Granularity is the smallest unit displayed.
	Granularity Unit
	// Threshold is the factor at which the presentation switches to the
	// next higher unit; 0 means 0.85.
	Threshold float64
	// AddDirection renders "in 2 hours" / "2 hours ago" instead of a bare
	// quantity.
	AddDirection bool
	// Locale selects the message catalog; the zero tag and any tag
	// without a catalog fall back to English.
	Locale language.Tag
}

var deltaUnits = []struct {
	unit    Unit
	seconds float64
	key     string
	one     string
	short   string
	narrow  string
}{
	{UnitYear, 365 * 24 * 3600, "%d years", "%d year", "yr", "y"},
	{UnitMonth, 30 * 24 * 3600, "%d months", "%d month", "mo", "mo"},
	{UnitWeek, 7 * 24 * 3600, "%d weeks", "%d week", "wk", "w"},
	{UnitDay, 24 * 3600, "%d days", "%d day", "day", "d"},
	{UnitHour, 3600, "%d hours", "%d hour", "hr", "h"},
	{UnitMinute, 60, "%d minutes", "%d minute", "min", "m"},
	{UnitSecond, 1, "%d seconds", "%d second", "sec", "s"},
}

func init() {
	for _, u := range deltaUnits {
		message.Set(language.English, u.key,
			plural.Selectf(1, "%d",
				plural.One, u.one,
				plural.Other, u.key,
			))
	}
}

// FormatDuration renders d as a single humanized unit phrase, choosing the
// largest unit whose rounded value clears the threshold. A zero duration
// formats as the empty string.
func FormatDuration(d time.Duration, f DeltaFormat) string {
	threshold := f.Threshold
	if threshold == 0 {
		threshold = 0.85
	}
	gran := f.Granularity
	if gran < UnitSecond {
		gran = UnitSecond
	}
	locale := f.Locale
	if locale == language.Und {
		locale = language.English
	}

	secs := d.Seconds()
	for _, u := range deltaUnits {
		if u.unit < gran {
			break
		}
		v := secs / u.seconds
		if math.Abs(v) < threshold && u.unit != gran {
			continue
		}

		n := int(math.Round(math.Abs(v)))
		if n == 0 {
			return ""
		}

		var phrase string
		switch f.Style {
		case StyleShort:
			phrase = fmt.Sprintf("%d %s", n, u.short)
		case StyleNarrow:
			phrase = fmt.Sprintf("%d%s", n, u.narrow)
		default:
			phrase = message.NewPrinter(locale).Sprintf(u.key, n)
		}

		if f.AddDirection {
			if d < 0 {
				return phrase + " ago"
			}
			return "in " + phrase
		}
		return phrase
	}
	return ""
}
