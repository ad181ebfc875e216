package zulu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseOption adjusts how Parse interprets its input.
type ParseOption func(*parseConfig)

type parseConfig struct {
	formats []string
	zone    string
	loc     *time.Location
	locSet  bool
}

// WithFormats supplies the ordered candidate formats to try instead of the
// defaults. Each candidate may be a human pattern ("M-d-YYYY h:m a"), a
// native directive string ("%m-%d-%Y %I:%M %p"), or one of the named
// candidates "ISO8601" and "timestamp".
func WithFormats(formats ...string) ParseOption {
	return func(c *parseConfig) { c.formats = formats }
}

// WithDefaultZone names the timezone a naive input is interpreted in before
// conversion to UTC. It is ignored when the input itself carries an offset.
// An unrecognized name makes Parse fail with a ValueError.
func WithDefaultZone(name string) ParseOption {
	return func(c *parseConfig) { c.zone = name }
}

// WithDefaultLocation is WithDefaultZone for an already-resolved location.
func WithDefaultLocation(loc *time.Location) ParseOption {
	return func(c *parseConfig) { c.loc = loc; c.locSet = true }
}

// defaultFormats is the candidate list used when none is given: the fixed
// ISO 8601 set followed by the numeric-epoch form.
var defaultFormats = []string{"ISO8601", "timestamp"}

// isoFormats is the fixed ISO 8601 candidate set, ordered coarse to fine,
// bare before offset-suffixed. The first full match wins.
var isoFormats = []string{
	"%Y",
	"%Y-%m",
	"%Y-%m-%d",
	"%Y-%m-%dT%H:%M",
	"%Y-%m-%d %H:%M",
	"%Y-%m-%dT%H:%M:%S",
	"%Y-%m-%d %H:%M:%S",
	"%Y-%m-%dT%H:%M:%S.%f",
	"%Y-%m-%d %H:%M:%S.%f",
	"%Y-%m-%dT%H:%M%z",
	"%Y-%m-%d %H:%M%z",
	"%Y-%m-%dT%H:%M:%S%z",
	"%Y-%m-%d %H:%M:%S%z",
	"%Y-%m-%dT%H:%M:%S.%f%z",
	"%Y-%m-%d %H:%M:%S.%f%z",
}

// Translated once up front; read-only afterwards, so concurrent parses can
// share them without locks.
var isoTranslated = func() []TranslatedFormat {
	out := make([]TranslatedFormat, len(isoFormats))
	for i, f := range isoFormats {
		tf, err := Translate(f, true)
		if err != nil {
			panic(err)
		}
		out[i] = tf
	}
	return out
}()

// Parse attempts to interpret input as an Instant.
//
// An Instant or zone-aware time.Time is normalized to UTC and returned
// directly. A numeric value is a Unix epoch offset in seconds. A string is
// tried against each candidate format in order; the first candidate whose
// translated expression matches the entire input wins. When the matched
// text carries an explicit offset the wall-clock value is shifted by it to
// true UTC; otherwise the default zone (UTC unless configured) supplies the
// interpretation.
//
// If every candidate fails, the returned error is a *ParseError listing the
// input and each attempted format with its failure reason.
func Parse(input any, opts ...ParseOption) (Instant, error) {
	var cfg parseConfig
	for _, o := range opts {
		o(&cfg)
	}

	loc := time.UTC
	if cfg.locSet {
		loc = cfg.loc
	} else if cfg.zone != "" {
		var err error
		if loc, err = LoadZone(cfg.zone); err != nil {
			return Instant{}, err
		}
	}

	switch v := input.(type) {
	case Instant:
		return v, nil
	case *Instant:
		return *v, nil
	case time.Time:
		return FromTime(v), nil
	case int:
		return FromUnix(int64(v)), nil
	case int64:
		return FromUnix(v), nil
	case float64:
		return FromUnixFloat(v), nil
	case string:
		return parseString(v, cfg.formats, loc)
	default:
		return Instant{}, &ValueError{
			Reason: fmt.Sprintf("cannot parse value of type %T", input),
		}
	}
}

func parseString(input string, formats []string, loc *time.Location) (Instant, error) {
	if len(formats) == 0 {
		formats = defaultFormats
	}

	var attempts []ParseAttempt
	fail := func(format string, err error) {
		attempts = append(attempts, ParseAttempt{Format: format, Reason: errReason(err)})
	}

	for _, format := range formats {
		switch {
		case strings.EqualFold(format, "ISO8601"):
			for i, tf := range isoTranslated {
				in, err := parseTranslated(input, tf, loc)
				if err == nil {
					return in, nil
				}
				fail(isoFormats[i], err)
			}
		case format == "timestamp":
			// Kept for parity with the default candidate list; epoch
			// values are expected as numeric input, not strings.
			fail(format, fmt.Errorf("timestamp format requires a numeric value"))
		default:
			tf, err := Translate(format, true)
			if err != nil {
				fail(format, err)
				continue
			}
			in, err := parseTranslated(input, tf, loc)
			if err == nil {
				return in, nil
			}
			fail(format, err)
		}
	}

	return Instant{}, &ParseError{Input: input, Attempts: attempts}
}

func errReason(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Reason != "" {
		return pe.Reason
	}
	return err.Error()
}

// parseTranslated matches input against one translated candidate and builds
// the resulting instant.
func parseTranslated(input string, tf TranslatedFormat, loc *time.Location) (Instant, error) {
	captured, ok, err := tf.match(input)
	if err != nil {
		return Instant{}, err
	}
	if !ok {
		return Instant{}, fmt.Errorf("does not match format")
	}

	var f dtFields
	f.init()
	// Groups are applied in scan order so later duplicates win, matching
	// strptime behavior for repeated directives.
	for i := 0; i < len(tf.Groups); i++ {
		name := "g" + strconv.Itoa(i)
		text, present := captured[name]
		if !present {
			continue
		}
		if err := f.apply(tf.Groups[name], text); err != nil {
			return Instant{}, err
		}
	}
	return f.build(loc)
}

// dtFields accumulates the datetime components extracted from one regex
// match before they are assembled into an instant.
type dtFields struct {
	year, month, day int
	yday             int
	hour, hour12     int
	minute, second   int
	micro            int
	pm               int // -1 unset, 0 AM, 1 PM
	weekday          int // -1 unset, 0 = Sunday
	offsetMin        int

	hasYear, hasMonth, hasDay, hasYday bool
	hasHour, hasHour12, hasOffset      bool
}

func (f *dtFields) init() {
	f.pm = -1
	f.weekday = -1
}

func (f *dtFields) apply(dir, text string) error {
	switch dir {
	case "%Y":
		f.year = atoi(text)
		f.hasYear = true
	case "%y":
		// 1969 cutoff is consistent with the time pkg
		yy := atoi(text)
		if yy < 69 {
			f.year = 2000 + yy
		} else {
			f.year = 1900 + yy
		}
		f.hasYear = true
	case "%B", "%b":
		m, ok := monthFromName(text)
		if !ok {
			return fmt.Errorf("unknown month name %q", text)
		}
		f.month = int(m)
		f.hasMonth = true
	case "%m":
		f.month = atoi(text)
		f.hasMonth = true
	case "%j":
		f.yday = atoi(text)
		f.hasYday = true
	case "%d":
		f.day = atoi(text)
		f.hasDay = true
	case "%A", "%a":
		wd, ok := weekdayFromName(text)
		if !ok {
			return fmt.Errorf("unknown weekday name %q", text)
		}
		f.weekday = int(wd)
	case "%w":
		f.weekday = atoi(text)
	case "%H":
		f.hour = atoi(text)
		f.hasHour = true
	case "%I":
		f.hour12 = atoi(text)
		f.hasHour12 = true
	case "%p":
		if strings.EqualFold(text, "PM") {
			f.pm = 1
		} else {
			f.pm = 0
		}
	case "%M":
		f.minute = atoi(text)
	case "%S":
		f.second = atoi(text)
	case "%f", "%1f", "%2f", "%3f", "%4f", "%5f":
		// Captured digits are the leading digits of the microsecond
		// field; scale shorter captures up.
		v := atoi(text)
		for n := 6 - len(text); n > 0; n-- {
			v *= 10
		}
		f.micro = v
	case "%z":
		off, err := parseOffsetText(text)
		if err != nil {
			return err
		}
		f.offsetMin = off
		f.hasOffset = true
	default:
		return fmt.Errorf("unsupported directive %q", dir)
	}
	return nil
}

// build assembles the accumulated fields into a UTC instant. Unset date
// fields default to 1900-01-01, matching strptime.
func (f *dtFields) build(loc *time.Location) (Instant, error) {
	year, month, day := 1900, 1, 1
	if f.hasYear {
		year = f.year
	}
	if f.hasMonth {
		month = f.month
	}
	if f.hasDay {
		day = f.day
	}

	if f.hasYday && !(f.hasMonth && f.hasDay) {
		if f.yday < 1 || f.yday > 366 {
			return Instant{}, fmt.Errorf("day of year %d is out of range", f.yday)
		}
		t := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, f.yday-1)
		if t.Year() != year {
			return Instant{}, fmt.Errorf("day of year %d is out of range for %d", f.yday, year)
		}
		month, day = int(t.Month()), t.Day()
	}

	hour := f.hour
	if f.hasHour12 && !f.hasHour {
		if f.hour12 < 1 || f.hour12 > 12 {
			return Instant{}, fmt.Errorf("hour %d is out of range for a 12-hour clock", f.hour12)
		}
		hour = f.hour12
		switch f.pm {
		case 1:
			if hour < 12 {
				hour += 12
			}
		case 0:
			if hour == 12 {
				hour = 0
			}
		}
	}

	if month < 1 || month > 12 {
		return Instant{}, fmt.Errorf("month %d is out of range", month)
	}
	if hour > 23 || f.minute > 59 || f.second > 59 {
		return Instant{}, fmt.Errorf("time is out of range")
	}

	if f.hasOffset {
		loc = time.UTC
	}
	t := time.Date(year, time.Month(month), day, hour, f.minute, f.second, f.micro*1000, loc)

	// time.Date normalizes out-of-range fields instead of rejecting them;
	// a changed field means the wall-clock value was invalid.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day || t.Hour() != hour {
		return Instant{}, fmt.Errorf("day is out of range for month")
	}

	if f.weekday >= 0 && (f.hasYear || f.hasMonth || f.hasDay || f.hasYday) {
		if int(t.Weekday()) != f.weekday {
			return Instant{}, fmt.Errorf("day of week does not match date")
		}
	}

	if f.hasOffset {
		t = t.Add(-time.Duration(f.offsetMin) * time.Minute)
	}
	return FromTime(t), nil
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(err) // unreachable: the capture fragments admit digits only
	}
	return n
}

func monthFromName(s string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return m, true
		}
	}
	return 0, false
}

func weekdayFromName(s string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := wd.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return wd, true
		}
	}
	return 0, false
}
