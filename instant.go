package zulu

import (
	"math"
	"time"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// Instant is an immutable absolute point in time normalized to UTC with
// microsecond precision. Any timezone given at construction converts the
// wall-clock value to UTC; an Instant never represents itself in another
// zone. Localization happens only when formatting.
type Instant struct {
	t time.Time
}

// Epoch is the Unix epoch, 1970-01-01T00:00:00 UTC.
var Epoch = FromUnix(0)

// New builds an Instant from wall-clock fields interpreted in loc. A nil
// loc means the fields are already UTC.
func New(year int, month time.Month, day, hour, min, sec, micro int, loc *time.Location) Instant {
	if loc == nil {
		loc = time.UTC
	}
	return FromTime(time.Date(year, month, day, hour, min, sec, micro*1000, loc))
}

// FromTime normalizes t to UTC, truncating to microsecond precision.
func FromTime(t time.Time) Instant {
	return Instant{t: t.UTC().Truncate(time.Microsecond)}
}

// FromUnix returns the Instant sec seconds after the Unix epoch.
func FromUnix(sec int64) Instant {
	return Instant{t: time.Unix(sec, 0).UTC()}
}

// FromUnixFloat is FromUnix for fractional epoch seconds.
func FromUnixFloat(sec float64) Instant {
	return FromTime(time.Unix(0, int64(math.Round(sec*1e9))))
}

// Now returns the current instant.
func Now() Instant {
	return FromTime(time.Now())
}

// Combine merges the date fields of d with the time-of-day fields of clock.
func Combine(d, clock Instant) Instant {
	return New(d.Year(), d.Month(), d.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), clock.Microsecond(), nil)
}

func (i Instant) Year() int         { return i.t.Year() }
func (i Instant) Month() time.Month { return i.t.Month() }
func (i Instant) Day() int          { return i.t.Day() }
func (i Instant) Hour() int         { return i.t.Hour() }
func (i Instant) Minute() int       { return i.t.Minute() }
func (i Instant) Second() int       { return i.t.Second() }

// Microsecond returns the microsecond offset within the second, 0-999999.
func (i Instant) Microsecond() int { return i.t.Nanosecond() / 1000 }

func (i Instant) Weekday() time.Weekday { return i.t.Weekday() }
func (i Instant) YearDay() int          { return i.t.YearDay() }
func (i Instant) Unix() int64           { return i.t.Unix() }
func (i Instant) UnixMicro() int64      { return i.t.UnixMicro() }
func (i Instant) IsZero() bool          { return i.t.IsZero() }

// Time returns the underlying UTC time.Time.
func (i Instant) Time() time.Time { return i.t }

// In returns the instant localized to loc. The result is the same absolute
// time; only the wall-clock representation changes.
func (i Instant) In(loc *time.Location) time.Time { return i.t.In(loc) }

func (i Instant) Equal(other Instant) bool  { return i.t.Equal(other.t) }
func (i Instant) Before(other Instant) bool { return i.t.Before(other.t) }
func (i Instant) After(other Instant) bool  { return i.t.After(other.t) }
func (i Instant) Compare(other Instant) int { return i.t.Compare(other.t) }

// Diff returns the elapsed duration from other to i.
func (i Instant) Diff(other Instant) time.Duration { return i.t.Sub(other.t) }

// Shift applies a calendar-aware delta and returns the shifted instant.
func (i Instant) Shift(d Delta) Instant { return FromTime(d.Apply(i.t)) }

// Add is Shift.
func (i Instant) Add(d Delta) Instant { return i.Shift(d) }

// Sub shifts backwards by d.
func (i Instant) Sub(d Delta) Instant { return i.Shift(d.Negate()) }

// Replace returns a copy with the given fields substituted; pass -1 to keep
// a field. month likewise accepts -1.
func (i Instant) Replace(year, month, day, hour, min, sec, micro int) Instant {
	pick := func(v, cur int) int {
		if v < 0 {
			return cur
		}
		return v
	}
	return New(
		pick(year, i.Year()),
		time.Month(pick(month, int(i.Month()))),
		pick(day, i.Day()),
		pick(hour, i.Hour()),
		pick(min, i.Minute()),
		pick(sec, i.Second()),
		pick(micro, i.Microsecond()),
		nil,
	)
}

// IsLeap reports whether the instant's year is a leap year.
func (i Instant) IsLeap() bool {
	y := i.Year()
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// ISOFormat renders the instant as an ISO 8601 string with a +00:00 suffix.
// The fractional part is omitted when the microsecond field is zero.
func (i Instant) ISOFormat() string {
	return isoString(i.t)
}

func isoString(t time.Time) string {
	s := t.Format("2006-01-02T15:04:05")
	if micro := t.Nanosecond() / 1000; micro != 0 {
		s += "." + microString(t)
	}
	return s + offsetString(t, true)
}

// String is the ISO 8601 form.
func (i Instant) String() string { return i.ISOFormat() }

// Format renders the instant using a human pattern or native directive
// string. An empty format produces the ISO 8601 form.
func (i Instant) Format(format string) string {
	return i.FormatIn(format, time.UTC)
}

// FormatIn is Format with the output localized to loc first.
func (i Instant) FormatIn(format string, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t := i.t.In(loc)
	if format == "" {
		return isoString(t)
	}
	tf, _ := Translate(format, false)
	return formatNative(tf.Native, t)
}

var (
	_ json.Marshaler        = Instant{}
	_ json.Unmarshaler      = (*Instant)(nil)
	_ msgpack.CustomEncoder = (*Instant)(nil)
	_ msgpack.CustomDecoder = (*Instant)(nil)
)

// MarshalJSON encodes the instant as its ISO 8601 string.
func (i Instant) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.ISOFormat())
}

// UnmarshalJSON accepts any string form Parse accepts, or null.
func (i *Instant) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*i = Instant{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

func (i *Instant) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(i.ISOFormat())
}

func (i *Instant) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
