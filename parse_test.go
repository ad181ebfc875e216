package zulu

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaultISOForms(t *testing.T) {
	cases := []struct {
		input string
		want  Instant
	}{
		{"2000", New(2000, 1, 1, 0, 0, 0, 0, nil)},
		{"2000-01", New(2000, 1, 1, 0, 0, 0, 0, nil)},
		{"2000-01-01", New(2000, 1, 1, 0, 0, 0, 0, nil)},
		{"2000-01-01T12:30", New(2000, 1, 1, 12, 30, 0, 0, nil)},
		{"2000-01-01 12:30", New(2000, 1, 1, 12, 30, 0, 0, nil)},
		{"2000-01-01T12:30:45", New(2000, 1, 1, 12, 30, 45, 0, nil)},
		{"2000-01-01T12:30:45.123456", New(2000, 1, 1, 12, 30, 45, 123456, nil)},
		{"2000-01-01T12:30:45Z", New(2000, 1, 1, 12, 30, 45, 0, nil)},
		{"2000-01-01T12:30:45-05:00", New(2000, 1, 1, 17, 30, 45, 0, nil)},
		{"2000-01-01T12:30:45+0130", New(2000, 1, 1, 11, 0, 45, 0, nil)},
	}
	for _, c := range cases {
		got, err := Parse(c.input)
		require.NoError(t, err, c.input)
		assert.True(t, c.want.Equal(got), "%s: got %s want %s", c.input, got, c.want)
	}
}

func TestParseOffsetRollsDate(t *testing.T) {
	// The maximal offsets are accepted and may roll the UTC date into the
	// neighboring day.
	got, err := Parse("2000-01-01T12:30:45.123456+2359")
	require.NoError(t, err)
	assert.True(t, New(1999, 12, 31, 12, 31, 45, 123456, nil).Equal(got), "got %s", got)

	got, err = Parse("2000-01-01T12:30:45.123456-2359")
	require.NoError(t, err)
	assert.True(t, New(2000, 1, 2, 12, 29, 45, 123456, nil).Equal(got), "got %s", got)
}

func TestParseOffsetOutOfRange(t *testing.T) {
	for _, input := range []string{
		"2000-01-01T12:30:45+2400",
		"2000-01-01T12:30:45-2400",
		"2000-01-01T12:30:45+2500",
	} {
		_, err := Parse(input)
		var pe *ParseError
		require.ErrorAs(t, err, &pe, input)
		assert.Equal(t, input, pe.Input)
	}
}

func TestParseDefaultZone(t *testing.T) {
	// Naive input is interpreted in the default zone, then converted.
	got, err := Parse("2000-01-01T12:30", WithDefaultZone("US/Eastern"))
	require.NoError(t, err)
	assert.True(t, New(2000, 1, 1, 17, 30, 0, 0, nil).Equal(got), "got %s", got)

	// An explicit offset on the input wins over the default zone.
	got, err = Parse("2000-01-01T12:30+01:00", WithDefaultZone("US/Eastern"))
	require.NoError(t, err)
	assert.True(t, New(2000, 1, 1, 11, 30, 0, 0, nil).Equal(got), "got %s", got)
}

func TestParseDefaultLocation(t *testing.T) {
	eastern, err := time.LoadLocation("US/Eastern")
	require.NoError(t, err)

	got, err := Parse("1-5-2000 12:30 AM",
		WithFormats("M-d-YYYY h:m a"), WithDefaultLocation(eastern))
	require.NoError(t, err)
	assert.True(t, New(2000, 1, 5, 5, 30, 0, 0, nil).Equal(got), "got %s", got)
}

func TestParseInvalidDefaultZone(t *testing.T) {
	_, err := Parse("2000", WithDefaultZone("invalid"))
	var ve *ValueError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "invalid")
}

func TestParsePatternFormats(t *testing.T) {
	cases := []struct {
		format string
		input  string
		want   Instant
	}{
		{"M-d-YYYY h:m a", "1-5-2000 12:30 AM", New(2000, 1, 5, 0, 30, 0, 0, nil)},
		{"M-d-YYYY h:m a", "1-5-2000 12:30 PM", New(2000, 1, 5, 12, 30, 0, 0, nil)},
		{"M-d-YYYY h:m a", "11-25-2000 3:07 pm", New(2000, 11, 25, 15, 7, 0, 0, nil)},
		{"YYYY-MM-dd HH:mm:ss.SSS", "2000-01-01 12:30:45.123", New(2000, 1, 1, 12, 30, 45, 123000, nil)},
		{"DDD YYYY", "060 2000", New(2000, 2, 29, 0, 0, 0, 0, nil)},
		{"HH:mm", "12:30", New(1900, 1, 1, 12, 30, 0, 0, nil)},
		{"EEEE, MMMM d, YYYY HH:mm:ss.SSSSSS Z", "Saturday, January 1, 2000 12:30:45.123456 +01:00",
			New(2000, 1, 1, 11, 30, 45, 123456, nil)},
		{"%m/%d/%Y %H:%M", "01/05/2000 12:30", New(2000, 1, 5, 12, 30, 0, 0, nil)},
		{"%m/%d/%Y %H:%M", "1/5/2000 12:30", New(2000, 1, 5, 12, 30, 0, 0, nil)},
	}
	for _, c := range cases {
		got, err := Parse(c.input, WithFormats(c.format))
		require.NoError(t, err, c.input)
		assert.True(t, c.want.Equal(got), "%s: got %s want %s", c.input, got, c.want)
	}
}

func TestParseShortYearCutoff(t *testing.T) {
	got, err := Parse("68", WithFormats("YY"))
	require.NoError(t, err)
	assert.Equal(t, 2068, got.Year())

	got, err = Parse("69", WithFormats("YY"))
	require.NoError(t, err)
	assert.Equal(t, 1969, got.Year())
}

func TestParseRejectsInvalidFields(t *testing.T) {
	cases := []struct {
		format string
		input  string
	}{
		{"YYYY-MM-dd", "2000-02-30"},
		{"YYYY-MM-dd", "2000-13-01"},
		{"HH:mm", "24:00"},
		{"h:m a", "13:00 PM"},
		{"DDD YYYY", "366 1999"},
		{"EEE YYYY-MM-dd", "Sun 2000-01-01"},
	}
	for _, c := range cases {
		_, err := Parse(c.input, WithFormats(c.format))
		var pe *ParseError
		require.ErrorAs(t, err, &pe, c.input)
	}

	// The weekday passes validation when it agrees with the date.
	got, err := Parse("Sat 2000-01-01", WithFormats("EEE YYYY-MM-dd"))
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, got.Weekday())
}

func TestParseErrorListsAttempts(t *testing.T) {
	_, err := Parse("invalid")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "invalid", pe.Input)
	assert.Len(t, pe.Attempts, len(isoFormats)+1)
	assert.Contains(t, pe.Error(), `"invalid" does not match any format`)
	assert.Contains(t, pe.Error(), "timestamp")
}

func TestParseNonStringInputs(t *testing.T) {
	in := New(2000, 1, 1, 12, 30, 0, 0, nil)

	got, err := Parse(in)
	require.NoError(t, err)
	assert.True(t, in.Equal(got))

	got, err = Parse(&in)
	require.NoError(t, err)
	assert.True(t, in.Equal(got))

	eastern, err := time.LoadLocation("US/Eastern")
	require.NoError(t, err)
	got, err = Parse(time.Date(2000, 1, 1, 7, 30, 0, 0, eastern))
	require.NoError(t, err)
	assert.True(t, New(2000, 1, 1, 12, 30, 0, 0, nil).Equal(got))

	got, err = Parse(946684800)
	require.NoError(t, err)
	assert.True(t, New(2000, 1, 1, 0, 0, 0, 0, nil).Equal(got))

	got, err = Parse(946684800.5)
	require.NoError(t, err)
	assert.True(t, New(2000, 1, 1, 0, 0, 0, 500000, nil).Equal(got))

	_, err = Parse([]byte("2000"))
	var ve *ValueError
	require.ErrorAs(t, err, &ve)
}

func TestParseRejectsUnknownSeparators(t *testing.T) {
	// None of the default candidates match, and prefix matches do not count.
	for _, input := range []string{"2000/01/01", "01/01/2000", "01-01-2000"} {
		_, err := Parse(input)
		var pe *ParseError
		require.ErrorAs(t, err, &pe, input)
	}
}

func TestParseDefaultRoundTrip(t *testing.T) {
	for _, in := range []Instant{
		New(2000, 1, 1, 12, 30, 45, 15, nil),
		New(2000, 1, 1, 12, 30, 45, 0, nil),
		New(1999, 12, 31, 23, 59, 59, 999999, nil),
	} {
		s := in.ISOFormat()
		back, err := Parse(s)
		require.NoError(t, err, s)
		assert.True(t, in.Equal(back), "%s round-tripped to %s", s, back)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	in := New(2014, 5, 6, 12, 30, 15, 123456, nil)

	for _, format := range []string{
		"YYYY-MM-dd HH:mm:ss.SSSSSS",
		"MMMM d, YYYY HH:mm:ss.SSSSSS",
		"DDD YYYY HH:mm:ss.SSSSSS",
		"%Y-%m-%dT%H:%M:%S.%f%z",
		"%Y-%m-%d %I:%M:%S.%f %p",
	} {
		s := in.Format(format)
		back, err := Parse(s, WithFormats(format))
		require.NoError(t, err, format)
		assert.True(t, in.Equal(back), "%s: %s round-tripped to %s", format, s, back)
	}
}

func TestResolveOffset(t *testing.T) {
	cases := []struct {
		sign    byte
		hh, mm  int
		want    int
		wantErr bool
	}{
		{'+', 0, 0, 0, false},
		{'-', 0, 0, 0, false},
		{'+', 5, 30, 330, false},
		{'-', 5, 0, -300, false},
		{'+', 23, 59, 1439, false},
		{'-', 23, 59, -1439, false},
		{'+', 24, 0, 0, true},
		{'-', 24, 0, 0, true},
		{'+', 25, 0, 0, true},
		{'+', 5, 60, 0, true},
		{'?', 5, 0, 0, true},
	}
	for _, c := range cases {
		got, err := ResolveOffset(c.sign, c.hh, c.mm)
		if c.wantErr {
			var pe *ParseError
			require.ErrorAs(t, err, &pe, "%c%02d%02d", c.sign, c.hh, c.mm)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%c%02d%02d", c.sign, c.hh, c.mm)
	}
}

func TestParseOffsetText(t *testing.T) {
	got, err := parseOffsetText("Z")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = parseOffsetText("+05:30")
	require.NoError(t, err)
	assert.Equal(t, 330, got)

	got, err = parseOffsetText("-0500")
	require.NoError(t, err)
	assert.Equal(t, -300, got)

	for _, s := range []string{"+24:00", "-2400", "+5:30"} {
		_, err := parseOffsetText(s)
		var pe *ParseError
		require.ErrorAs(t, err, &pe, s)
	}
}

func TestErrReasonUnwrapsParseError(t *testing.T) {
	err := &ParseError{Reason: "boom"}
	assert.Equal(t, "boom", errReason(err))
	assert.Equal(t, "plain", errReason(errors.New("plain")))
}
