package zulu

import (
	"strconv"
	"strings"
	"time"
)

// formatNative renders t according to a strftime-style directive string.
// The supported directive set is the one the token table maps onto, plus
// the "%-" no-padding modifier and "%Nf" fixed-width fractional seconds.
// Unknown directives are copied through verbatim.
func formatNative(format string, t time.Time) string {
	var b strings.Builder
	b.Grow(len(format) + 8)

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 == len(format) {
			b.WriteByte(c)
			continue
		}

		i++
		pad := true
		if format[i] == '-' && i+1 < len(format) {
			pad = false
			i++
		}

		// %Nf fractional seconds, N in 1..6
		if format[i] >= '1' && format[i] <= '6' && i+1 < len(format) && format[i+1] == 'f' {
			width := int(format[i] - '0')
			b.WriteString(microString(t)[:width])
			i++
			continue
		}

		switch format[i] {
		case 'Y':
			writeInt(&b, t.Year(), 4, pad)
		case 'y':
			writeInt(&b, t.Year()%100, 2, pad)
		case 'B':
			b.WriteString(t.Month().String())
		case 'b':
			b.WriteString(t.Month().String()[:3])
		case 'm':
			writeInt(&b, int(t.Month()), 2, pad)
		case 'j':
			writeInt(&b, t.YearDay(), 3, pad)
		case 'd':
			writeInt(&b, t.Day(), 2, pad)
		case 'A':
			b.WriteString(t.Weekday().String())
		case 'a':
			b.WriteString(t.Weekday().String()[:3])
		case 'w':
			b.WriteString(strconv.Itoa(int(t.Weekday())))
		case 'H':
			writeInt(&b, t.Hour(), 2, pad)
		case 'I':
			writeInt(&b, hour12(t), 2, pad)
		case 'M':
			writeInt(&b, t.Minute(), 2, pad)
		case 'S':
			writeInt(&b, t.Second(), 2, pad)
		case 'f':
			b.WriteString(microString(t))
		case 'p':
			if t.Hour() < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		case 'z':
			b.WriteString(offsetString(t, false))
		case 'Z':
			b.WriteString(t.Format("MST"))
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			if !pad {
				b.WriteByte('-')
			}
			b.WriteByte(format[i])
		}
	}

	return b.String()
}

func writeInt(b *strings.Builder, v, width int, pad bool) {
	s := strconv.Itoa(v)
	if pad {
		for n := width - len(s); n > 0; n-- {
			b.WriteByte('0')
		}
	}
	b.WriteString(s)
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	return h
}

func microString(t time.Time) string {
	micro := t.Nanosecond() / 1000
	s := strconv.Itoa(micro)
	return strings.Repeat("0", 6-len(s)) + s
}

// offsetString renders the UTC offset of t as +HHMM, or +HH:MM when colon
// is true.
func offsetString(t time.Time, colon bool) string {
	_, off := t.Zone()
	sign := byte('+')
	if off < 0 {
		sign = '-'
		off = -off
	}
	hh := off / 3600
	mm := (off % 3600) / 60

	var b strings.Builder
	b.WriteByte(sign)
	writeInt(&b, hh, 2, true)
	if colon {
		b.WriteByte(':')
	}
	writeInt(&b, mm, 2, true)
	return b.String()
}
