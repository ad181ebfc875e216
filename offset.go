package zulu

import (
	"fmt"
	"strings"
)

// maxOffsetMinutes is the largest accepted offset magnitude. 23:59 is valid
// in either direction; 24:00 and anything beyond is rejected. Applying a
// near-maximal offset may roll the UTC date into the previous or next day,
// which is intentional.
const maxOffsetMinutes = 24*60 - 1

// ResolveOffset converts an explicit numeric UTC offset into a signed
// minute count. sign must be '+' or '-'. It fails with a ParseError when
// the combined magnitude reaches 24 hours.
func ResolveOffset(sign byte, hours, minutes int) (int, error) {
	total := hours*60 + minutes
	if sign != '+' && sign != '-' {
		return 0, &ParseError{
			Reason: fmt.Sprintf("invalid offset sign %q", string(sign)),
		}
	}
	if hours < 0 || minutes < 0 || minutes > 59 || total > maxOffsetMinutes {
		return 0, &ParseError{
			Reason: "timezone offset must be strictly between -24 and +24 hours",
		}
	}
	if sign == '-' {
		total = -total
	}
	return total, nil
}

// parseOffsetText resolves the text captured by a %z group: "Z", "+HHMM" or
// "+HH:MM".
func parseOffsetText(s string) (int, error) {
	if s == "Z" || s == "z" {
		return 0, nil
	}
	sign := s[0]
	digits := strings.Replace(s[1:], ":", "", 1)
	if len(digits) != 4 {
		return 0, &ParseError{
			Input:  s,
			Reason: fmt.Sprintf("malformed offset %q", s),
		}
	}
	hh := int(digits[0]-'0')*10 + int(digits[1]-'0')
	mm := int(digits[2]-'0')*10 + int(digits[3]-'0')
	return ResolveOffset(sign, hh, mm)
}
