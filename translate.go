package zulu

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// TranslatedFormat is the result of translating one format string. Native
// holds the strftime directive equivalent used for formatting. When the
// translation was requested for parsing, Regex holds an equivalent
// expression anchored at both ends with one named capture group per
// directive, and Groups maps each group name back to its directive so the
// matched text can be reassembled into datetime fields.
type TranslatedFormat struct {
	Native string
	Regex  string
	Groups map[string]string

	re *regexp2.Regexp
}

// Backtracking guard for the compiled candidate expressions; the fragments
// emitted here are near-linear, so this only trips on pathological input.
const matchTimeout = 250 * time.Millisecond

// Translate converts a human pattern string such as "YYYY-MM-dd HH:mm:ss"
// into its native strftime equivalent, and, in parsing mode, an anchored
// regular expression. The scan is maximal-munch: at every position the
// longest known token wins, so "dd" is never split into "d" "d". Characters
// outside the token table pass through as literals.
//
// A format that already contains a "%" directive marker is treated as
// native: its Native form is returned unchanged, making the translation
// idempotent over its own output.
func Translate(format string, forParsing bool) (TranslatedFormat, error) {
	if strings.ContainsRune(format, '%') {
		return translateNative(format, forParsing)
	}
	return translatePattern(format, forParsing)
}

func translatePattern(format string, forParsing bool) (TranslatedFormat, error) {
	tf := TranslatedFormat{Groups: map[string]string{}}

	var native, regex strings.Builder
	for i := 0; i < len(format); {
		tok, ok := matchToken(format[i:])
		if !ok {
			native.WriteByte(format[i])
			regex.WriteString(escapeLiteral(format[i]))
			i++
			continue
		}
		if forParsing {
			native.WriteString(tok.parseDir)
			addGroup(&tf, &regex, tok.parseDir, tok.fragment)
		} else {
			native.WriteString(tok.formatDir)
		}
		i += len(tok.symbol)
	}

	tf.Native = native.String()
	if forParsing {
		tf.Regex = `\A` + regex.String() + `\z`
		return compileTranslated(tf)
	}
	return tf, nil
}

func translateNative(format string, forParsing bool) (TranslatedFormat, error) {
	tf := TranslatedFormat{Native: format, Groups: map[string]string{}}
	if !forParsing {
		return tf, nil
	}

	var regex strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			regex.WriteString(escapeLiteral(c))
			continue
		}
		if i+1 == len(format) {
			return tf, fmt.Errorf("trailing %% in format %q", format)
		}
		i++
		if format[i] == '%' {
			regex.WriteString(escapeLiteral('%'))
			continue
		}

		dir, width := directiveAt(format, i)
		frag, ok := directiveFragments[dir]
		if !ok {
			return tf, fmt.Errorf("unsupported directive %q in format %q", dir, format)
		}
		addGroup(&tf, &regex, dir, frag)
		i += width - 1
	}

	tf.Regex = `\A` + regex.String() + `\z`
	return compileTranslated(tf)
}

// directiveAt normalizes the directive starting at format[i] (i points one
// past the '%') and reports how many bytes it occupies. "%-d" collapses to
// "%d" since padding is irrelevant when parsing, and "%6f" collapses to
// "%f".
func directiveAt(format string, i int) (string, int) {
	switch {
	case format[i] == '-' && i+1 < len(format):
		return "%" + string(format[i+1]), 2
	case format[i] >= '1' && format[i] <= '6' && i+1 < len(format) && format[i+1] == 'f':
		if format[i] == '6' {
			return "%f", 2
		}
		return "%" + string(format[i]) + "f", 2
	default:
		return "%" + string(format[i]), 1
	}
}

func addGroup(tf *TranslatedFormat, regex *strings.Builder, dir, frag string) {
	name := "g" + strconv.Itoa(len(tf.Groups))
	tf.Groups[name] = dir
	regex.WriteString("(?<" + name + ">" + frag + ")")
}

func compileTranslated(tf TranslatedFormat) (TranslatedFormat, error) {
	re, err := regexp2.Compile(tf.Regex, regexp2.None)
	if err != nil {
		return tf, fmt.Errorf("compile %q: %w", tf.Regex, err)
	}
	re.MatchTimeout = matchTimeout
	tf.re = re
	return tf, nil
}

func escapeLiteral(c byte) string {
	if strings.IndexByte(`\.+*?()|[]{}^$-`, c) >= 0 {
		return `\` + string(c)
	}
	return string(c)
}

// match runs the compiled expression against input and returns the captured
// text per group name. The expression is anchored, so a partial or prefix
// match never succeeds.
func (tf TranslatedFormat) match(input string) (map[string]string, bool, error) {
	m, err := tf.re.FindStringMatch(input)
	if err != nil {
		return nil, false, err
	}
	if m == nil {
		return nil, false, nil
	}
	captured := make(map[string]string, len(tf.Groups))
	for name := range tf.Groups {
		g := m.GroupByName(name)
		if g != nil && len(g.Captures) > 0 {
			captured[name] = g.Captures[len(g.Captures)-1].String()
		}
	}
	return captured, true, nil
}
