package zulu

// Subset of the Unicode date field symbols from TR35 supported as a more
// readable alternative to strftime directives. Each token carries the
// directive used when parsing, the directive used when formatting (these
// differ for tokens without a leading zero, e.g. "d"), and the regular
// expression fragment the translator emits for it in parsing mode.
type patternToken struct {
	symbol    string
	parseDir  string
	formatDir string
	fragment  string
}

const (
	fragMonthFull = `(?i:january|february|march|april|may|june|july|august|september|october|november|december)`
	fragMonthAbbr = `(?i:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`
	fragDayFull   = `(?i:sunday|monday|tuesday|wednesday|thursday|friday|saturday)`
	fragDayAbbr   = `(?i:sun|mon|tue|wed|thu|fri|sat)`
	fragMeridiem  = `(?i:am|pm)`
	fragOffset    = `(?:Z|[+-]\d{2}:?\d{2})`
)

// Ordered longest-symbol-first so the maximal-munch scan in translate
// prefers "dd" over "d" deterministically. Keep it sorted when adding
// entries.
var patternTokens = []patternToken{
	{"SSSSSS", "%f", "%f", `\d{6}`},
	{"SSSSS", "%5f", "%5f", `\d{5}`},
	{"SSSS", "%4f", "%4f", `\d{4}`},
	{"YYYY", "%Y", "%Y", `\d{4}`},
	{"MMMM", "%B", "%B", fragMonthFull},
	{"EEEE", "%A", "%A", fragDayFull},
	{"SSS", "%3f", "%3f", `\d{3}`},
	{"MMM", "%b", "%b", fragMonthAbbr},
	{"DDD", "%j", "%j", `\d{3}`},
	{"EEE", "%a", "%a", fragDayAbbr},
	{"eee", "%a", "%a", fragDayAbbr},
	{"SS", "%2f", "%2f", `\d{2}`},
	{"YY", "%y", "%y", `\d{2}`},
	{"MM", "%m", "%m", `\d{2}`},
	{"EE", "%a", "%a", fragDayAbbr},
	{"ee", "%a", "%a", fragDayAbbr},
	{"dd", "%d", "%d", `\d{2}`},
	{"HH", "%H", "%H", `\d{2}`},
	{"hh", "%I", "%I", `\d{2}`},
	{"mm", "%M", "%M", `\d{2}`},
	{"ss", "%S", "%S", `\d{2}`},
	{"S", "%1f", "%1f", `\d{1}`},
	{"M", "%m", "%-m", `\d{1,2}`},
	{"D", "%j", "%-j", `\d{1,3}`},
	{"d", "%d", "%-d", `\d{1,2}`},
	{"E", "%a", "%a", fragDayAbbr},
	{"e", "%w", "%w", `[0-6]`},
	{"H", "%H", "%-H", `\d{1,2}`},
	{"h", "%I", "%-I", `\d{1,2}`},
	{"m", "%M", "%-M", `\d{1,2}`},
	{"s", "%S", "%-S", `\d{1,2}`},
	{"a", "%p", "%p", fragMeridiem},
	{"Z", "%z", "%z", fragOffset},
}

// matchToken returns the longest pattern token matching a prefix of s.
func matchToken(s string) (patternToken, bool) {
	for _, tok := range patternTokens {
		if len(s) >= len(tok.symbol) && s[:len(tok.symbol)] == tok.symbol {
			return tok, true
		}
	}
	return patternToken{}, false
}

// directiveFragments maps native strftime directives to the regex fragment
// used when a candidate format is already in directive form. Numeric widths
// here are lenient (1-2 digits) to mirror strptime behavior; the exact-width
// fragments live on the pattern tokens themselves.
var directiveFragments = map[string]string{
	"%Y":  `\d{4}`,
	"%y":  `\d{2}`,
	"%B":  fragMonthFull,
	"%b":  fragMonthAbbr,
	"%m":  `\d{1,2}`,
	"%j":  `\d{1,3}`,
	"%d":  `\d{1,2}`,
	"%A":  fragDayFull,
	"%a":  fragDayAbbr,
	"%w":  `[0-6]`,
	"%H":  `\d{1,2}`,
	"%I":  `\d{1,2}`,
	"%M":  `\d{1,2}`,
	"%S":  `\d{1,2}`,
	"%f":  `\d{1,6}`,
	"%1f": `\d{1}`,
	"%2f": `\d{2}`,
	"%3f": `\d{3}`,
	"%4f": `\d{4}`,
	"%5f": `\d{5}`,
	"%p":  fragMeridiem,
	"%z":  fragOffset,
}
