package zulu

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	pkgerrors "github.com/pkg/errors"
	"github.com/tkuchiki/go-timezone"
)

var tzdb = timezone.New()

// LoadZone coerces a timezone name into a *time.Location. "local" resolves
// to the system zone, the empty string and "UTC" to UTC, IANA names through
// the embedded tzdata, and bare zone abbreviations (EST, JST, ...) through
// the abbreviation database. An unrecognized name is a ValueError: the name
// is caller-supplied configuration, not parsed data.
func LoadZone(name string) (*time.Location, error) {
	switch strings.ToLower(name) {
	case "", "utc":
		return time.UTC, nil
	case "local":
		return time.Local, nil
	}

	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc, nil
	}

	if info, abbrErr := tzdb.GetTzAbbreviationInfo(name); abbrErr == nil && len(info) > 0 {
		return time.FixedZone(name, info[0].Offset()), nil
	}

	return nil, &ValueError{
		Reason: fmt.Sprintf("unrecognized timezone given to use as default: %q", name),
		Cause:  pkgerrors.Wrap(err, "load location"),
	}
}
