package deprecations

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	isoDateRE     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	parentheticRE = regexp.MustCompile(`\s*\([^)]*\)`)
	ordinalRE     = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)\b`)
)

// Placeholder tokens sources use where a date is unknown. The final entries
// are mojibake artifacts of an em dash surviving a bad encoding round trip.
var datePlaceholders = map[string]bool{
	"na":   true,
	"n/a":  true,
	"tbd":  true,
	"none": true,
	"-":    true,
	"—":    true,
	"–":    true,
	"â€”":  true,
	"â€“":  true,
}

// NormalizeDate parses a heterogeneous date expression into a canonical
// YYYY-MM-DD string. It strips parenthetical region qualifiers
// ("(us-east-1 and us-west-2)", "(all Regions)") and ordinal day suffixes
// ("15th") before parsing. Placeholder tokens and unparseable input return
// the empty string; this function never fails.
func NormalizeDate(raw string) string {
	t, err := ParseDate(raw)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// ParseDate is the raising counterpart of NormalizeDate for callers that
// require a date. The returned time is in UTC; sources never carry a zone
// on calendar dates.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" || datePlaceholders[strings.ToLower(s)] {
		return time.Time{}, Errorf(EINVALID, "no date in %q", raw)
	}

	s = parentheticRE.ReplaceAllString(s, "")
	s = ordinalRE.ReplaceAllString(s, "$1")
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, Errorf(EINVALID, "no date in %q", raw)
	}

	// Already canonical.
	if isoDateRE.MatchString(s) {
		t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
		if err != nil {
			return time.Time{}, Errorf(EINVALID, "invalid date %q", raw)
		}
		return t, nil
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, Errorf(EINVALID, "could not parse date %q", raw)
	}
	return t.UTC(), nil
}
