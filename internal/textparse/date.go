package textparse

import (
	"regexp"
	"strconv"
	"time"
)

// datePattern pairs a regular expression with the position of the
// four-digit year among its numeric groups.
type datePattern struct {
	re        *regexp.Regexp
	yearFirst bool
}

// datePatterns are tried in order. Two-group patterns carry no year and
// take it from the reference time.
var datePatterns = []datePattern{
	{regexp.MustCompile(`(\d{4})[-/](\d{1,2})[-/](\d{1,2})`), true},
	{regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{4})`), false},
	{regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})`), false},
	{regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일`), false},
	{regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`), false},
	{regexp.MustCompile(`(\d{1,2})\.(\d{1,2})`), false},
}

var digitRuns = regexp.MustCompile(`\d+`)

// ExtractDate pulls a calendar date out of free text. Returns false
// when no pattern matches; callers substitute the current time.
func ExtractDate(text string, now time.Time) (time.Time, bool) {
	for _, p := range datePatterns {
		m := p.re.FindString(text)
		if m == "" {
			continue
		}

		parts := digitRuns.FindAllString(m, -1)
		year := now.Year()
		var month, day int
		switch len(parts) {
		case 3:
			if p.yearFirst {
				year = atoi(parts[0])
				month = atoi(parts[1])
				day = atoi(parts[2])
			} else {
				month = atoi(parts[0])
				day = atoi(parts[1])
				year = atoi(parts[2])
			}
		case 2:
			month = atoi(parts[0])
			day = atoi(parts[1])
		default:
			continue
		}

		// Out-of-range months and days normalize the same way the
		// host calendar does.
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
