// Package format renders money, dates and contact details the way the
// portal displays them.
package format

import (
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const dateLayout = "2006-01-02"

var (
	nonDigitRE = regexp.MustCompile(`\D`)
	titler     = cases.Title(language.AmericanEnglish)
)

// Currency formats USD with two decimals, e.g. "$1,245,600.00".
func Currency(amount float64) string {
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -amount)
	}
	return "$" + humanize.FormatFloat("#,###.##", amount)
}

// Date renders a YYYY-MM-DD or RFC 3339 value as "Aug 15, 2025". Values
// that parse as neither are returned unchanged.
func Date(s string) string {
	t, ok := parse(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2, 2006")
}

func DateTime(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006, 03:04 PM")
}

// Age is a humanized distance such as "3 days ago".
func Age(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// Phone formats a 10-digit number as "(555) 123-4567"; anything else is
// returned as given.
func Phone(s string) string {
	d := nonDigitRE.ReplaceAllString(s, "")
	if len(d) != 10 {
		return s
	}
	return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
}

// Label turns identifiers like "agency_admin" into "Agency Admin".
func Label(s string) string {
	return titler.String(strings.ReplaceAll(s, "_", " "))
}

func parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}
