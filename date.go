package casefeed

import (
	"strconv"
	"time"
)

// rawDateLayout is the date shape found in decision tables and boxes.
const rawDateLayout = "02.01.2006"

// frenchMonths indexes full French month names by time.Month.
var frenchMonths = [...]string{
	time.January:   "janvier",
	time.February:  "février",
	time.March:     "mars",
	time.April:     "avril",
	time.May:       "mai",
	time.June:      "juin",
	time.July:      "juillet",
	time.August:    "août",
	time.September: "septembre",
	time.October:   "octobre",
	time.November:  "novembre",
	time.December:  "décembre",
}

// ISODate converts a DD.MM.YYYY raw date into ISO YYYY-MM-DD. On
// format mismatch or absence it returns the sentinel date.
func ISODate(raw string) string {
	t, err := time.Parse(rawDateLayout, raw)
	if err != nil {
		return SentinelISODate
	}
	return t.Format("2006-01-02")
}

// DisplayDate derives the long-form French date from an ISO date: day
// of month without leading zero, full month name, four-digit year. Day
// one renders as the ordinal "1er". An unparseable ISO date falls back
// to the sentinel's display form, so the sentinel path and the normal
// path can never drift apart.
func DisplayDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		t, _ = time.Parse("2006-01-02", SentinelISODate)
	}

	day := strconv.Itoa(t.Day())
	if t.Day() == 1 {
		day = "1er"
	}
	return day + " " + frenchMonths[t.Month()] + " " + strconv.Itoa(t.Year())
}
