package types

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Date is a calendar date without time zone
type Date struct {
	civil.Date
}

// MinDate is the smallest representable date. Records carry it when their
// received date could not be parsed.
var MinDate = NewDate(1, time.January, 1)

// fallbackLayouts are tried in order when the input is not YYYY-MM-DD
var fallbackLayouts = []string{
	"20060102",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NewDate creates a Date. The caller is responsible for passing a valid day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{civil.Date{Year: year, Month: month, Day: day}}
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) Date {
	return Date{civil.DateOf(t)}
}

// Today returns the current UTC date
func Today() Date {
	return DateOf(time.Now().UTC())
}

// ParseDate parses s as YYYY-MM-DD, falling back to a set of common layouts.
// It reports false for blank input or when no layout matches; impossible
// calendar dates such as 2021-02-30 never match.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}

	if d, err := civil.ParseDate(s); err == nil {
		return Date{d}, true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), true
		}
	}

	return Date{}, false
}

// DaysSince returns the number of days from s to d
func (d Date) DaysSince(s Date) int {
	return d.Date.DaysSince(s.Date)
}

// AddDays returns the date n days after d
func (d Date) AddDays(n int) Date {
	return Date{d.Date.AddDays(n)}
}

// Before reports whether d is before o
func (d Date) Before(o Date) bool {
	return d.Date.Before(o.Date)
}

// After reports whether d is after o
func (d Date) After(o Date) bool {
	return d.Date.After(o.Date)
}
