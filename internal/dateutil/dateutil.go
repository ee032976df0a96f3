// Package dateutil works on the canonical YYYY-MM-DD day keys used
// throughout the journal. Keys compare correctly as plain strings.
package dateutil

import (
	"math"
	"time"
)

const Layout = "2006-01-02"

// TodayISO returns today's key in local time.
func TodayISO() string {
	return time.Now().Format(Layout)
}

// Parse parses a day key at local midnight.
func Parse(dateISO string) (time.Time, error) {
	return time.ParseInLocation(Layout, dateISO, time.Local)
}

// IsValidISO reports whether s is a well-formed day key.
func IsValidISO(s string) bool {
	_, err := Parse(s)
	return err == nil && len(s) == len(Layout)
}

// AddDaysISO shifts a day key by deltaDays. Invalid input is returned
// unchanged.
func AddDaysISO(dateISO string, deltaDays int) string {
	d, err := Parse(dateISO)
	if err != nil {
		return dateISO
	}
	return d.AddDate(0, 0, deltaDays).Format(Layout)
}

// StartOfWeekISO returns the Monday of the week containing dateISO.
func StartOfWeekISO(dateISO string) string {
	d, err := Parse(dateISO)
	if err != nil {
		return dateISO
	}
	diff := (int(d.Weekday()) + 6) % 7 // Monday=0
	return d.AddDate(0, 0, -diff).Format(Layout)
}

// DaysBetween returns the whole-day gap from a to b (negative when b is
// earlier). Zero when either key is invalid.
func DaysBetween(aISO, bISO string) int {
	a, errA := Parse(aISO)
	b, errB := Parse(bISO)
	if errA != nil || errB != nil {
		return 0
	}
	// Round so a DST hour doesn't shave a day off the count.
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// IsTuesdayISO marks the weekly injection day.
func IsTuesdayISO(dateISO string) bool {
	wd, ok := weekday(dateISO)
	return ok && wd == time.Tuesday
}

// IsWednesdayISO marks the weekly weigh-in day.
func IsWednesdayISO(dateISO string) bool {
	wd, ok := weekday(dateISO)
	return ok && wd == time.Wednesday
}

func IsTuesdayOrWednesdayISO(dateISO string) bool {
	wd, ok := weekday(dateISO)
	return ok && (wd == time.Tuesday || wd == time.Wednesday)
}

func weekday(dateISO string) (time.Weekday, bool) {
	d, err := Parse(dateISO)
	if err != nil {
		return 0, false
	}
	return d.Weekday(), true
}

// ToDisplay renders a short label like "Wed, Jan 7".
func ToDisplay(dateISO string) string {
	d, err := Parse(dateISO)
	if err != nil {
		return dateISO
	}
	return d.Format("Mon, Jan 2")
}

// ToFormattedDate renders a long label like "Wednesday, 01/07/2026".
func ToFormattedDate(dateISO string) string {
	d, err := Parse(dateISO)
	if err != nil {
		return dateISO
	}
	return d.Format("Monday, 01/02/2006")
}
