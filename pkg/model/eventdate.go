package model

import "time"

// The functions below decompose and mutate an event date in the location of
// the given time. The setters never take a target value: each one derives
// the new date from the current one. Existing clients depend on this.

// Day returns the full weekday name, e.g. "Friday".
func Day(t time.Time) string {
	return t.Weekday().String()
}

// SetDay replaces the day of month with the weekday index (Sunday = 0).
// Day 0 normalizes to the last day of the previous month.
func SetDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), int(t.Weekday()),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Month returns the full month name, e.g. "December".
func Month(t time.Time) string {
	return t.Month().String()
}

// SetMonth moves the date back one month. Days past the end of the target
// month overflow into the following month.
func SetMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()-1, t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Year returns the four digit calendar year.
func Year(t time.Time) int {
	return t.Year()
}

// SetYear moves the date back one year.
func SetYear(t time.Time) time.Time {
	return time.Date(t.Year()-1, t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
