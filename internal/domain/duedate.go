package domain

import (
	"fmt"
	"strings"
	"time"
)

// localLayouts carry no zone and are read in the caller's location
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDueDate reads a stored due date. Layouts without a zone are taken in loc;
// a bare date means midnight that day.
func ParseDueDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range localLayouts {
		if wall, err := time.Parse(layout, s); err == nil {
			return inLocation(wall, loc), true
		}
	}
	return time.Time{}, false
}

// inLocation reads wall's clock fields as a time in loc, keeping the calendar
// day when that wall time was skipped by a DST change.
func inLocation(wall time.Time, loc *time.Location) time.Time {
	y, m, d := wall.Date()
	t := time.Date(y, m, d, wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), loc)
	if day := (Date{Year: y, Month: m, Day: d}); DateOf(t, loc) != day {
		return day.Start(loc)
	}
	return t
}

// Date is a calendar day with no time of day or zone. It is comparable, so it
// can key maps where a midnight time.Time would not be stable across DST.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day t falls on in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// AddDays moves n calendar days, normalising across month and year ends.
func (d Date) AddDays(n int) Date {
	y, m, day := time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC).Date()
	return Date{Year: y, Month: m, Day: day}
}

// Before reports whether d is an earlier day than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Start returns the first instant of d in loc. Where a DST change skips
// midnight this is the first valid time that day.
func (d Date) Start(loc *time.Location) time.Time {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
	if DateOf(t, loc) != d {
		// midnight did not exist and time.Date moved back into the previous day
		t = time.Date(d.Year, d.Month, d.Day, 1, 0, 0, 0, loc)
	}
	return t
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// StartOfDay truncates t to the start of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	return DateOf(t, loc).Start(loc)
}

// DueDay returns the calendar day the task is due on in loc.
func (t Task) DueDay(loc *time.Location) (Date, bool) {
	due, ok := ParseDueDate(t.DueDate, loc)
	if !ok {
		return Date{}, false
	}
	return DateOf(due, loc), true
}
