package dateconv

import (
	"time"

	"golang.org/x/text/language"
)

// Calendar represents a mutable calendar bound to a zone and a locale.
// Same kind conversion returns the same *Calendar, callers own it.
type Calendar struct {
	time   time.Time
	locale language.Tag
}

// NewCalendar creates a calendar
func NewCalendar(t time.Time, locale language.Tag) *Calendar {
	return &Calendar{time: t, locale: locale}
}

// Time returns calendar time
func (c *Calendar) Time() time.Time { return c.time }

// Location returns calendar location
func (c *Calendar) Location() *time.Location { return c.time.Location() }

// Locale returns calendar locale
func (c *Calendar) Locale() language.Tag { return c.locale }

// Set sets calendar time
func (c *Calendar) Set(t time.Time) { c.time = t }

// SetLocation moves calendar to supplied location keeping the instant
func (c *Calendar) SetLocation(loc *time.Location) { c.time = c.time.In(loc) }

// Add adds duration
func (c *Calendar) Add(d time.Duration) { c.time = c.time.Add(d) }

// AddDate adds years, months and days
func (c *Calendar) AddDate(years, months, days int) { c.time = c.time.AddDate(years, months, days) }

// Clone returns a copy
func (c *Calendar) Clone() *Calendar {
	clone := *c
	return &clone
}

func (c *Calendar) String() string {
	if c == nil {
		return ""
	}
	return formatZoned(c.time)
}
