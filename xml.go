package dateconv

import (
	"fmt"
	"strings"
	"time"
)

// XMLCalendar represents xsd:dateTime lexical fields
type XMLCalendar struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
	//Timezone is offset in minutes, defined when HasTimezone is set
	Timezone    int
	HasTimezone bool
}

// XMLCalendarOf returns xml calendar for t, the timezone is the offset t has at its instant
func XMLCalendarOf(t time.Time) XMLCalendar {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	_, offset := t.Zone()
	return XMLCalendar{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second, Nanosecond: t.Nanosecond(),
		Timezone: offset / 60, HasTimezone: true,
	}
}

// ParseXMLCalendar parses xsd:dateTime text, i.e. 2014-04-26T17:24:37.318+02:00
func ParseXMLCalendar(text string) (XMLCalendar, error) {
	text = strings.TrimSpace(text)
	if t, err := time.Parse("2006-01-02T15:04:05Z07:00", text); err == nil {
		return XMLCalendarOf(t), nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", text)
	if err != nil {
		return XMLCalendar{}, fmt.Errorf("invalid xsd:dateTime %q: %w", text, err)
	}
	result := XMLCalendarOf(t)
	result.Timezone, result.HasTimezone = 0, false
	return result, nil
}

// In returns time, calendar without timezone is placed in loc
func (x XMLCalendar) In(loc *time.Location) time.Time {
	if x.HasTimezone {
		loc = fixedZone(x.Timezone * 60)
	}
	return time.Date(x.Year, x.Month, x.Day, x.Hour, x.Minute, x.Second, x.Nanosecond, loc)
}

func (x XMLCalendar) String() string {
	result := formatYear(x.Year) + fmt.Sprintf("-%02d-%02dT%02d:%02d:%02d", int(x.Month), x.Day, x.Hour, x.Minute, x.Second) + fraction(x.Nanosecond)
	if x.HasTimezone {
		result += formatOffset(x.Timezone * 60)
	}
	return result
}
