package dateconv

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// UnixMillis represents milliseconds since the Unix epoch, the legacy mutable date shape
type UnixMillis int64

// Time returns UTC time
func (m UnixMillis) Time() time.Time { return time.UnixMilli(int64(m)).UTC() }

// Instant represents a point on the UTC time line
type Instant struct {
	Seconds int64
	Nanos   int32
}

// NewInstant creates an instant
func NewInstant(t time.Time) Instant {
	return Instant{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

// ParseInstant parses RFC 3339 text, i.e. 2009-08-12T22:15:09Z
func ParseInstant(text string) (Instant, error) {
	t, err := time.Parse(time.RFC3339Nano, text)
	if err != nil {
		return Instant{}, err
	}
	return NewInstant(t), nil
}

// Time returns UTC time
func (i Instant) Time() time.Time { return time.Unix(i.Seconds, int64(i.Nanos)).UTC() }

func (i Instant) String() string { return i.Time().Format(time.RFC3339Nano) }

// LocalDate represents a date without time of day and zone
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewLocalDate creates a local date, out of range values are normalised
func NewLocalDate(year int, month time.Month, day int) LocalDate {
	return LocalDateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// LocalDateOf returns date fields of t in its own location
func LocalDateOf(t time.Time) LocalDate {
	year, month, day := t.Date()
	return LocalDate{Year: year, Month: month, Day: day}
}

// In returns start of the day in supplied location
func (d LocalDate) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsZero returns true for zero value
func (d LocalDate) IsZero() bool { return d == LocalDate{} }

func (d LocalDate) String() string {
	return formatYear(d.Year) + fmt.Sprintf("-%02d-%02d", int(d.Month), d.Day)
}

// LocalTime represents a time of day without date and zone
type LocalTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// NewLocalTime creates a local time
func NewLocalTime(hour, minute, second, nanosecond int) LocalTime {
	return LocalTime{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond}
}

// LocalTimeOf returns clock fields of t in its own location
func LocalTimeOf(t time.Time) LocalTime {
	hour, minute, second := t.Clock()
	return LocalTime{Hour: hour, Minute: minute, Second: second, Nanosecond: t.Nanosecond()}
}

// SinceMidnight returns duration since midnight
func (t LocalTime) SinceMidnight() time.Duration {
	return time.Duration(t.Hour)*time.Hour + time.Duration(t.Minute)*time.Minute +
		time.Duration(t.Second)*time.Second + time.Duration(t.Nanosecond)
}

// On returns the time of day on supplied date and location
func (t LocalTime) On(date LocalDate, loc *time.Location) time.Time {
	return time.Date(date.Year, date.Month, date.Day, t.Hour, t.Minute, t.Second, t.Nanosecond, loc)
}

func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second) + fraction(t.Nanosecond)
}

// LocalDateTime represents a date and time of day without zone
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

// LocalDateTimeOf returns wall clock fields of t in its own location
func LocalDateTimeOf(t time.Time) LocalDateTime {
	return LocalDateTime{Date: LocalDateOf(t), Time: LocalTimeOf(t)}
}

// In returns the wall clock in supplied location
func (d LocalDateTime) In(loc *time.Location) time.Time {
	return d.Time.On(d.Date, loc)
}

func (d LocalDateTime) String() string {
	return d.Date.String() + "T" + d.Time.String()
}

// OffsetDateTime represents a date and time with a fixed UTC offset
type OffsetDateTime struct {
	t time.Time
}

// NewOffsetDateTime creates an offset date time keeping the offset t has at its instant
func NewOffsetDateTime(t time.Time) OffsetDateTime {
	_, offset := t.Zone()
	return OffsetDateTime{t: t.In(fixedZone(offset))}
}

// OffsetDateTimeOf creates an offset date time from wall clock and offset in seconds
func OffsetDateTimeOf(local LocalDateTime, offset int) OffsetDateTime {
	return OffsetDateTime{t: local.In(fixedZone(offset))}
}

// Time returns time in the fixed offset zone
func (o OffsetDateTime) Time() time.Time { return o.t }

// Offset returns offset in seconds
func (o OffsetDateTime) Offset() int {
	_, offset := o.t.Zone()
	return offset
}

// IsZero returns true for zero value
func (o OffsetDateTime) IsZero() bool { return o.t.IsZero() }

func (o OffsetDateTime) String() string {
	return LocalDateTimeOf(o.t).String() + formatOffset(o.Offset())
}

var fixedZones sync.Map // map[int]*time.Location

func fixedZone(offset int) *time.Location {
	if loc, ok := fixedZones.Load(offset); ok {
		return loc.(*time.Location)
	}
	loc, _ := fixedZones.LoadOrStore(offset, time.FixedZone(formatOffset(offset), offset))
	return loc.(*time.Location)
}

// formatOffset formats offset in seconds as Z or ±hh:mm[:ss]
func formatOffset(offset int) string {
	if offset == 0 {
		return "Z"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	result := fmt.Sprintf("%v%02d:%02d", sign, offset/3600, offset/60%60)
	if seconds := offset % 60; seconds != 0 {
		result += fmt.Sprintf(":%02d", seconds)
	}
	return result
}

// fraction returns second fraction in groups of 3 digits, empty for whole seconds
func fraction(nanos int) string {
	switch {
	case nanos == 0:
		return ""
	case nanos%1000000 == 0:
		return fmt.Sprintf(".%03d", nanos/1000000)
	case nanos%1000 == 0:
		return fmt.Sprintf(".%06d", nanos/1000)
	}
	return fmt.Sprintf(".%09d", nanos)
}

func formatYear(year int) string {
	switch {
	case year < 0:
		return fmt.Sprintf("-%04d", -year)
	case year > 9999:
		return "+" + strconv.Itoa(year)
	}
	return fmt.Sprintf("%04d", year)
}
