package dateconv

import "time"

// value is the intermediate form every kind decodes to.
//
// DateOnly values hold a UTC midnight, TimeOnly values hold the clock on 0000-01-01 UTC,
// DateTime values hold the wall clock in UTC, Zoned values keep their own location.
type value struct {
	completeness Completeness
	t            time.Time
}

func dateValue(t time.Time) value {
	year, month, day := t.Date()
	return value{completeness: DateOnly, t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func timeValue(t time.Time) value {
	hour, minute, second := t.Clock()
	return value{completeness: TimeOnly, t: time.Date(0, 1, 1, hour, minute, second, t.Nanosecond(), time.UTC)}
}

func dateTimeValue(t time.Time) value {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return value{completeness: DateTime, t: time.Date(year, month, day, hour, minute, second, t.Nanosecond(), time.UTC)}
}

func zonedValue(t time.Time) value {
	return value{completeness: Zoned, t: t}
}

// reshape adapts v to target completeness, false is returned when the source
// misses a date the target requires
func (v value) reshape(target Completeness, zone *ZoneContext) (value, bool) {
	if v.completeness == target {
		return v, true
	}
	if v.completeness == TimeOnly {
		return value{}, false
	}
	switch target {
	case TimeOnly:
		if v.completeness == DateOnly {
			return value{completeness: TimeOnly, t: time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)}, true
		}
		return timeValue(v.t), true
	case DateOnly:
		return dateValue(v.t), true
	case DateTime:
		return dateTimeValue(v.t), true
	case Zoned:
		year, month, day := v.t.Date()
		hour, minute, second := v.t.Clock()
		return zonedValue(time.Date(year, month, day, hour, minute, second, v.t.Nanosecond(), zone.Location())), true
	}
	return value{}, false
}

func lossReason(source, target Completeness) string {
	return "source " + source.String() + " value carries no date required by " + target.String() + " target"
}
