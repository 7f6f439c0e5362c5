package dateconv

import (
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Format renders value as canonical ISO-8601 text, null yields empty text
func Format(value any) (string, error) {
	if isNull(value) {
		return "", nil
	}
	switch actual := value.(type) {
	case *Calendar:
		return actual.String(), nil
	case UnixMillis:
		return actual.Time().Format("2006-01-02T15:04:05.000Z07:00"), nil
	case pgtype.Date:
		if actual.InfinityModifier != pgtype.Finite {
			return infinity(actual.InfinityModifier), nil
		}
		return LocalDateOf(actual.Time).String(), nil
	case pgtype.Timestamp:
		if actual.InfinityModifier != pgtype.Finite {
			return infinity(actual.InfinityModifier), nil
		}
		return strings.Replace(LocalDateTimeOf(actual.Time).String(), "T", " ", 1), nil
	case pgtype.Time:
		return LocalTimeOf(midnight.Add(time.Duration(actual.Microseconds) * time.Microsecond)).String(), nil
	case XMLCalendar:
		return actual.String(), nil
	case Instant:
		return actual.String(), nil
	case *timestamppb.Timestamp:
		return actual.AsTime().Format(time.RFC3339Nano), nil
	case LocalDate:
		return actual.String(), nil
	case LocalTime:
		return actual.String(), nil
	case LocalDateTime:
		return actual.String(), nil
	case time.Time:
		return formatZoned(actual), nil
	case OffsetDateTime:
		return actual.String(), nil
	case dbtype.Date:
		return LocalDateOf(time.Time(actual)).String(), nil
	case dbtype.LocalTime:
		return LocalTimeOf(time.Time(actual)).String(), nil
	case dbtype.LocalDateTime:
		return LocalDateTimeOf(time.Time(actual)).String(), nil
	}
	return "", unsupported(typeName(value), KindInvalid, "value can not be formatted")
}

// formatZoned formats t with offset and, for named zones, the zone id, i.e. 2014-04-26T17:24:37+02:00[Europe/Paris]
func formatZoned(t time.Time) string {
	_, offset := t.Zone()
	result := LocalDateTimeOf(t).String() + formatOffset(offset)
	switch name := t.Location().String(); {
	case name == "", name == "UTC", name == "Local", strings.HasPrefix(name, "+"), strings.HasPrefix(name, "-"), name == "Z":
	default:
		result += fmt.Sprintf("[%v]", name)
	}
	return result
}

func infinity(modifier pgtype.InfinityModifier) string {
	if modifier == pgtype.NegativeInfinity {
		return "-infinity"
	}
	return "infinity"
}
