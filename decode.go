package dateconv

import (
	"fmt"
	"reflect"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type decoder func(src any, zone *ZoneContext) (value, error)

var midnight = time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)

var decoders = [kindCount]decoder{
	KindCalendar: func(src any, _ *ZoneContext) (value, error) {
		return zonedValue(src.(*Calendar).Time()), nil
	},
	KindUnixMillis: func(src any, zone *ZoneContext) (value, error) {
		return zonedValue(time.UnixMilli(int64(src.(UnixMillis))).In(zone.Location())), nil
	},
	KindSQLDate: func(src any, _ *ZoneContext) (value, error) {
		date := src.(pgtype.Date)
		if date.InfinityModifier != pgtype.Finite {
			return value{}, unsupported(KindSQLDate.String(), KindInvalid, "infinite date has no calendar fields")
		}
		return dateValue(date.Time), nil
	},
	KindSQLTimestamp: func(src any, _ *ZoneContext) (value, error) {
		ts := src.(pgtype.Timestamp)
		if ts.InfinityModifier != pgtype.Finite {
			return value{}, unsupported(KindSQLTimestamp.String(), KindInvalid, "infinite timestamp has no calendar fields")
		}
		return dateTimeValue(ts.Time), nil
	},
	KindSQLTime: func(src any, _ *ZoneContext) (value, error) {
		micros := src.(pgtype.Time).Microseconds
		if micros < 0 || micros > int64(24*time.Hour/time.Microsecond) {
			return value{}, unsupported(KindSQLTime.String(), KindInvalid, fmt.Sprintf("time of day out of range: %vus", micros))
		}
		return timeValue(midnight.Add(time.Duration(micros) * time.Microsecond)), nil
	},
	KindXMLCalendar: func(src any, zone *ZoneContext) (value, error) {
		return zonedValue(src.(XMLCalendar).In(zone.Location())), nil
	},
	KindInstant: func(src any, zone *ZoneContext) (value, error) {
		return zonedValue(src.(Instant).Time().In(zone.Location())), nil
	},
	KindProtoTimestamp: func(src any, zone *ZoneContext) (value, error) {
		ts := src.(*timestamppb.Timestamp)
		if err := ts.CheckValid(); err != nil {
			return value{}, unsupported(KindProtoTimestamp.String(), KindInvalid, err.Error())
		}
		return zonedValue(ts.AsTime().In(zone.Location())), nil
	},
	KindLocalDate: func(src any, _ *ZoneContext) (value, error) {
		return dateValue(src.(LocalDate).In(time.UTC)), nil
	},
	KindLocalTime: func(src any, _ *ZoneContext) (value, error) {
		return timeValue(src.(LocalTime).On(LocalDate{Year: 0, Month: time.January, Day: 1}, time.UTC)), nil
	},
	KindLocalDateTime: func(src any, _ *ZoneContext) (value, error) {
		return dateTimeValue(src.(LocalDateTime).In(time.UTC)), nil
	},
	KindZonedDateTime: func(src any, _ *ZoneContext) (value, error) {
		return zonedValue(src.(time.Time)), nil
	},
	KindOffsetDateTime: func(src any, _ *ZoneContext) (value, error) {
		return zonedValue(src.(OffsetDateTime).Time()), nil
	},
	KindNeo4jDate: func(src any, _ *ZoneContext) (value, error) {
		return dateValue(time.Time(src.(dbtype.Date))), nil
	},
	KindNeo4jLocalTime: func(src any, _ *ZoneContext) (value, error) {
		return timeValue(time.Time(src.(dbtype.LocalTime))), nil
	},
	KindNeo4jLocalDateTime: func(src any, _ *ZoneContext) (value, error) {
		return dateTimeValue(time.Time(src.(dbtype.LocalDateTime))), nil
	},
}

// isNull returns true for nil, typed nil pointers and invalid SQL values
func isNull(src any) bool {
	switch actual := src.(type) {
	case nil:
		return true
	case *Calendar:
		return actual == nil
	case *timestamppb.Timestamp:
		return actual == nil
	case pgtype.Date:
		return !actual.Valid
	case pgtype.Timestamp:
		return !actual.Valid
	case pgtype.Time:
		return !actual.Valid
	case *string:
		return actual == nil
	}
	rValue := reflect.ValueOf(src)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rValue.IsNil()
	}
	return false
}

func typeName(src any) string {
	if src == nil {
		return "nil"
	}
	return reflect.TypeOf(src).String()
}
