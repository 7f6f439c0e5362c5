package dateconv

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// encoder converts a value already reshaped to the kind completeness
type encoder func(v value, zone *ZoneContext) any

var encoders = [kindCount]encoder{
	KindCalendar: func(v value, zone *ZoneContext) any {
		return NewCalendar(v.t, zone.Locale())
	},
	KindUnixMillis: func(v value, _ *ZoneContext) any {
		return UnixMillis(v.t.UnixMilli())
	},
	KindSQLDate: func(v value, _ *ZoneContext) any {
		return pgtype.Date{Time: v.t, Valid: true}
	},
	KindSQLTimestamp: func(v value, _ *ZoneContext) any {
		return pgtype.Timestamp{Time: v.t, Valid: true}
	},
	KindSQLTime: func(v value, _ *ZoneContext) any {
		return pgtype.Time{Microseconds: int64(LocalTimeOf(v.t).SinceMidnight() / time.Microsecond), Valid: true}
	},
	KindXMLCalendar: func(v value, _ *ZoneContext) any {
		return XMLCalendarOf(v.t)
	},
	KindInstant: func(v value, _ *ZoneContext) any {
		return NewInstant(v.t)
	},
	KindProtoTimestamp: func(v value, _ *ZoneContext) any {
		return timestamppb.New(v.t)
	},
	KindLocalDate: func(v value, _ *ZoneContext) any {
		return LocalDateOf(v.t)
	},
	KindLocalTime: func(v value, _ *ZoneContext) any {
		return LocalTimeOf(v.t)
	},
	KindLocalDateTime: func(v value, _ *ZoneContext) any {
		return LocalDateTimeOf(v.t)
	},
	KindZonedDateTime: func(v value, _ *ZoneContext) any {
		return v.t
	},
	KindOffsetDateTime: func(v value, _ *ZoneContext) any {
		return NewOffsetDateTime(v.t)
	},
	KindNeo4jDate: func(v value, _ *ZoneContext) any {
		return dbtype.Date(v.t)
	},
	KindNeo4jLocalTime: func(v value, _ *ZoneContext) any {
		return dbtype.LocalTime(v.t)
	},
	KindNeo4jLocalDateTime: func(v value, _ *ZoneContext) any {
		return dbtype.LocalDateTime(v.t)
	},
}
