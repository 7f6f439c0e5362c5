package dateconv

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func mustLocation(t *testing.T, name string) *time.Location {
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func mustZone(t *testing.T, zone string) *ZoneContext {
	ctx, err := NewZoneContext(ZoneOptions{Zone: zone, Locale: "en-US"})
	require.NoError(t, err)
	return ctx
}

func newTestConverter(t *testing.T, zone string, opts ...Option) (*Converter, *bytes.Buffer) {
	buffer := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	opts = append([]Option{WithZoneContext(mustZone(t, zone)), WithLogger(logger)}, opts...)
	return New(opts...), buffer
}

// samples holds one value per kind, all of them on 2014-04-26 17:24:37.318 in Europe/Paris where applicable
func samples(t *testing.T) map[Kind]any {
	paris := mustLocation(t, "Europe/Paris")
	ts := time.Date(2014, 4, 26, 17, 24, 37, 318000000, paris)
	wall := time.Date(2014, 4, 26, 17, 24, 37, 318000000, time.UTC)
	return map[Kind]any{
		KindCalendar:           NewCalendar(ts, language.French),
		KindUnixMillis:         UnixMillis(ts.UnixMilli()),
		KindSQLDate:            pgtype.Date{Time: time.Date(2014, 4, 26, 0, 0, 0, 0, time.UTC), Valid: true},
		KindSQLTimestamp:       pgtype.Timestamp{Time: wall, Valid: true},
		KindSQLTime:            pgtype.Time{Microseconds: int64(LocalTimeOf(wall).SinceMidnight() / time.Microsecond), Valid: true},
		KindXMLCalendar:        XMLCalendarOf(ts),
		KindInstant:            NewInstant(ts),
		KindProtoTimestamp:     timestamppb.New(ts),
		KindLocalDate:          NewLocalDate(2014, time.April, 26),
		KindLocalTime:          NewLocalTime(17, 24, 37, 318000000),
		KindLocalDateTime:      LocalDateTimeOf(wall),
		KindZonedDateTime:      ts,
		KindOffsetDateTime:     NewOffsetDateTime(ts),
		KindNeo4jDate:          dbtype.Date(time.Date(2014, 4, 26, 0, 0, 0, 0, time.UTC)),
		KindNeo4jLocalTime:     dbtype.LocalTime(time.Date(0, 1, 1, 17, 24, 37, 318000000, time.UTC)),
		KindNeo4jLocalDateTime: dbtype.LocalDateTime(wall),
	}
}

func TestConverter_Convert_Identity(t *testing.T) {
	converter, _ := newTestConverter(t, "UTC")
	for kind, sample := range samples(t) {
		actual, err := converter.Convert(sample, kind)
		require.NoError(t, err, kind.String())
		if kind == KindCalendar || kind == KindProtoTimestamp {
			assert.Same(t, sample, actual, kind.String())
			continue
		}
		assert.Equal(t, sample, actual, kind.String())
	}
}

func TestConverter_Convert_ZonedRoundTrip(t *testing.T) {
	converter, _ := newTestConverter(t, "America/New_York")
	zonedKinds := []Kind{KindCalendar, KindUnixMillis, KindXMLCalendar, KindInstant, KindProtoTimestamp, KindZonedDateTime, KindOffsetDateTime}
	all := samples(t)
	expect := all[KindZonedDateTime].(time.Time).UnixMilli()
	for _, source := range zonedKinds {
		for _, via := range zonedKinds {
			converted, err := converter.Convert(all[source], via)
			require.NoError(t, err, "%v -> %v", source, via)
			back, err := converter.Convert(converted, source)
			require.NoError(t, err, "%v -> %v -> %v", source, via, source)
			millis, err := converter.Convert(back, KindUnixMillis)
			require.NoError(t, err)
			assert.EqualValues(t, expect, millis, "%v -> %v -> %v", source, via, source)
		}
	}
}

func TestConverter_Convert_AllPairs(t *testing.T) {
	converter, _ := newTestConverter(t, "Europe/Paris")
	for source, sample := range samples(t) {
		for _, target := range Kinds() {
			result := converter.Resolve(sample, target)
			if source.Completeness() == TimeOnly && target.Completeness().HasDate() {
				assert.True(t, result.Lossy(), "%v -> %v", source, target)
				assert.True(t, result.Null(), "%v -> %v", source, target)
				continue
			}
			require.NoError(t, result.Err, "%v -> %v", source, target)
			actual, ok := KindOf(result.Value)
			require.True(t, ok, "%v -> %v", source, target)
			assert.Equal(t, target, actual, "%v -> %v", source, target)
			if target.IsAbsolute() {
				continue
			}
			if target.Completeness().HasTime() && source.Completeness().HasTime() {
				text, err := Format(result.Value)
				require.NoError(t, err)
				assert.Contains(t, text, "17:24:37.318", "%v -> %v", source, target)
			}
			if target.Completeness().HasDate() {
				text, err := Format(result.Value)
				require.NoError(t, err)
				assert.Contains(t, text, "2014-04-26", "%v -> %v", source, target)
			}
		}
	}
}

func TestConverter_Convert_Lossy(t *testing.T) {
	converter, logs := newTestConverter(t, "UTC")
	timeOnly := []any{
		pgtype.Time{Microseconds: int64(9 * time.Hour / time.Microsecond), Valid: true},
		NewLocalTime(9, 30, 0, 0),
		dbtype.LocalTime(time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC)),
	}
	for _, source := range timeOnly {
		for _, target := range Kinds() {
			if !target.Completeness().HasDate() {
				continue
			}
			actual, err := converter.Convert(source, target)
			assert.NoError(t, err, "%T -> %v", source, target)
			assert.Nil(t, actual, "%T -> %v", source, target)

			result := converter.Resolve(source, target)
			assert.True(t, result.Lossy())
			assert.ErrorIs(t, result.Err, ErrLossyConversion)
			category, ok := CategoryOf(result.Err)
			assert.True(t, ok)
			assert.Equal(t, CategoryLossyConversion, category)
		}
	}
	assert.Contains(t, logs.String(), "lossy date conversion")
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestConverter_Convert_Null(t *testing.T) {
	converter, _ := newTestConverter(t, "UTC")
	nulls := []any{
		nil,
		(*Calendar)(nil),
		(*timestamppb.Timestamp)(nil),
		(*LocalDate)(nil),
		(*string)(nil),
		pgtype.Date{},
		pgtype.Timestamp{},
		pgtype.Time{},
		"",
	}
	for _, target := range Kinds() {
		for _, src := range nulls {
			actual, err := converter.Convert(src, target)
			assert.NoError(t, err, "%T -> %v", src, target)
			assert.Nil(t, actual, "%T -> %v", src, target)
		}
		actual, err := converter.ConvertString("", target, "yyyy-MM-dd")
		assert.NoError(t, err, target.String())
		assert.Nil(t, actual, target.String())
		result := converter.ResolveString("", target, "")
		assert.True(t, result.Null())
		assert.False(t, result.Lossy())
	}
}

func TestConverter_Convert_Unsupported(t *testing.T) {
	converter, _ := newTestConverter(t, "UTC")
	var testCases = []struct {
		description string
		value       any
		target      Kind
	}{
		{description: "unregistered target", value: NewLocalDate(2014, 4, 26), target: Kind(200)},
		{description: "invalid target", value: NewLocalDate(2014, 4, 26), target: KindInvalid},
		{description: "unregistered target with null", value: nil, target: kindCount},
		{description: "unregistered source", value: 42, target: KindLocalDate},
		{description: "infinite sql date", value: pgtype.Date{InfinityModifier: pgtype.Infinity, Valid: true}, target: KindLocalDate},
	}
	for _, testCase := range testCases {
		_, err := converter.Convert(testCase.value, testCase.target)
		assert.ErrorIs(t, err, ErrUnsupportedConversion, testCase.description)
		category, _ := CategoryOf(err)
		assert.Equal(t, CategoryUnsupportedConversion, category, testCase.description)
	}
	_, err := converter.ConvertString("2014-04-26", Kind(99), "yyyy-MM-dd")
	assert.ErrorIs(t, err, ErrUnsupportedConversion)

	_, err = converter.Convert(42, KindLocalDate)
	assert.Contains(t, err.Error(), "int")
	assert.Contains(t, err.Error(), "LocalDate")
}

func TestConverter_Convert_DefaultZone(t *testing.T) {
	converter, _ := newTestConverter(t, "UTC")
	actual, err := converter.Convert(NewLocalDate(2014, 4, 26), KindZonedDateTime)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2014, 4, 26, 0, 0, 0, 0, time.UTC), actual)
	text, err := Format(actual)
	require.NoError(t, err)
	assert.Equal(t, "2014-04-26T00:00:00Z", text)
}

func TestConverter_Convert_Policy(t *testing.T) {
	paris := mustLocation(t, "Europe/Paris")
	converter, _ := newTestConverter(t, "UTC")
	var testCases = []struct {
		description string
		value       any
		target      Kind
		expect      any
	}{
		{
			description: "zoned to local date time keeps source wall clock",
			value:       time.Date(2014, 4, 26, 17, 24, 0, 0, paris),
			target:      KindLocalDateTime,
			expect:      LocalDateTime{Date: NewLocalDate(2014, 4, 26), Time: NewLocalTime(17, 24, 0, 0)},
		},
		{
			description: "absolute instant viewed in default zone",
			value:       NewInstant(time.Date(2014, 4, 26, 17, 24, 0, 0, paris)),
			target:      KindLocalDateTime,
			expect:      LocalDateTime{Date: NewLocalDate(2014, 4, 26), Time: NewLocalTime(15, 24, 0, 0)},
		},
		{
			description: "zoned to date uses source zone",
			value:       time.Date(2014, 4, 26, 0, 30, 0, 0, paris),
			target:      KindLocalDate,
			expect:      NewLocalDate(2014, 4, 26),
		},
		{
			description: "date to time of day is midnight",
			value:       NewLocalDate(2014, 4, 26),
			target:      KindLocalTime,
			expect:      NewLocalTime(0, 0, 0, 0),
		},
		{
			description: "date to sql timestamp is midnight",
			value:       NewLocalDate(2014, 4, 26),
			target:      KindSQLTimestamp,
			expect:      pgtype.Timestamp{Time: time.Date(2014, 4, 26, 0, 0, 0, 0, time.UTC), Valid: true},
		},
		{
			description: "neo4j date to local date",
			value:       dbtype.Date(time.Date(2014, 4, 26, 0, 0, 0, 0, time.UTC)),
			target:      KindLocalDate,
			expect:      NewLocalDate(2014, 4, 26),
		},
		{
			description: "local time to sql time",
			value:       NewLocalTime(17, 24, 37, 318000000),
			target:      KindSQLTime,
			expect:      pgtype.Time{Microseconds: 62677318000, Valid: true},
		},
		{
			description: "instant identity",
			value:       Instant{Seconds: 1398525877, Nanos: 318},
			target:      KindInstant,
			expect:      Instant{Seconds: 1398525877, Nanos: 318},
		},
		{
			description: "pointer to kind value",
			value:       &LocalDate{Year: 2014, Month: time.April, Day: 26},
			target:      KindNeo4jDate,
			expect:      dbtype.Date(time.Date(2014, 4, 26, 0, 0, 0, 0, time.UTC)),
		},
		{
			description: "string source uses loose parser",
			value:       "2014-04-26 17:24:37",
			target:      KindLocalDateTime,
			expect:      LocalDateTime{Date: NewLocalDate(2014, 4, 26), Time: NewLocalTime(17, 24, 37, 0)},
		},
	}
	for _, testCase := range testCases {
		actual, err := converter.Convert(testCase.value, testCase.target)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestConverter_Convert_ProtoInstant(t *testing.T) {
	converter, _ := newTestConverter(t, "UTC")
	actual, err := converter.Convert(Instant{Seconds: 1398525877, Nanos: 318}, KindProtoTimestamp)
	require.NoError(t, err)
	ts := actual.(*timestamppb.Timestamp)
	assert.EqualValues(t, 1398525877, ts.Seconds)
	assert.EqualValues(t, 318, ts.Nanos)

	back, err := converter.Convert(ts, KindInstant)
	require.NoError(t, err)
	assert.Equal(t, Instant{Seconds: 1398525877, Nanos: 318}, back)
}

func TestConverter_Convert_DST(t *testing.T) {
	converter, _ := newTestConverter(t, "Europe/Paris")
	winter, err := converter.Convert(LocalDateTime{Date: NewLocalDate(2014, 1, 15), Time: NewLocalTime(12, 0, 0, 0)}, KindOffsetDateTime)
	require.NoError(t, err)
	assert.Equal(t, 3600, winter.(OffsetDateTime).Offset())

	summer, err := converter.Convert(LocalDateTime{Date: NewLocalDate(2014, 7, 15), Time: NewLocalTime(12, 0, 0, 0)}, KindOffsetDateTime)
	require.NoError(t, err)
	assert.Equal(t, 7200, summer.(OffsetDateTime).Offset())

	xml, err := converter.Convert(NewLocalDate(2014, 7, 15), KindXMLCalendar)
	require.NoError(t, err)
	assert.Equal(t, 120, xml.(XMLCalendar).Timezone)
}

func TestConverter_Calendar_Locale(t *testing.T) {
	ctx, err := NewZoneContext(ZoneOptions{Zone: "UTC", Locale: "de_DE.UTF-8"})
	require.NoError(t, err)
	converter := New(WithZoneContext(ctx))
	actual, err := converter.Convert(NewLocalDate(2014, 4, 26), KindCalendar)
	require.NoError(t, err)
	calendar := actual.(*Calendar)
	assert.Equal(t, "de-DE", calendar.Locale().String())
	assert.Equal(t, time.Date(2014, 4, 26, 0, 0, 0, 0, time.UTC), calendar.Time())
}

type recordingObserver struct {
	sources  []Kind
	outcomes []Outcome
}

func (r *recordingObserver) Observe(source, _ Kind, outcome Outcome) {
	r.sources = append(r.sources, source)
	r.outcomes = append(r.outcomes, outcome)
}

func TestConverter_Observer(t *testing.T) {
	observer := &recordingObserver{}
	converter, _ := newTestConverter(t, "UTC", WithObserver(observer))
	_, _ = converter.Convert(NewLocalDate(2014, 4, 26), KindInstant)
	_, _ = converter.Convert(nil, KindInstant)
	_, _ = converter.Convert(NewLocalTime(1, 0, 0, 0), KindInstant)
	_, _ = converter.Convert(1, KindInstant)
	_, _ = converter.ConvertString("x", KindLocalDate, "yyyy")
	assert.Equal(t, []Outcome{OutcomeConverted, OutcomeNull, OutcomeLossy, OutcomeUnsupported, OutcomeParseFailure}, observer.outcomes)
	assert.Equal(t, []Kind{KindLocalDate, KindInvalid, KindLocalTime, KindInvalid, KindInvalid}, observer.sources)
}

func TestConverter_Convert_Pointer(t *testing.T) {
	observer := &recordingObserver{}
	converter, _ := newTestConverter(t, "UTC", WithObserver(observer))
	date := NewLocalDate(2014, 4, 26)
	actual, err := converter.Convert(&date, KindLocalDateTime)
	require.NoError(t, err)
	assert.Equal(t, LocalDateTime{Date: date, Time: NewLocalTime(0, 0, 0, 0)}, actual)

	var missing *LocalDate
	actual, err = converter.Convert(missing, KindLocalDateTime)
	require.NoError(t, err)
	assert.Nil(t, actual)
	assert.Equal(t, []Kind{KindLocalDate, KindInvalid}, observer.sources)
}

func TestTo(t *testing.T) {
	converter, _ := newTestConverter(t, "UTC")
	zoned, err := To[time.Time](converter, NewLocalDate(2014, 4, 26))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2014, 4, 26, 0, 0, 0, 0, time.UTC), zoned)

	date, err := To[LocalDate](converter, nil)
	require.NoError(t, err)
	assert.True(t, date.IsZero())

	_, err = To[int](converter, zoned)
	assert.ErrorIs(t, err, ErrUnsupportedConversion)

	sqlDate, err := Parse[pgtype.Date](converter, "26/04/2014", "dd/MM/yyyy")
	require.NoError(t, err)
	assert.Equal(t, pgtype.Date{Time: time.Date(2014, 4, 26, 0, 0, 0, 0, time.UTC), Valid: true}, sqlDate)
}

func TestConverter_Convert_TextToInstant(t *testing.T) {
	converter, _ := newTestConverter(t, "UTC")
	actual, err := converter.Convert("2014-04-26 17:24:37", KindInstant)
	require.NoError(t, err)
	assert.Equal(t, NewInstant(time.Date(2014, 4, 26, 17, 24, 37, 0, time.UTC)), actual)
}
