package dateconv

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/viant/tagly/format/text"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Kind identifies a supported date/time representation
type Kind uint8

const (
	KindInvalid Kind = iota
	KindCalendar
	KindUnixMillis
	KindSQLDate
	KindSQLTimestamp
	KindSQLTime
	KindXMLCalendar
	KindInstant
	KindProtoTimestamp
	KindLocalDate
	KindLocalTime
	KindLocalDateTime
	KindZonedDateTime
	KindOffsetDateTime
	KindNeo4jDate
	KindNeo4jLocalTime
	KindNeo4jLocalDateTime
	kindCount
)

// Family groups kinds by the library style they come from
type Family uint8

const (
	FamilyCalendar Family = iota + 1
	FamilyInstant
	FamilyLocal
)

func (f Family) String() string {
	switch f {
	case FamilyCalendar:
		return "calendar"
	case FamilyInstant:
		return "instant"
	case FamilyLocal:
		return "local"
	}
	return "invalid"
}

// Completeness describes which temporal fields a kind carries
type Completeness uint8

const (
	CompletenessInvalid Completeness = iota
	DateOnly
	TimeOnly
	DateTime
	Zoned
)

// HasDate returns true if completeness carries a calendar date
func (c Completeness) HasDate() bool { return c == DateOnly || c == DateTime || c == Zoned }

// HasTime returns true if completeness carries a time of day
func (c Completeness) HasTime() bool { return c == TimeOnly || c == DateTime || c == Zoned }

// HasZone returns true if completeness carries a zone or offset
func (c Completeness) HasZone() bool { return c == Zoned }

func (c Completeness) String() string {
	switch c {
	case DateOnly:
		return "date"
	case TimeOnly:
		return "time"
	case DateTime:
		return "date-time"
	case Zoned:
		return "zoned"
	}
	return "invalid"
}

type kindInfo struct {
	name         string
	rType        reflect.Type
	family       Family
	completeness Completeness
	//absolute kinds carry an instant without a zone of their own
	absolute bool
}

var kinds = [kindCount]kindInfo{
	KindCalendar:           {name: "Calendar", rType: reflect.TypeOf((*Calendar)(nil)), family: FamilyCalendar, completeness: Zoned},
	KindUnixMillis:         {name: "UnixMillis", rType: reflect.TypeOf(UnixMillis(0)), family: FamilyCalendar, completeness: Zoned, absolute: true},
	KindSQLDate:            {name: "SQLDate", rType: reflect.TypeOf(pgtype.Date{}), family: FamilyCalendar, completeness: DateOnly},
	KindSQLTimestamp:       {name: "SQLTimestamp", rType: reflect.TypeOf(pgtype.Timestamp{}), family: FamilyCalendar, completeness: DateTime},
	KindSQLTime:            {name: "SQLTime", rType: reflect.TypeOf(pgtype.Time{}), family: FamilyCalendar, completeness: TimeOnly},
	KindXMLCalendar:        {name: "XMLCalendar", rType: reflect.TypeOf(XMLCalendar{}), family: FamilyCalendar, completeness: Zoned},
	KindInstant:            {name: "Instant", rType: reflect.TypeOf(Instant{}), family: FamilyInstant, completeness: Zoned, absolute: true},
	KindProtoTimestamp:     {name: "ProtoTimestamp", rType: reflect.TypeOf((*timestamppb.Timestamp)(nil)), family: FamilyInstant, completeness: Zoned, absolute: true},
	KindLocalDate:          {name: "LocalDate", rType: reflect.TypeOf(LocalDate{}), family: FamilyLocal, completeness: DateOnly},
	KindLocalTime:          {name: "LocalTime", rType: reflect.TypeOf(LocalTime{}), family: FamilyLocal, completeness: TimeOnly},
	KindLocalDateTime:      {name: "LocalDateTime", rType: reflect.TypeOf(LocalDateTime{}), family: FamilyLocal, completeness: DateTime},
	KindZonedDateTime:      {name: "ZonedDateTime", rType: reflect.TypeOf(time.Time{}), family: FamilyLocal, completeness: Zoned},
	KindOffsetDateTime:     {name: "OffsetDateTime", rType: reflect.TypeOf(OffsetDateTime{}), family: FamilyLocal, completeness: Zoned},
	KindNeo4jDate:          {name: "Neo4jDate", rType: reflect.TypeOf(dbtype.Date{}), family: FamilyLocal, completeness: DateOnly},
	KindNeo4jLocalTime:     {name: "Neo4jLocalTime", rType: reflect.TypeOf(dbtype.LocalTime{}), family: FamilyLocal, completeness: TimeOnly},
	KindNeo4jLocalDateTime: {name: "Neo4jLocalDateTime", rType: reflect.TypeOf(dbtype.LocalDateTime{}), family: FamilyLocal, completeness: DateTime},
}

var (
	kindsByType = map[reflect.Type]Kind{}
	kindsByName = map[string]Kind{}
	//kindsByWords is keyed by case format normalised names
	kindsByWords = map[string]Kind{}
)

// kindAliases lists names used by the java.time, joda and JDBC sides
var kindAliases = map[string]Kind{
	"Date":              KindUnixMillis,
	"UtilDate":          KindUnixMillis,
	"GregorianCalendar": KindCalendar,
	"XMLGregorian":      KindXMLCalendar,
	"Timestamp":         KindProtoTimestamp,
	"Time":              KindZonedDateTime,
	"DateTime":          KindZonedDateTime,
	"JodaDateTime":      KindZonedDateTime,
	"JodaInstant":       KindProtoTimestamp,
	"JodaLocalDate":     KindNeo4jDate,
	"JodaLocalTime":     KindNeo4jLocalTime,
	"JodaLocalDateTime": KindNeo4jLocalDateTime,
}

func init() {
	for k := KindCalendar; k < kindCount; k++ {
		kindsByType[kinds[k].rType] = k
		registerName(kinds[k].name, k)
	}
	for alias, k := range kindAliases {
		registerName(alias, k)
	}
}

func registerName(name string, k Kind) {
	kindsByName[nameKey(name)] = k
	kindsByWords[wordsKey(name)] = k
}

func nameKey(name string) string {
	return strings.NewReplacer("_", "", "-", "", " ", "", ".", "").Replace(strings.ToLower(strings.TrimSpace(name)))
}

func wordsKey(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if caseFormat := text.DetectCaseFormat(name); caseFormat.IsDefined() {
		name = caseFormat.Format(name, text.CaseFormatLowerUnderscore)
	}
	return nameKey(name)
}

// IsSupported returns true if kind is a registry member
func IsSupported(kind Kind) bool {
	return kind > KindInvalid && kind < kindCount
}

// Kinds returns all supported kinds
func Kinds() []Kind {
	result := make([]Kind, 0, kindCount-1)
	for k := KindCalendar; k < kindCount; k++ {
		result = append(result, k)
	}
	return result
}

// KindOf returns the kind of supplied value
func KindOf(value any) (Kind, bool) {
	if value == nil {
		return KindInvalid, false
	}
	return KindForType(reflect.TypeOf(value))
}

// KindForType returns the kind represented by supplied type
func KindForType(rType reflect.Type) (Kind, bool) {
	k, ok := kindsByType[rType]
	return k, ok
}

// ParseKind returns a kind for its name, any case format is accepted
func ParseKind(name string) (Kind, error) {
	if k, ok := kindsByName[nameKey(name)]; ok {
		return k, nil
	}
	if k, ok := kindsByWords[wordsKey(name)]; ok && wordsKey(name) != "" {
		return k, nil
	}
	return KindInvalid, fmt.Errorf("unknown kind: %q", name)
}

func (k Kind) String() string {
	if !IsSupported(k) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// Type returns the Go type of the kind
func (k Kind) Type() reflect.Type {
	if !IsSupported(k) {
		return nil
	}
	return kinds[k].rType
}

// Family returns kind family
func (k Kind) Family() Family {
	if !IsSupported(k) {
		return 0
	}
	return kinds[k].family
}

// Completeness returns the temporal fields the kind carries
func (k Kind) Completeness() Completeness {
	if !IsSupported(k) {
		return CompletenessInvalid
	}
	return kinds[k].completeness
}

// IsAbsolute returns true if kind carries an instant but no zone
func (k Kind) IsAbsolute() bool {
	return IsSupported(k) && kinds[k].absolute
}
