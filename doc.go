// Package dateconv converts values between a closed set of date/time representations.
//
// Every supported kind converts to every other kind, including itself. Conversions are
// dispatched through a table indexed by source and target kind; each kind decodes to an
// intermediate value tagged with its temporal completeness (date, time, date-time, zoned)
// and a single policy decides how missing fields are filled:
//
//   - date-only into time-bearing kinds starts at midnight in the default zone
//   - date-time without zone into zoned kinds attaches the default zone, the offset is
//     resolved for the converted instant
//   - zoned into date-time drops the zone and keeps the wall clock of the source zone
//   - time-only into date-bearing kinds yields null with a lossy conversion warning
//
// Usage:
//
//	converter := dateconv.New(dateconv.WithZoneContext(dateconv.UTC()))
//	date, err := converter.ConvertString("2014-04-26", dateconv.KindLocalDate, "yyyy-MM-dd")
//	zoned, err := dateconv.To[time.Time](converter, date)
package dateconv
