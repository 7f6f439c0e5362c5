package dateconv

import (
	"errors"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// conversion converts a non null value of the row kind to the column kind
type conversion func(src any, zone *ZoneContext) (any, error)

var matrix [kindCount][kindCount]conversion

func init() {
	for source := KindCalendar; source < kindCount; source++ {
		for target := KindCalendar; target < kindCount; target++ {
			if source == target {
				matrix[source][target] = identity
				continue
			}
			matrix[source][target] = compose(source, target)
		}
	}
	matrix[KindInstant][KindProtoTimestamp] = func(src any, _ *ZoneContext) (any, error) {
		instant := src.(Instant)
		return &timestamppb.Timestamp{Seconds: instant.Seconds, Nanos: instant.Nanos}, nil
	}
	matrix[KindProtoTimestamp][KindInstant] = func(src any, _ *ZoneContext) (any, error) {
		ts := src.(*timestamppb.Timestamp)
		if err := ts.CheckValid(); err != nil {
			return nil, unsupported(KindProtoTimestamp.String(), KindInstant, err.Error())
		}
		return Instant{Seconds: ts.Seconds, Nanos: ts.Nanos}, nil
	}
	matrix[KindUnixMillis][KindInstant] = func(src any, _ *ZoneContext) (any, error) {
		return NewInstant(src.(UnixMillis).Time()), nil
	}
	matrix[KindInstant][KindUnixMillis] = func(src any, _ *ZoneContext) (any, error) {
		return UnixMillis(src.(Instant).Time().UnixMilli()), nil
	}
}

func identity(src any, _ *ZoneContext) (any, error) {
	return src, nil
}

func compose(source, target Kind) conversion {
	decode := decoders[source]
	return func(src any, zone *ZoneContext) (any, error) {
		v, err := decode(src, zone)
		if err != nil {
			var conversionErr *ConversionError
			if errors.As(err, &conversionErr) && conversionErr.Target == KindInvalid {
				conversionErr.Target = target
			}
			return nil, err
		}
		return encode(v, source, target, zone)
	}
}

// encode reshapes v to target completeness and encodes it as the target kind
func encode(v value, source, target Kind, zone *ZoneContext) (any, error) {
	completeness := target.Completeness()
	reshaped, ok := v.reshape(completeness, zone)
	if !ok {
		return nil, &LossyConversion{Source: source, Target: target, Reason: lossReason(v.completeness, completeness)}
	}
	return encoders[target](reshaped, zone), nil
}
