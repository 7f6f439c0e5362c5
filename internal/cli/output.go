package cli

import (
	"github.com/francoispqt/gojay"

	"github.com/viant/dateconv"
)

// conversionOutput is the JSON form of a conversion result
type conversionOutput struct {
	Input   string
	Pattern string
	Via     string
	Kind    string
	Value   string
	Null    bool
	Lossy   bool
}

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (o *conversionOutput) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("input", o.Input)
	enc.StringKeyOmitEmpty("pattern", o.Pattern)
	enc.StringKeyOmitEmpty("via", o.Via)
	enc.StringKey("kind", o.Kind)
	if o.Null {
		enc.NullKey("value")
	} else {
		enc.StringKey("value", o.Value)
	}
	enc.BoolKey("lossy", o.Lossy)
}

// IsNil implements gojay.MarshalerJSONObject
func (o *conversionOutput) IsNil() bool { return o == nil }

type kindOutput struct {
	kind dateconv.Kind
}

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (o kindOutput) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", o.kind.String())
	enc.StringKey("family", o.kind.Family().String())
	enc.StringKey("completeness", o.kind.Completeness().String())
	enc.StringKey("type", o.kind.Type().String())
}

// IsNil implements gojay.MarshalerJSONObject
func (o kindOutput) IsNil() bool { return false }

type kindsOutput []dateconv.Kind

// MarshalJSONArray implements gojay.MarshalerJSONArray
func (o kindsOutput) MarshalJSONArray(enc *gojay.Encoder) {
	for _, kind := range o {
		enc.AddObject(kindOutput{kind: kind})
	}
}

// IsNil implements gojay.MarshalerJSONArray
func (o kindsOutput) IsNil() bool { return o == nil }
