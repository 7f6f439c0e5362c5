package dateconv

import (
	"errors"
	"log/slog"
	"reflect"

	"github.com/viant/dateconv/loose"
	"github.com/viant/dateconv/pattern"
)

// Result represents conversion outcome, a lossy conversion carries *LossyConversion error and null value
type Result struct {
	Value any
	Err   error
}

// Lossy returns true if conversion had to drop information
func (r Result) Lossy() bool { return errors.Is(r.Err, ErrLossyConversion) }

// Null returns true if result carries no value
func (r Result) Null() bool { return r.Value == nil }

// Unpack returns value and hard error, lossy conversions yield null without error
func (r Result) Unpack() (any, error) {
	if r.Lossy() {
		return nil, nil
	}
	return r.Value, r.Err
}

// Converter converts values between supported kinds, it is safe for concurrent use
type Converter struct {
	zone     *ZoneContext
	logger   *slog.Logger
	parser   loose.Parser
	dialect  pattern.Dialect
	observer Observer
}

// Zone returns converter zone context
func (c *Converter) Zone() *ZoneContext { return c.zone }

// Dialect returns converter pattern dialect
func (c *Converter) Dialect() pattern.Dialect { return c.dialect }

// Derive returns a copy of the converter with supplied options applied
func (c *Converter) Derive(opts ...Option) *Converter {
	clone := *c
	Options(opts).Apply(&clone)
	return &clone
}

// Convert converts value to target kind
func (c *Converter) Convert(value any, target Kind) (any, error) {
	return c.Resolve(value, target).Unpack()
}

// Resolve converts value to target kind
func (c *Converter) Resolve(value any, target Kind) Result {
	source, result := c.resolve(value, target)
	c.report(source, target, result)
	return result
}

// resolve returns the source kind, KindInvalid for text, nil and unregistered values, with the result
func (c *Converter) resolve(value any, target Kind) (Kind, Result) {
	source, ok := KindOf(value)
	if !ok && !isNull(value) {
		if actual, isKind := deref(value); isKind {
			value = actual
			source, ok = KindOf(actual)
		}
	}
	if !IsSupported(target) {
		return source, Result{Err: unsupported(typeName(value), target, "target kind is not registered")}
	}
	if isNull(value) {
		return source, Result{}
	}
	switch actual := value.(type) {
	case string:
		return KindInvalid, c.resolveText(actual, target, "")
	case *string:
		return KindInvalid, c.resolveText(*actual, target, "")
	}
	if !ok {
		return KindInvalid, Result{Err: unsupported(typeName(value), target, "source type is not registered")}
	}
	converted, err := matrix[source][target](value, c.zone)
	return source, Result{Value: converted, Err: err}
}

// deref returns value pointed by a pointer to a kind type
func deref(value any) (any, bool) {
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Ptr {
		return value, false
	}
	if _, ok := KindForType(rValue.Type().Elem()); !ok {
		return value, false
	}
	return rValue.Elem().Interface(), true
}

func (c *Converter) report(source, target Kind, result Result) {
	var lossy *LossyConversion
	if errors.As(result.Err, &lossy) {
		c.logger.Warn("lossy date conversion", "source", sourceName(lossy.Source), "target", lossy.Target.String(), "reason", lossy.Reason)
	}
	c.observer.Observe(source, target, outcomeOf(result))
}

// New creates a converter
func New(opts ...Option) *Converter {
	ret := &Converter{}
	Options(opts).Apply(ret)
	if ret.zone == nil {
		ret.zone = DefaultZoneContext()
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.parser == nil {
		ret.parser = loose.New()
	}
	if ret.observer == nil {
		ret.observer = nopObserver{}
	}
	return ret
}
