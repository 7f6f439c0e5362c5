package dateconv

import (
	"strings"

	"github.com/viant/dateconv/pattern"
)

// ConvertString parses text with pattern into target kind, empty pattern uses the loose parser.
// KindInstant ignores a supplied pattern and parses RFC 3339 text.
func (c *Converter) ConvertString(text string, target Kind, pattern string) (any, error) {
	return c.ResolveString(text, target, pattern).Unpack()
}

// ResolveString parses text with pattern into target kind
func (c *Converter) ResolveString(text string, target Kind, pattern string) Result {
	var result Result
	if !IsSupported(target) {
		result = Result{Err: unsupported("string", target, "target kind is not registered")}
	} else {
		result = c.resolveText(text, target, pattern)
	}
	c.report(KindInvalid, target, result)
	return result
}

func (c *Converter) resolveText(text string, target Kind, layout string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{}
	}
	if target == KindInstant && layout != "" {
		c.logger.Warn("pattern ignored for instant, expecting RFC 3339 text", "target", target.String(), "pattern", layout)
		instant, err := ParseInstant(strings.TrimSpace(text))
		if err != nil {
			return Result{Err: parseFailure(target, text, layout, err)}
		}
		return Result{Value: instant}
	}
	var v value
	if layout == "" {
		ts, err := c.parser.Parse(text, c.zone.Location())
		if err != nil {
			return Result{Err: parseFailure(target, text, layout, err)}
		}
		v = zonedValue(ts)
	} else {
		parsed, err := c.parseLayout(text, layout)
		if err != nil {
			return Result{Err: parseFailure(target, text, layout, err)}
		}
		v = parsed
	}
	converted, err := encode(v, KindInvalid, target, c.zone)
	return Result{Value: converted, Err: err}
}

// parseLayout parses text with pattern, the value takes the completeness of the pattern fields
func (c *Converter) parseLayout(text, layout string) (value, error) {
	compiled, err := pattern.Compile(layout, c.dialect)
	if err != nil {
		return value{}, err
	}
	ts, err := compiled.Parse(text, c.zone.Location())
	if err != nil {
		return value{}, err
	}
	switch {
	case !compiled.HasDate():
		return timeValue(ts), nil
	case !compiled.HasTime() && !compiled.HasZone():
		return dateValue(ts), nil
	case !compiled.HasZone():
		return dateTimeValue(ts), nil
	}
	return zonedValue(ts), nil
}
