// Package pattern compiles caller supplied date patterns into Go time layouts.
//
// Patterns are opaque to the conversion engine; the dialect decides how a pattern is
// read. CLDR patterns (yyyy-MM-dd) are the default, strftime patterns (%Y-%m-%d) are
// detected by their % directives, ISO (YYYY-MM-DD) and Go layouts have to be
// requested explicitly.
package pattern

import (
	"errors"
	"fmt"

	"github.com/ncruces/go-strftime"
)

// ErrNoFields is returned for patterns without any date, time or zone element
var ErrNoFields = errors.New("pattern carries no date or time fields")

var layouts = newLayoutCache(512)

// Compile compiles pattern in supplied dialect
func Compile(pattern string, dialect Dialect) (*Layout, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern was empty")
	}
	dialect = dialect.Resolve(pattern)
	key := cacheKey{pattern: pattern, dialect: dialect}
	if layout, ok := layouts.Get(key); ok {
		return layout, nil
	}
	value, err := toLayout(pattern, dialect)
	if err != nil {
		return nil, err
	}
	fields := layoutFields(value)
	if fields&(FieldDate|FieldTime) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoFields, pattern)
	}
	layout := &Layout{Pattern: pattern, Dialect: dialect, Value: value, Fields: fields}
	layouts.Add(key, layout)
	return layout, nil
}

func toLayout(pattern string, dialect Dialect) (string, error) {
	switch dialect {
	case DialectCLDR:
		return cldrToLayout(pattern)
	case DialectStrftime:
		layout, err := strftime.Layout(pattern)
		if err != nil {
			return "", fmt.Errorf("invalid strftime pattern %q: %w", pattern, err)
		}
		return layout, nil
	case DialectISO:
		return DateFormatToLayout(pattern), nil
	case DialectGo:
		return pattern, nil
	}
	return "", fmt.Errorf("unsupported pattern dialect: %v", dialect)
}
