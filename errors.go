package dateconv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory defines conversion failure taxonomy
type ErrorCategory string

const (
	// CategoryUnsupportedConversion indicates a kind outside the registry or a pair without rule
	CategoryUnsupportedConversion ErrorCategory = "unsupported_conversion"

	// CategoryParseFailure indicates text that could not be parsed
	CategoryParseFailure ErrorCategory = "parse_failure"

	// CategoryLossyConversion indicates a conversion that had to drop information
	CategoryLossyConversion ErrorCategory = "lossy_conversion"
)

// Sentinel errors, matched with errors.Is
var (
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrParseFailure          = errors.New("parse failure")
	ErrLossyConversion       = errors.New("lossy conversion")
)

func (c ErrorCategory) sentinel() error {
	switch c {
	case CategoryUnsupportedConversion:
		return ErrUnsupportedConversion
	case CategoryParseFailure:
		return ErrParseFailure
	case CategoryLossyConversion:
		return ErrLossyConversion
	}
	return nil
}

// ConversionError represents a hard conversion failure
type ConversionError struct {
	Category ErrorCategory
	//Source is the source Go type name
	Source  string
	Target  Kind
	Text    string
	Pattern string
	Reason  string
	Err     error
}

// Error implements the error interface
func (e *ConversionError) Error() string {
	builder := strings.Builder{}
	builder.WriteString(string(e.Category))
	if e.Source != "" {
		builder.WriteString(": ")
		builder.WriteString(e.Source)
		builder.WriteString(" -> ")
	} else {
		builder.WriteString(": -> ")
	}
	builder.WriteString(e.Target.String())
	if e.Text != "" {
		builder.WriteString(fmt.Sprintf(", text: %q", e.Text))
	}
	if e.Pattern != "" {
		builder.WriteString(fmt.Sprintf(", pattern: %q", e.Pattern))
	}
	if e.Reason != "" {
		builder.WriteString(", ")
		builder.WriteString(e.Reason)
	}
	if e.Err != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Err.Error())
	}
	return builder.String()
}

// Unwrap supports error unwrapping
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is matches category sentinel
func (e *ConversionError) Is(target error) bool {
	return target != nil && target == e.Category.sentinel()
}

// LossyConversion represents a soft failure, the conversion result is null
type LossyConversion struct {
	Source Kind
	Target Kind
	Reason string
}

// Error implements the error interface
func (e *LossyConversion) Error() string {
	return fmt.Sprintf("%v: %v -> %v, %v", CategoryLossyConversion, sourceName(e.Source), e.Target, e.Reason)
}

// sourceName returns kind name, text sources have no kind
func sourceName(source Kind) string {
	if source == KindInvalid {
		return "string"
	}
	return source.String()
}

// Is matches ErrLossyConversion
func (e *LossyConversion) Is(target error) bool {
	return target == ErrLossyConversion
}

// CategoryOf returns error category
func CategoryOf(err error) (ErrorCategory, bool) {
	var conversionErr *ConversionError
	if errors.As(err, &conversionErr) {
		return conversionErr.Category, true
	}
	var lossy *LossyConversion
	if errors.As(err, &lossy) {
		return CategoryLossyConversion, true
	}
	return "", false
}

func unsupported(source string, target Kind, reason string) error {
	return &ConversionError{Category: CategoryUnsupportedConversion, Source: source, Target: target, Reason: reason}
}

func parseFailure(target Kind, text, pattern string, err error) error {
	return &ConversionError{Category: CategoryParseFailure, Source: "string", Target: target, Text: text, Pattern: pattern, Err: err}
}
