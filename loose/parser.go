// Package loose parses free-form date strings.
package loose

//go:generate mockgen -source=parser.go -destination=mocks/parser.go -package=mocks

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrEmpty is returned for blank text
var ErrEmpty = errors.New("date text was empty")

// Parser parses free-form date text, text without zone information is placed in loc
type Parser interface {
	Parse(text string, loc *time.Location) (time.Time, error)
}

// commonLayouts are tried when dateparse can not recognise the text
var commonLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.RFC822,
	time.RFC822Z,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006 3:04 PM",
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"02-Jan-2006",
	"2006/01/02",
	"20060102150405",
	"20060102",
}

type parser struct {
	layouts []string
}

// Parse parses text
func (p *parser) Parse(text string, loc *time.Location) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, ErrEmpty
	}
	if loc == nil {
		loc = time.UTC
	}
	ts, err := dateparse.ParseIn(text, loc)
	if err == nil {
		return ts, nil
	}
	for _, layout := range p.layouts {
		if ts, lErr := time.ParseInLocation(layout, text, loc); lErr == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date %q: %w", text, err)
}

// Detect returns the Go layout inferred for text
func Detect(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmpty
	}
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return "", fmt.Errorf("%q is an epoch value, not a layout", text)
	}
	layout, err := dateparse.ParseFormat(text)
	if err != nil {
		return "", fmt.Errorf("unable to detect layout of %q: %w", text, err)
	}
	return layout, nil
}

// New creates a parser, supplied layouts are tried after the built-in ones
func New(layouts ...string) Parser {
	return &parser{layouts: append(append([]string{}, commonLayouts...), layouts...)}
}
