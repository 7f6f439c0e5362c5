package pattern

import (
	"sort"
	"time"
)

// Field is a bit set of the temporal fields a layout carries
type Field uint8

const (
	FieldDate Field = 1 << iota
	FieldTime
	FieldZone
)

// Layout represents a compiled pattern
type Layout struct {
	Pattern string
	Dialect Dialect
	//Value is the Go reference layout
	Value  string
	Fields Field
}

// HasDate returns true if layout carries a year, month or day field
func (l *Layout) HasDate() bool { return l.Fields&FieldDate != 0 }

// HasTime returns true if layout carries a clock field
func (l *Layout) HasTime() bool { return l.Fields&FieldTime != 0 }

// HasZone returns true if layout carries a zone name or offset
func (l *Layout) HasZone() bool { return l.Fields&FieldZone != 0 }

// Parse parses text with the layout, text without zone information is placed in loc
func (l *Layout) Parse(text string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(l.Value, text, loc)
}

type layoutChunk struct {
	text  string
	field Field
}

// layoutChunks lists Go layout elements, longest first so that 2006 wins over 2 and 15 over 1
var layoutChunks = func() []layoutChunk {
	chunks := []layoutChunk{
		{"January", FieldDate}, {"Jan", FieldDate}, {"Monday", 0}, {"Mon", 0},
		{"2006", FieldDate}, {"002", FieldDate}, {"__2", FieldDate}, {"_2", FieldDate},
		{"01", FieldDate}, {"02", FieldDate}, {"06", FieldDate},
		{"03", FieldTime}, {"04", FieldTime}, {"05", FieldTime}, {"15", FieldTime},
		{"PM", FieldTime}, {"pm", FieldTime},
		{"MST", FieldZone},
		{"Z07:00:00", FieldZone}, {"Z070000", FieldZone}, {"Z07:00", FieldZone}, {"Z0700", FieldZone}, {"Z07", FieldZone},
		{"-07:00:00", FieldZone}, {"-070000", FieldZone}, {"-07:00", FieldZone}, {"-0700", FieldZone}, {"-07", FieldZone},
		{"1", FieldDate}, {"2", FieldDate}, {"3", FieldTime}, {"4", FieldTime}, {"5", FieldTime},
	}
	sort.SliceStable(chunks, func(i, j int) bool {
		return len(chunks[i].text) > len(chunks[j].text)
	})
	return chunks
}()

// layoutFields scans a Go layout and reports which fields it carries
func layoutFields(layout string) Field {
	var fields Field
	for i := 0; i < len(layout); {
		matched := false
		for _, chunk := range layoutChunks {
			if len(layout)-i >= len(chunk.text) && layout[i:i+len(chunk.text)] == chunk.text {
				fields |= chunk.field
				i += len(chunk.text)
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return fields
}
