package pattern

import (
	"fmt"
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	quotedToken = iota
)

var quotedMatcher = parsly.NewToken(quotedToken, "' .... '", matcher.NewQuote('\'', '\\'))

// reservedWords would be read as layout elements by the Go time parser
var reservedWords = []string{"Jan", "Mon", "MST", "PM", "pm"}

// cldrToLayout translates a CLDR (java.time / ICU) pattern into a Go layout
func cldrToLayout(pattern string) (string, error) {
	builder := strings.Builder{}
	cursor := parsly.NewCursor("", []byte(pattern), 0)
	quoted := false
	for cursor.Pos < len(cursor.Input) {
		c := cursor.Input[cursor.Pos]
		switch {
		case c == '\'':
			match := cursor.MatchAny(quotedMatcher)
			if match.Code != quotedToken {
				return "", fmt.Errorf("unterminated quote at %v in pattern %q", cursor.Pos, pattern)
			}
			literal := unquote(match.Text(cursor))
			if literal == "" || quoted {
				//'' is a single quote; 'o''clock' joins two quoted runs with a quote
				literal = "'" + literal
			}
			if err := ensureLiteral(literal, pattern); err != nil {
				return "", err
			}
			builder.WriteString(literal)
			quoted = true
			continue
		case isLetter(c):
			count := 1
			for cursor.Pos+count < len(cursor.Input) && cursor.Input[cursor.Pos+count] == c {
				count++
			}
			element, err := cldrElement(c, count, builder.String())
			if err != nil {
				return "", fmt.Errorf("%w in pattern %q", err, pattern)
			}
			builder.WriteString(element)
			cursor.Pos += count
		default:
			if err := ensureLiteral(string(c), pattern); err != nil {
				return "", err
			}
			builder.WriteByte(c)
			cursor.Pos++
		}
		quoted = false
	}
	return builder.String(), nil
}

func cldrElement(letter byte, count int, preceding string) (string, error) {
	switch letter {
	case 'y', 'u':
		if count == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M', 'L':
		switch count {
		case 1:
			return "1", nil
		case 2:
			return "01", nil
		case 3:
			return "Jan", nil
		}
		return "January", nil
	case 'd':
		switch count {
		case 1:
			return "2", nil
		case 2:
			return "02", nil
		}
	case 'D':
		if count <= 3 {
			return "002", nil
		}
	case 'E':
		if count <= 3 {
			return "Mon", nil
		}
		return "Monday", nil
	case 'a':
		return "PM", nil
	case 'H', 'k':
		if count <= 2 {
			return "15", nil
		}
	case 'h', 'K':
		switch count {
		case 1:
			return "3", nil
		case 2:
			return "03", nil
		}
	case 'm':
		switch count {
		case 1:
			return "4", nil
		case 2:
			return "04", nil
		}
	case 's':
		switch count {
		case 1:
			return "5", nil
		case 2:
			return "05", nil
		}
	case 'S':
		if count > 9 {
			break
		}
		if !strings.HasSuffix(preceding, ".") && !strings.HasSuffix(preceding, ",") {
			return "", fmt.Errorf("fraction of second %q has to follow '.' or ','", strings.Repeat("S", count))
		}
		return strings.Repeat("0", count), nil
	case 'X':
		return offsetElement("Z", count)
	case 'x':
		return offsetElement("-", count)
	case 'Z':
		switch {
		case count <= 3:
			return "-0700", nil
		case count == 5:
			return "Z07:00", nil
		}
	case 'z':
		if count <= 3 {
			return "MST", nil
		}
	}
	return "", fmt.Errorf("unsupported pattern element %q", strings.Repeat(string(letter), count))
}

func offsetElement(prefix string, count int) (string, error) {
	switch count {
	case 1:
		return prefix + "07", nil
	case 2:
		return prefix + "0700", nil
	case 3:
		return prefix + "07:00", nil
	case 4:
		return prefix + "070000", nil
	case 5:
		return prefix + "07:00:00", nil
	}
	return "", fmt.Errorf("unsupported offset width %v", count)
}

func ensureLiteral(literal string, pattern string) error {
	for i := 0; i < len(literal); i++ {
		if literal[i] >= '0' && literal[i] <= '9' {
			return fmt.Errorf("digit literal %q can not be expressed as Go layout in pattern %q", literal, pattern)
		}
	}
	for _, word := range reservedWords {
		if strings.Contains(literal, word) {
			return fmt.Errorf("literal %q clashes with Go layout element %q in pattern %q", literal, word, pattern)
		}
	}
	return nil
}

func unquote(text string) string {
	text = strings.TrimPrefix(text, "'")
	return strings.TrimSuffix(text, "'")
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
