package pattern

import (
	"fmt"
	"strings"
)

// Dialect identifies the syntax of a caller supplied date pattern
type Dialect string

const (
	//DialectAuto selects strftime for patterns with a % directive and CLDR otherwise
	DialectAuto Dialect = ""
	//DialectCLDR uses unicode date field symbols, i.e. yyyy-MM-dd'T'HH:mm:ss.SSSXXX
	DialectCLDR Dialect = "cldr"
	//DialectStrftime uses C strftime directives, i.e. %Y-%m-%d %H:%M:%S
	DialectStrftime Dialect = "strftime"
	//DialectISO uses ISO 2022-07-15 style date formats, i.e. YYYY-MM-DD hh:mm:ss
	DialectISO Dialect = "iso"
	//DialectGo uses Go reference time layouts, i.e. 2006-01-02 15:04:05
	DialectGo Dialect = "go"
)

// NewDialect returns a dialect for supplied name
func NewDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return DialectAuto, nil
	case "cldr", "java", "icu", "uts35":
		return DialectCLDR, nil
	case "strftime", "posix", "c":
		return DialectStrftime, nil
	case "iso", "iso20220715":
		return DialectISO, nil
	case "go", "golang", "layout":
		return DialectGo, nil
	}
	return DialectAuto, fmt.Errorf("unsupported pattern dialect: %q", name)
}

// Resolve returns the concrete dialect used for supplied pattern
func (d Dialect) Resolve(pattern string) Dialect {
	if d != DialectAuto {
		return d
	}
	if strings.Contains(pattern, "%") {
		return DialectStrftime
	}
	return DialectCLDR
}

func (d Dialect) String() string {
	if d == DialectAuto {
		return "auto"
	}
	return string(d)
}
