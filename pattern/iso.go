package pattern

import "strings"

var isoDateFormatToLayoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"hh", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSSSSSSSS", ".000000000",
	".SSSSSS", ".000000",
	".SSS", ".000",
	".SS", ".00",
	".S", ".0",
	"-hh", "Z07",
	"Z", "Z07:00",
)

// DateFormatToLayout converts ISO 2022-07-15 date format to Go time layout
func DateFormatToLayout(dateFormat string) string {
	return isoDateFormatToLayoutReplacer.Replace(dateFormat)
}
