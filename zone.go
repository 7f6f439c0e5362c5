package dateconv

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
)

// ZoneOptions represents zone context settings
type ZoneOptions struct {
	//Zone is IANA zone name, empty or Local uses the process zone
	Zone string
	//Locale is BCP 47 or POSIX locale name, empty uses the process locale
	Locale string
}

// ZoneContext represents read-only defaults used to fill in missing zone information
type ZoneContext struct {
	location *time.Location
	zoneID   string
	locale   language.Tag
	offset   int
}

// Location returns default location
func (z *ZoneContext) Location() *time.Location { return z.location }

// ZoneID returns default zone id
func (z *ZoneContext) ZoneID() string { return z.zoneID }

// Locale returns default locale
func (z *ZoneContext) Locale() language.Tag { return z.locale }

// Offset returns zone offset in seconds captured when the context was created.
// Conversions never use it, see OffsetAt
func (z *ZoneContext) Offset() int { return z.offset }

// OffsetAt returns default zone offset in seconds valid at supplied instant
func (z *ZoneContext) OffsetAt(t time.Time) int {
	_, offset := t.In(z.location).Zone()
	return offset
}

func (z *ZoneContext) String() string {
	return fmt.Sprintf("%v (%v)", z.zoneID, z.locale)
}

// NewZoneContext creates a zone context
func NewZoneContext(options ZoneOptions) (*ZoneContext, error) {
	location, zoneID, err := loadLocation(options.Zone)
	if err != nil {
		return nil, err
	}
	locale := language.AmericanEnglish
	if options.Locale != "" {
		if locale, err = parseLocale(options.Locale); err != nil {
			return nil, err
		}
	}
	_, offset := time.Now().In(location).Zone()
	return &ZoneContext{location: location, zoneID: zoneID, locale: locale, offset: offset}, nil
}

// DefaultZoneContext returns the process zone context, resolved once from time.Local and LC_ALL, LC_TIME, LANG
var DefaultZoneContext = sync.OnceValue(func() *ZoneContext {
	ctx, err := NewZoneContext(ZoneOptions{Locale: envLocale()})
	if err != nil {
		ctx, _ = NewZoneContext(ZoneOptions{})
	}
	return ctx
})

// UTC returns zone context for UTC
func UTC() *ZoneContext {
	ctx, _ := NewZoneContext(ZoneOptions{Zone: "UTC"})
	return ctx
}

func loadLocation(zone string) (*time.Location, string, error) {
	switch zone {
	case "", "Local", "local":
		zoneID := time.Local.String()
		if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" {
			zoneID = tz
		}
		return time.Local, zoneID, nil
	case "Z", "z":
		return time.UTC, "UTC", nil
	}
	location, err := time.LoadLocation(zone)
	if err != nil {
		return nil, "", fmt.Errorf("invalid zone %q: %w", zone, err)
	}
	return location, location.String(), nil
}

func envLocale() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func parseLocale(name string) (language.Tag, error) {
	name = strings.TrimSpace(name)
	if index := strings.IndexAny(name, ".@"); index != -1 {
		name = name[:index]
	}
	switch name {
	case "", "C", "POSIX":
		return language.AmericanEnglish, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", name, err)
	}
	return tag, nil
}
