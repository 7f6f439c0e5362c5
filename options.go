package dateconv

import (
	"log/slog"

	"github.com/viant/dateconv/loose"
	"github.com/viant/dateconv/pattern"
)

//Option represents converter option
type Option func(c *Converter)

//Options represents converter options
type Options []Option

//Apply applies options
func (o Options) Apply(c *Converter) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(c)
	}
}

// WithZoneContext sets zone context used to fill in missing zone information
func WithZoneContext(zone *ZoneContext) Option {
	return func(c *Converter) {
		c.zone = zone
	}
}

// WithLogger sets diagnostics logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithParser sets loose parser used for text without pattern
func WithParser(parser loose.Parser) Option {
	return func(c *Converter) {
		c.parser = parser
	}
}

// WithDialect sets pattern dialect
func WithDialect(dialect pattern.Dialect) Option {
	return func(c *Converter) {
		c.dialect = dialect
	}
}

// WithObserver sets conversion outcome observer
func WithObserver(observer Observer) Option {
	return func(c *Converter) {
		c.observer = observer
	}
}
