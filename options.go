package pagedlist

import "github.com/rs/zerolog"

const defaultName = "default"

// Option configures a Controller.
type Option func(*config)

// config holds controller configuration.
type config struct {
	name    string
	logger  zerolog.Logger
	metrics bool
}

func defaultConfig() *config {
	return &config{
		name:    defaultName,
		logger:  zerolog.Nop(),
		metrics: true,
	}
}

// WithName sets the list name used in log fields and metric labels.
// Default: "default"
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger sets the logger used for fetch lifecycle events.
// Default: zerolog.Nop()
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics enables or disables Prometheus instrumentation.
// Default: true
func WithMetrics(enabled bool) Option {
	return func(c *config) {
		c.metrics = enabled
	}
}
