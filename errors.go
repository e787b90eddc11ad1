package pagedlist

import "fmt"

// ConfigError is returned by New when the controller configuration is invalid.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("pagedlist: invalid config: %s %s", e.Field, e.Reason)
}
