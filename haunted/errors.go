package haunted

import (
	"errors"
	"fmt"
)

// ErrRendererUnavailable is returned by Mount when no renderer was supplied.
var ErrRendererUnavailable = errors.New("haunted: renderer unavailable")

// ConfigurationError reports an invalid construction parameter. It is fatal
// to scene construction.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("haunted: invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}
