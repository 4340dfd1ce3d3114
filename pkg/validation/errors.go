package validation

import (
	"errors"
	"fmt"
)

// FieldError is the structured rejection every engine stage returns for a
// bad or missing input. Downstream financial results depend on these values,
// so nothing is ever clamped or defaulted silently.
type FieldError struct {
	Stage  Level  `json:"stage"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
	Value  any    `json:"value,omitempty"`
}

func (e *FieldError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s: %s (got %v)", e.Stage, e.Field, e.Reason, e.Value)
	}
	return fmt.Sprintf("%s: %s: %s", e.Stage, e.Field, e.Reason)
}

// Errf builds a FieldError with a formatted reason.
func Errf(stage Level, field string, value any, format string, args ...any) *FieldError {
	return &FieldError{
		Stage:  stage,
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
		Value:  value,
	}
}

// AsFieldError unwraps err to a *FieldError if one is in its chain.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
