package services

import (
	"fmt"
	"sort"
)

// ValidationError carries a field-keyed error map. No partial record is ever
// constructed when one of these is returned; handlers surface the map to the
// initiating form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: fill all required fields"
	}
	// Name the first failing field deterministically.
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed: %s: %s", keys[0], e.Fields[keys[0]])
}

func newValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
