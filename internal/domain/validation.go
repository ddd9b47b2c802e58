package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries field-keyed messages for bad input. The caller is
// expected to show the messages and leave state untouched.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (v *ValidationError) Add(field, msg string) {
	v.Fields[field] = msg
}

func (v *ValidationError) Addf(field, format string, args ...any) {
	v.Fields[field] = fmt.Sprintf(format, args...)
}

// OrNil returns the error if any field failed, otherwise nil.
func (v *ValidationError) OrNil() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
