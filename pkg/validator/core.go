package validator

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"strings"
)

// Violation describes a single failed constraint on a single field.
// Params always carries FIELD plus the constraint-specific parameters,
// whether or not the message template references them.
type Violation struct {
	Field   string
	Message string
	Params  map[string]any
}

func (v Violation) GetField() string {
	return v.Field
}

func (v Violation) GetMessage() string {
	return v.Message
}

// GetParams returns a copy of the named message parameters.
func (v Violation) GetParams() map[string]any {
	return maps.Clone(v.Params)
}

// Equal reports whether both violations have the same field, message and params.
// A nil and an empty params map are equal.
func (v Violation) Equal(other Violation) bool {
	if v.Field != other.Field || v.Message != other.Message {
		return false
	}
	if len(v.Params) == 0 && len(other.Params) == 0 {
		return true
	}
	return reflect.DeepEqual(v.Params, other.Params)
}

// Violations is the result list of a validation call.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns the list as an error, or nil when it is empty.
func (vs Violations) Err() error {
	if vs.IsEmpty() {
		return nil
	}
	return vs
}

func (vs Violations) Has(field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field in enumeration order.
func (vs Violations) Get(field string) []string {
	var messages []string
	for _, v := range vs {
		if v.Field == field {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Fields returns the distinct field names in first-seen order.
func (vs Violations) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Field] {
			fields = append(fields, v.Field)
			seen[v.Field] = true
		}
	}
	return fields
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// ExtractViolations extracts Violations from an error chain.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}

	return nil
}

func IsViolations(err error) bool {
	if err == nil {
		return false
	}

	var vs Violations
	return errors.As(err, &vs)
}
