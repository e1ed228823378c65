// Package validation runs ordered field rules and aggregates their failures
// into a single field-scoped error.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Errors maps a field name to its failure messages, in rule order.
type Errors map[string][]string

// FieldError is the result of a failed rule.
type FieldError struct {
	Field   string
	Message string
}

// Rule checks one field and returns nil when it passes.
type Rule func() *FieldError

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Fields returns the failing field names in lexical order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// First returns the first message of the lexically first failing field.
func (e Errors) First() (string, string) {
	fields := e.Fields()
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], e[fields[0]][0]
}

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], ", ")))
	}
	return strings.Join(parts, "; ")
}

// Err returns e as an error, or nil when no rule failed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Collect runs every rule in order and gathers the failures.
func Collect(rules ...Rule) Errors {
	errs := Errors{}
	for _, rule := range rules {
		if failure := rule(); failure != nil {
			errs.Add(failure.Field, failure.Message)
		}
	}
	return errs
}

// Validate is Collect followed by Err.
func Validate(rules ...Rule) error {
	return Collect(rules...).Err()
}

func fail(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// Required fails when the field was not supplied.
func Required(field string, present bool) Rule {
	return func() *FieldError {
		if !present {
			return fail(field, "This field is required.")
		}
		return nil
	}
}

// MinLength counts runes, not bytes.
func MinLength(field, value string, min int, message string) Rule {
	return func() *FieldError {
		if utf8.RuneCountInString(value) < min {
			return fail(field, message)
		}
		return nil
	}
}

func MaxLength(field, value string, max int, message string) Rule {
	return func() *FieldError {
		if utf8.RuneCountInString(value) > max {
			return fail(field, message)
		}
		return nil
	}
}

// NotBefore fails when value is strictly earlier than reference.
func NotBefore(field string, value, reference time.Time, message string) Rule {
	return func() *FieldError {
		if value.Before(reference) {
			return fail(field, message)
		}
		return nil
	}
}

// Check wraps an arbitrary predicate.
func Check(field string, ok bool, message string) Rule {
	return func() *FieldError {
		if !ok {
			return fail(field, message)
		}
		return nil
	}
}
