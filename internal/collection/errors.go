package collection

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCollectionNotFound is matched by every *CollectionNotFoundError.
var ErrCollectionNotFound = errors.New("collection not found")

// CollectionNotFoundError reports a lookup of an unregistered collection.
// It is a configuration error, not a data error.
type CollectionNotFoundError struct {
	Name string
}

func (e *CollectionNotFoundError) Error() string {
	return fmt.Sprintf("collection not found: %q (known collections: %s)", e.Name, strings.Join(Names(), ", "))
}

// Is makes errors.Is(err, ErrCollectionNotFound) succeed.
func (e *CollectionNotFoundError) Is(target error) bool {
	return target == ErrCollectionNotFound
}

// FieldError is implemented by every per-field validation error.
type FieldError interface {
	error
	// FieldPath returns the offending field, e.g. "title" or "tags[2]".
	FieldPath() string
	// Hint suggests how to fix the front matter.
	Hint() string
}

// MissingFieldError reports a required field absent from the record.
type MissingFieldError struct {
	Collection string
	Field      string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Collection, e.Field)
}

func (e *MissingFieldError) FieldPath() string { return e.Field }

func (e *MissingFieldError) Hint() string {
	return fmt.Sprintf("Add '%s' to the front matter", e.Field)
}

// TypeMismatchError reports a present value that is not of the declared kind.
type TypeMismatchError struct {
	Collection string
	Field      string
	Expected   Kind
	Value      any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: field %q: expected %s, got %s (%s)",
		e.Collection, e.Field, e.Expected, typeName(e.Value), formatValue(e.Value))
}

func (e *TypeMismatchError) FieldPath() string { return e.Field }

func (e *TypeMismatchError) Hint() string {
	switch e.Expected {
	case KindStringArray:
		return fmt.Sprintf("Write '%s' as a list of strings, e.g. [\"a\", \"b\"]", e.Field)
	case KindString, KindURL:
		return fmt.Sprintf("Quote the value of '%s'", e.Field)
	default:
		return fmt.Sprintf("Change '%s' to be a %s", e.Field, e.Expected)
	}
}

// InvalidDateError reports a date field whose value cannot be coerced.
type InvalidDateError struct {
	Collection string
	Field      string
	Value      any
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s: field %q: invalid date %s", e.Collection, e.Field, formatValue(e.Value))
}

func (e *InvalidDateError) FieldPath() string { return e.Field }

func (e *InvalidDateError) Hint() string {
	return fmt.Sprintf("Use an ISO date for '%s', e.g. 2024-01-31 or 2024-01-31T09:00:00Z", e.Field)
}

// InvalidURLError reports a URL field that is not a well-formed absolute URL.
type InvalidURLError struct {
	Collection string
	Field      string
	Value      any
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("%s: field %q: invalid URL %s", e.Collection, e.Field, formatValue(e.Value))
}

func (e *InvalidURLError) FieldPath() string { return e.Field }

func (e *InvalidURLError) Hint() string {
	return fmt.Sprintf("Use an absolute URL for '%s', including the scheme (https://...)", e.Field)
}

// RecordError collects the violations found in one record, in schema field
// order. errors.As reaches each violation through Unwrap.
type RecordError struct {
	Collection string
	Errors     []FieldError
}

func (e *RecordError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%s: %d validation errors: %s", e.Collection, len(e.Errors), strings.Join(msgs, "; "))
}

func (e *RecordError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

// FormatFull returns a multi-line report with one block per violation.
func (e *RecordError) FormatFull() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d error(s)\n\n", e.Collection, len(e.Errors))
	e.WriteDetails(&sb, nil)
	return sb.String()
}

// WriteDetails writes one numbered block per violation to w. When label is
// non-nil it decorates the "Hint:" label, e.g. with terminal colors.
func (e *RecordError) WriteDetails(w io.Writer, label func(a ...any) string) {
	hintLabel := "Hint:"
	if label != nil {
		hintLabel = label(hintLabel)
	}
	for i, err := range e.Errors {
		fmt.Fprintf(w, "Error %d:\n", i+1)
		fmt.Fprintf(w, "  Field: %s\n", err.FieldPath())
		fmt.Fprintf(w, "  Message: %s\n", err.Error())
		if hint := err.Hint(); hint != "" {
			fmt.Fprintf(w, "  %s %s\n", hintLabel, hint)
		}
		fmt.Fprintln(w)
	}
}

// formatValue renders a raw value for error messages.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
