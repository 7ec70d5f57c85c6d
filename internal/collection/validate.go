package collection

import "fmt"

// Record is a validated front-matter record. It holds only declared fields,
// with canonical values: string, bool, time.Time (UTC) or []string.
type Record map[string]any

// IsDraft reports the draft flag. An absent flag means published.
func (r Record) IsDraft() bool {
	draft, _ := r["draft"].(bool)
	return draft
}

// Options tune a Validator.
type Options struct {
	// FailFast stops at the first violation instead of collecting all of them.
	FailFast bool
	// DateLayouts are extra time layouts tried after the built-in ones.
	DateLayouts []string
}

// Validator validates raw records against registered schemas.
// The zero value is ready to use and accumulates all violations.
type Validator struct {
	opts Options
}

// NewValidator creates a validator with the given options.
func NewValidator(opts Options) *Validator {
	opts.DateLayouts = append([]string(nil), opts.DateLayouts...)
	return &Validator{opts: opts}
}

var defaultValidator = &Validator{}

// Validate validates raw against the named collection's schema using the
// default options.
func Validate(name string, raw map[string]any) (Record, error) {
	return defaultValidator.Validate(name, raw)
}

// Validate validates raw against the named collection's schema.
// Unknown collections fail with *CollectionNotFoundError; invalid records fail
// with *RecordError.
func (v *Validator) Validate(name string, raw map[string]any) (Record, error) {
	schema, err := GetSchema(name)
	if err != nil {
		return nil, err
	}
	return v.ValidateSchema(schema, raw)
}

// Validate validates raw against s using the default options.
func (s *Schema) Validate(raw map[string]any) (Record, error) {
	return defaultValidator.ValidateSchema(s, raw)
}

// ValidateSchema validates raw against an already resolved schema.
// Fields are checked in declaration order; undeclared keys are ignored.
func (v *Validator) ValidateSchema(s *Schema, raw map[string]any) (Record, error) {
	if s == nil {
		return nil, fmt.Errorf("validate: nil schema")
	}

	out := make(Record, len(s.Fields))
	recErr := &RecordError{Collection: s.Name}

	for _, field := range s.Fields {
		value, present := raw[field.Name]
		if !present {
			if field.Required {
				recErr.Errors = append(recErr.Errors, &MissingFieldError{Collection: s.Name, Field: field.Name})
			}
		} else if coerced, ferr := v.coerceField(s.Name, field, value); ferr != nil {
			recErr.Errors = append(recErr.Errors, ferr)
		} else {
			out[field.Name] = coerced
		}

		if v.opts.FailFast && len(recErr.Errors) > 0 {
			break
		}
	}

	if len(recErr.Errors) > 0 {
		return nil, recErr
	}
	return out, nil
}

// coerceField converts one present value to the field's canonical kind.
func (v *Validator) coerceField(collection string, field Field, value any) (any, FieldError) {
	mismatch := func(path string, got any) FieldError {
		return &TypeMismatchError{Collection: collection, Field: path, Expected: field.Kind, Value: got}
	}

	switch field.Kind {
	case KindString:
		if s, ok := coerceString(value); ok {
			return s, nil
		}
		return nil, mismatch(field.Name, value)

	case KindBoolean:
		if b, ok := coerceBool(value); ok {
			return b, nil
		}
		return nil, mismatch(field.Name, value)

	case KindStringArray:
		list, badIndex, ok := coerceStringArray(value)
		if ok {
			return list, nil
		}
		if badIndex >= 0 {
			items := value.([]any)
			return nil, &TypeMismatchError{
				Collection: collection,
				Field:      fmt.Sprintf("%s[%d]", field.Name, badIndex),
				Expected:   KindString,
				Value:      items[badIndex],
			}
		}
		return nil, mismatch(field.Name, value)

	case KindURL:
		u, isString, ok := coerceURL(value)
		if ok {
			return u, nil
		}
		if !isString {
			return nil, mismatch(field.Name, value)
		}
		return nil, &InvalidURLError{Collection: collection, Field: field.Name, Value: value}

	case KindDate:
		t, isDateLike, ok := coerceDate(value, v.opts.DateLayouts)
		if ok {
			return t, nil
		}
		if !isDateLike {
			return nil, mismatch(field.Name, value)
		}
		return nil, &InvalidDateError{Collection: collection, Field: field.Name, Value: value}

	default:
		return nil, mismatch(field.Name, value)
	}
}
