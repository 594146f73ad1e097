package pkg

import "fmt"

// MissingFieldError reports a required field absent from the payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// TypeMismatchError reports a field whose interchange type does not match
// the schema.
type TypeMismatchError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// InvalidDateError reports a date field that is present but not a
// well-formed calendar date in the fixed textual form.
type InvalidDateError struct {
	Field string
	Raw   string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("field %q: %q is not a valid date", e.Field, e.Raw)
}

// NegativeValueError reports a count field holding a negative number.
type NegativeValueError struct {
	Field string
	Value int64
}

func (e *NegativeValueError) Error() string {
	return fmt.Sprintf("field %q: count must not be negative, got %d", e.Field, e.Value)
}

// UnknownAttributeError reports an attr value outside the dashboard's
// vocabulary.
type UnknownAttributeError struct {
	Field string
	Raw   string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("field %q: unknown attribute %q", e.Field, e.Raw)
}
