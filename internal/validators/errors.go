package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingField  = errors.New("required field is missing")
	ErrInvalidField  = errors.New("field has an invalid value")
	ErrUnknownFields = errors.New("unknown fields")
	ErrTypeMismatch  = errors.New("type mismatch")

	ErrEmptyFields        = errors.New("at least one field is required")
	ErrDuplicateFieldName = errors.New("duplicate field names")
	ErrInvalidFieldType   = errors.New("invalid field type")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrEmptyUpdates       = errors.New("updates list cannot be empty")
	ErrEmptyIDs           = errors.New("IDs list cannot be empty")
)

// ValidationError is a validation failure naming the offending fields.
// errors.Is matches it against its Kind.
type ValidationError struct {
	Kind   error
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func fieldError(kind error, fields ...string) *ValidationError {
	return &ValidationError{Kind: kind, Fields: fields}
}

// FieldsOf returns the offending field names carried by err, if any.
func FieldsOf(err error) []string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Fields
	}
	return nil
}
