package model

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. Every InvalidDocumentError matches
// ErrInvalidDocument; CPF and CNPJ errors also match their own sentinel.
var (
	ErrInvalidDocument = errors.New("invalid document")
	ErrInvalidCPF      = fmt.Errorf("%w: cpf", ErrInvalidDocument)
	ErrInvalidCNPJ     = fmt.Errorf("%w: cnpj", ErrInvalidDocument)
)

// InvalidDocumentError is returned when a document's digit count does not
// match its kind.
type InvalidDocumentError struct {
	Kind     Kind
	Expected int
	Actual   int
}

func (e *InvalidDocumentError) Error() string {
	if e.Kind == KindUnknown {
		return fmt.Sprintf("document must have %d or %d digits, got %d", CPFLength, CNPJLength, e.Actual)
	}
	return fmt.Sprintf("%s must have %d digits, got %d", e.Kind.Name(), e.Expected, e.Actual)
}

// Is reports whether target is one of the sentinels this error refines
func (e *InvalidDocumentError) Is(target error) bool {
	switch target {
	case ErrInvalidDocument:
		return true
	case ErrInvalidCPF:
		return e.Kind == KindCPF
	case ErrInvalidCNPJ:
		return e.Kind == KindCNPJ
	}
	return false
}

// NewInvalidDocumentError creates a new length error for kind
func NewInvalidDocumentError(kind Kind, actual int) *InvalidDocumentError {
	return &InvalidDocumentError{
		Kind:     kind,
		Expected: kind.Length(),
		Actual:   actual,
	}
}

// Validation rules reported by ValidationError
const (
	RuleLength     = "length"
	RuleDigits     = "digits"
	RuleRepeated   = "repeated_digits"
	RuleCheckDigit = "check_digit"
)

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// Is makes every ValidationError match ErrInvalidDocument
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}
