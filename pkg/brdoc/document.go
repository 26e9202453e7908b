package brdoc

import (
	"fmt"

	"github.com/rezonia/brdoc/internal/checksum"
	"github.com/rezonia/brdoc/internal/model"
)

// Document is the behavior shared by CPF and CNPJ values
type Document interface {
	// Kind returns the document type
	Kind() Kind

	// Digits returns the cleaned digits, of any length
	Digits() string

	// IsValid reports whether length, repeated digit and check digit rules all pass
	IsValid() bool

	// Err returns the first rule that fails, or nil for a valid document
	Err() error

	// Formatted inserts the kind's separators; fails on wrong length
	Formatted() (string, error)

	// String returns Formatted, or the bare digits when the length is wrong
	String() string
}

var (
	_ Document = CPF{}
	_ Document = CNPJ{}
)

// Clean returns the decimal digits of input in their original order
func Clean(input string) string {
	return checksum.Clean(input)
}

// New builds a document of the given kind from input
func New(kind Kind, input string) (Document, error) {
	switch kind {
	case KindCPF:
		return NewCPF(input), nil
	case KindCNPJ:
		return NewCNPJ(input), nil
	default:
		return nil, fmt.Errorf("unsupported document kind: %q", kind)
	}
}

// Parse detects the document kind from the number of digits in input:
// 11 digits make a CPF, 14 a CNPJ. Any other count returns an
// *InvalidDocumentError with kind KindUnknown.
func Parse(input string) (Document, error) {
	digits := checksum.Clean(input)
	switch model.KindForLength(len(digits)) {
	case KindCPF:
		return newCPF(input, digits), nil
	case KindCNPJ:
		return newCNPJ(input, digits), nil
	default:
		return nil, model.NewInvalidDocumentError(KindUnknown, len(digits))
	}
}

// Validate reports whether input is a valid CPF or CNPJ
func Validate(input string) bool {
	doc, err := Parse(input)
	return err == nil && doc.IsValid()
}

// Equal reports whether a and b are of the same kind and have the same digits
func Equal(a, b Document) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind() == b.Kind() && a.Digits() == b.Digits()
}

// Key returns a map key for d that is consistent with Equal
func Key(d Document) string {
	return string(d.Kind()) + ":" + d.Digits()
}
