package brdoc

import (
	"fmt"

	"github.com/rezonia/brdoc/internal/checksum"
	"github.com/rezonia/brdoc/internal/model"
)

// CPF (Cadastro de Pessoas Físicas) identifies an individual taxpayer.
//
// CPF values are immutable and not comparable with ==. Use Equal, or Key
// as a map key.
type CPF struct {
	_      [0]func()
	raw    string
	digits string
}

// NewCPF builds a CPF from input with or without separators
func NewCPF(input string) CPF {
	return newCPF(input, checksum.Clean(input))
}

func newCPF(raw, digits string) CPF {
	return CPF{raw: raw, digits: digits}
}

// ValidateCPF reports whether input is a valid CPF
func ValidateCPF(input string) bool {
	return NewCPF(input).IsValid()
}

// Kind returns KindCPF
func (c CPF) Kind() Kind { return KindCPF }

// Digits returns the cleaned digits, which may have any length
func (c CPF) Digits() string { return c.digits }

// Raw returns the input as supplied to NewCPF
func (c CPF) Raw() string { return c.raw }

// IsValid reports whether the CPF has 11 digits, is not a single repeated
// digit and carries matching check digits
func (c CPF) IsValid() bool {
	return checksum.CPF.Verify(c.digits)
}

// Err returns a *ValidationError for the first failed rule, or nil
func (c CPF) Err() error {
	return checksum.CPF.Check(c.digits)
}

// Formatted returns the CPF as XXX.XXX.XXX-XX
func (c CPF) Formatted() (string, error) {
	if len(c.digits) != CPFLength {
		return "", model.NewInvalidDocumentError(KindCPF, len(c.digits))
	}
	d := c.digits
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:], nil
}

// String returns the formatted CPF, or the bare digits when the length is wrong
func (c CPF) String() string {
	if len(c.digits) != CPFLength {
		return c.digits
	}
	s, _ := c.Formatted()
	return s
}

// GoString shows the input as supplied, e.g. CPF("XXX.XXX.XXX-XX")
func (c CPF) GoString() string {
	return fmt.Sprintf("CPF(%q)", c.raw)
}

// Equal reports whether both values have the same digits
func (c CPF) Equal(other CPF) bool {
	return c.digits == other.digits
}

// Key returns the digits, for use as a map key consistent with Equal
func (c CPF) Key() string { return c.digits }

// MarshalText encodes the CPF as its digits
func (c CPF) MarshalText() ([]byte, error) {
	return []byte(c.digits), nil
}

// UnmarshalText accepts any input NewCPF accepts; validity is not enforced
func (c *CPF) UnmarshalText(text []byte) error {
	*c = NewCPF(string(text))
	return nil
}
