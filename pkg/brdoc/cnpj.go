package brdoc

import (
	"fmt"

	"github.com/rezonia/brdoc/internal/checksum"
	"github.com/rezonia/brdoc/internal/model"
)

// CNPJ (Cadastro Nacional da Pessoa Jurídica) identifies a legal entity.
// Like CPF it is not comparable with ==; use Equal or Key.
type CNPJ struct {
	_      [0]func()
	raw    string
	digits string
}

// NewCNPJ builds a CNPJ from input with or without separators
func NewCNPJ(input string) CNPJ {
	return newCNPJ(input, checksum.Clean(input))
}

func newCNPJ(raw, digits string) CNPJ {
	return CNPJ{raw: raw, digits: digits}
}

// ValidateCNPJ reports whether input is a valid CNPJ
func ValidateCNPJ(input string) bool {
	return NewCNPJ(input).IsValid()
}

// Kind returns KindCNPJ
func (c CNPJ) Kind() Kind { return KindCNPJ }

// Digits returns the cleaned digits, which may have any length
func (c CNPJ) Digits() string { return c.digits }

// Raw returns the input as supplied to NewCNPJ
func (c CNPJ) Raw() string { return c.raw }

// IsValid reports whether the CNPJ has 14 digits, is not a single repeated
// digit and carries matching check digits
func (c CNPJ) IsValid() bool {
	return checksum.CNPJ.Verify(c.digits)
}

// Err returns a *ValidationError for the first failed rule, or nil
func (c CNPJ) Err() error {
	return checksum.CNPJ.Check(c.digits)
}

// Formatted returns the CNPJ as XX.XXX.XXX/XXXX-XX
func (c CNPJ) Formatted() (string, error) {
	if len(c.digits) != CNPJLength {
		return "", model.NewInvalidDocumentError(KindCNPJ, len(c.digits))
	}
	d := c.digits
	return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:], nil
}

// String returns the formatted CNPJ, or the bare digits when the length is wrong
func (c CNPJ) String() string {
	if len(c.digits) != CNPJLength {
		return c.digits
	}
	s, _ := c.Formatted()
	return s
}

// GoString shows the input as supplied, e.g. CNPJ("XX.XXX.XXX/XXXX-XX")
func (c CNPJ) GoString() string {
	return fmt.Sprintf("CNPJ(%q)", c.raw)
}

// Equal reports whether both values have the same digits
func (c CNPJ) Equal(other CNPJ) bool {
	return c.digits == other.digits
}

// Key returns the digits, for use as a map key consistent with Equal
func (c CNPJ) Key() string { return c.digits }

// MarshalText encodes the CNPJ as its digits
func (c CNPJ) MarshalText() ([]byte, error) {
	return []byte(c.digits), nil
}

// UnmarshalText accepts any input NewCNPJ accepts; validity is not enforced
func (c *CNPJ) UnmarshalText(text []byte) error {
	*c = NewCNPJ(string(text))
	return nil
}
