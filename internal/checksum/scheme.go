// Package checksum implements the mod-11 check digit scheme shared by CPF
// and CNPJ. A Scheme carries the per-kind constants; the algorithm itself
// is the same for both.
package checksum

import (
	"fmt"

	"github.com/rezonia/brdoc/internal/model"
)

// DigitRule maps a weighted sum to a check digit
type DigitRule func(sum int) int

// Scheme describes how check digits are computed for one document kind
type Scheme struct {
	Kind    model.Kind
	Length  int
	Weights [][]int
	Rule    DigitRule
}

// CPF check digits: weights 10..2 then 11..2, digit = (sum*10) mod 11 with 10 -> 0.
var CPF = Scheme{
	Kind:   model.KindCPF,
	Length: model.CPFLength,
	Weights: [][]int{
		{10, 9, 8, 7, 6, 5, 4, 3, 2},
		{11, 10, 9, 8, 7, 6, 5, 4, 3, 2},
	},
	Rule: cpfDigit,
}

// CNPJ check digits: digit = 0 when sum mod 11 < 2, else 11 - (sum mod 11).
var CNPJ = Scheme{
	Kind:   model.KindCNPJ,
	Length: model.CNPJLength,
	Weights: [][]int{
		{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
		{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
	},
	Rule: cnpjDigit,
}

func cpfDigit(sum int) int {
	r := (sum * 10) % 11
	if r == 10 {
		return 0
	}
	return r
}

func cnpjDigit(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

// ForKind returns the scheme for kind
func ForKind(kind model.Kind) (Scheme, bool) {
	switch kind {
	case model.KindCPF:
		return CPF, true
	case model.KindCNPJ:
		return CNPJ, true
	default:
		return Scheme{}, false
	}
}

// PayloadLength is the number of digits preceding the check digits
func (s Scheme) PayloadLength() int {
	return s.Length - len(s.Weights)
}

// CheckDigits computes the check digits for payload. Each digit is computed
// over the payload plus the check digits already produced. It panics if
// payload does not have PayloadLength digits.
func (s Scheme) CheckDigits(payload []int) []int {
	if len(payload) != s.PayloadLength() {
		panic(fmt.Sprintf("checksum: %s payload must have %d digits, got %d",
			s.Kind.Name(), s.PayloadLength(), len(payload)))
	}

	digits := make([]int, len(payload), s.Length)
	copy(digits, payload)

	checks := make([]int, 0, len(s.Weights))
	for _, weights := range s.Weights {
		sum := 0
		for i, w := range weights {
			sum += digits[i] * w
		}
		d := s.Rule(sum)
		checks = append(checks, d)
		digits = append(digits, d)
	}
	return checks
}

// Complete appends the check digits to payload and returns the full digit string
func (s Scheme) Complete(payload []int) string {
	buf := make([]byte, 0, s.Length)
	for _, d := range payload {
		buf = append(buf, byte('0'+d))
	}
	for _, d := range s.CheckDigits(payload) {
		buf = append(buf, byte('0'+d))
	}
	return string(buf)
}

// Check validates an already cleaned digit string. Checks run in order and
// stop at the first failure: length, repeated digits, check digits.
func (s Scheme) Check(digits string) error {
	field := string(s.Kind)

	if len(digits) != s.Length {
		return model.NewValidationError(field, digits, model.RuleLength,
			fmt.Sprintf("%s must have %d digits, got %d", s.Kind.Name(), s.Length, len(digits)))
	}

	if !IsDigits(digits) {
		return model.NewValidationError(field, digits, model.RuleDigits,
			fmt.Sprintf("%s must contain only digits", s.Kind.Name()))
	}

	if Repeated(digits) {
		return model.NewValidationError(field, digits, model.RuleRepeated,
			fmt.Sprintf("%s cannot be a single repeated digit", s.Kind.Name()))
	}

	payload := make([]int, s.PayloadLength())
	for i := range payload {
		payload[i] = int(digits[i] - '0')
	}

	for i, want := range s.CheckDigits(payload) {
		pos := len(payload) + i
		if int(digits[pos]-'0') != want {
			return model.NewValidationError(field, digits, model.RuleCheckDigit,
				fmt.Sprintf("check digit %d mismatch: expected %d, got %c", i+1, want, digits[pos]))
		}
	}

	return nil
}

// Verify reports whether digits passes Check
func (s Scheme) Verify(digits string) bool {
	return s.Check(digits) == nil
}
