package brdoc

import "github.com/rezonia/brdoc/internal/model"

// Re-export core types for public API
type (
	Kind                 = model.Kind
	InvalidDocumentError = model.InvalidDocumentError
	ValidationError      = model.ValidationError
)

// Re-export document kinds
const (
	KindCPF     = model.KindCPF
	KindCNPJ    = model.KindCNPJ
	KindUnknown = model.KindUnknown
)

// Re-export lengths
const (
	CPFLength  = model.CPFLength
	CNPJLength = model.CNPJLength
)

// Re-export validation rules
const (
	RuleLength     = model.RuleLength
	RuleDigits     = model.RuleDigits
	RuleRepeated   = model.RuleRepeated
	RuleCheckDigit = model.RuleCheckDigit
)

// Re-export error sentinels
var (
	ErrInvalidDocument = model.ErrInvalidDocument
	ErrInvalidCPF      = model.ErrInvalidCPF
	ErrInvalidCNPJ     = model.ErrInvalidCNPJ
)
