package model

// Kind identifies a Brazilian taxpayer document type
type Kind string

const (
	KindCPF     Kind = "cpf"
	KindCNPJ    Kind = "cnpj"
	KindUnknown Kind = "unknown"
)

// Document lengths in digits
const (
	CPFLength  = 11
	CNPJLength = 14
)

// Length returns the number of digits a document of this kind carries,
// or 0 for an unknown kind.
func (k Kind) Length() int {
	switch k {
	case KindCPF:
		return CPFLength
	case KindCNPJ:
		return CNPJLength
	default:
		return 0
	}
}

// Name returns the upper-case display name (CPF, CNPJ)
func (k Kind) Name() string {
	switch k {
	case KindCPF:
		return "CPF"
	case KindCNPJ:
		return "CNPJ"
	default:
		return "document"
	}
}

// ParseKind maps a user supplied name to a Kind
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "cpf", "CPF":
		return KindCPF, true
	case "cnpj", "CNPJ":
		return KindCNPJ, true
	default:
		return KindUnknown, false
	}
}

// KindForLength detects the document kind from a digit count
func KindForLength(n int) Kind {
	switch n {
	case CPFLength:
		return KindCPF
	case CNPJLength:
		return KindCNPJ
	default:
		return KindUnknown
	}
}
