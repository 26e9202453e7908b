package brdoc

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/rezonia/brdoc/internal/model"
)

var (
	// IsCPF validates that a value is a valid CPF
	IsCPF = documentRule{kind: KindCPF}
	// IsCNPJ validates that a value is a valid CNPJ
	IsCNPJ = documentRule{kind: KindCNPJ}
	// IsDocument validates that a value is a valid CPF or CNPJ
	IsDocument = documentRule{kind: KindUnknown}
)

// ErrNotDocument is returned for values that are neither strings nor documents
var ErrNotDocument = validation.NewError("validation_not_document", "must be a string or a document")

// documentRule is an ozzo-validation rule. Empty values pass, so combine it
// with validation.Required when the field is mandatory.
type documentRule struct {
	kind Kind
}

func (r documentRule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	if d, ok := value.(Document); ok {
		if d.Digits() == "" {
			return nil
		}
		return r.check(d)
	}

	s, err := validation.EnsureString(value)
	if err != nil {
		return ErrNotDocument
	}

	var doc Document
	switch r.kind {
	case KindCPF:
		doc = NewCPF(s)
	case KindCNPJ:
		doc = NewCNPJ(s)
	default:
		doc, err = Parse(s)
		if err != nil {
			return validation.NewError("validation_document_length", err.Error())
		}
	}
	return r.check(doc)
}

func (r documentRule) check(d Document) error {
	if r.kind != KindUnknown && d.Kind() != r.kind {
		return validation.NewError("validation_"+string(r.kind)+"_kind",
			"must be a "+r.kind.Name()+", got "+d.Kind().Name())
	}

	err := d.Err()
	if err == nil {
		return nil
	}

	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return validation.NewError("validation_"+string(d.Kind())+"_"+verr.Rule, verr.Message)
	}
	return validation.NewError("validation_"+string(d.Kind()), err.Error())
}
