package brdoc_test

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/brdoc/pkg/brdoc"
)

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var verr validation.Error
	require.ErrorAs(t, err, &verr)
	return verr.Code()
}

func TestIsCPF(t *testing.T) {
	assert.NoError(t, validation.Validate("111.444.777-35", brdoc.IsCPF))
	assert.NoError(t, validation.Validate("", brdoc.IsCPF))
	assert.NoError(t, validation.Validate(brdoc.NewCPF("11144477735"), brdoc.IsCPF))

	err := validation.Validate("111.444.777-36", brdoc.IsCPF)
	assert.Equal(t, "validation_cpf_check_digit", errorCode(t, err))

	err = validation.Validate("00000000000", brdoc.IsCPF)
	assert.Equal(t, "validation_cpf_repeated_digits", errorCode(t, err))

	err = validation.Validate("123", brdoc.IsCPF)
	assert.Equal(t, "validation_cpf_length", errorCode(t, err))

	err = validation.Validate(brdoc.NewCNPJ("11222333000181"), brdoc.IsCPF)
	assert.Equal(t, "validation_cpf_kind", errorCode(t, err))

	err = validation.Validate(42, brdoc.IsCPF)
	assert.Equal(t, "validation_not_document", errorCode(t, err))
}

func TestIsCNPJ(t *testing.T) {
	assert.NoError(t, validation.Validate("11.222.333/0001-81", brdoc.IsCNPJ))

	err := validation.Validate("11.222.333/0001-82", brdoc.IsCNPJ)
	assert.Equal(t, "validation_cnpj_check_digit", errorCode(t, err))
}

func TestIsDocument(t *testing.T) {
	assert.NoError(t, validation.Validate("111.444.777-35", brdoc.IsDocument))
	assert.NoError(t, validation.Validate("11.222.333/0001-81", brdoc.IsDocument))

	err := validation.Validate("1234", brdoc.IsDocument)
	assert.Equal(t, "validation_document_length", errorCode(t, err))
}

func TestRulesInStruct(t *testing.T) {
	type customer struct {
		TaxID    string
		Employer *string
	}

	employer := "11.222.333/0001-81"
	c := customer{TaxID: "111.444.777-35", Employer: &employer}

	err := validation.ValidateStruct(&c,
		validation.Field(&c.TaxID, validation.Required, brdoc.IsCPF),
		validation.Field(&c.Employer, brdoc.IsCNPJ),
	)
	assert.NoError(t, err)

	c.TaxID = "111.444.777-36"
	err = validation.ValidateStruct(&c,
		validation.Field(&c.TaxID, validation.Required, brdoc.IsCPF),
	)
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "TaxID")
}

func TestRulesInStruct_DocumentPointers(t *testing.T) {
	type company struct {
		Owner  *brdoc.CPF
		Parent *brdoc.CNPJ
	}

	var c company
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Owner, brdoc.IsCPF),
		validation.Field(&c.Parent, brdoc.IsCNPJ),
	)
	assert.NoError(t, err)

	parent := brdoc.NewCNPJ("11.222.333/0001-81")
	c.Parent = &parent
	err = validation.ValidateStruct(&c,
		validation.Field(&c.Parent, brdoc.IsCNPJ),
	)
	assert.NoError(t, err)

	bad := brdoc.NewCNPJ("11.222.333/0001-82")
	c.Parent = &bad
	err = validation.ValidateStruct(&c,
		validation.Field(&c.Parent, brdoc.IsCNPJ),
	)
	require.Error(t, err)
	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Equal(t, "validation_cnpj_check_digit", errorCode(t, errs["Parent"]))
}

func TestIsCPF_NilAndZeroDocuments(t *testing.T) {
	var nilCPF *brdoc.CPF
	assert.NoError(t, validation.Validate(nilCPF, brdoc.IsCPF))
	assert.NoError(t, validation.Validate(brdoc.CPF{}, brdoc.IsCPF))
	assert.NoError(t, validation.Validate(brdoc.NewCPF("---"), brdoc.IsDocument))
}
