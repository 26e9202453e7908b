// Package brdoc validates, formats and generates Brazilian taxpayer
// documents: CPF (individuals, 11 digits) and CNPJ (legal entities, 14 digits).
//
// Values are built from any string; every non-digit character is dropped, so
// "111.444.777-35" and "11144477735" describe the same CPF. Construction never
// fails. Length and check digit problems surface through IsValid and Err, and
// Formatted is the only operation that returns an error.
//
// Example usage:
//
//	cpf := brdoc.NewCPF("111.444.777-35")
//	if cpf.IsValid() {
//	    fmt.Println(cpf) // 111.444.777-35
//	}
//
//	cnpj := brdoc.GenerateCNPJ()
//	fmt.Println(cnpj.Digits())
package brdoc
