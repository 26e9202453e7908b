package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rezonia/brdoc/pkg/brdoc"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the library features",
	Long: `Print a short walkthrough of validation, formatting, generation and
deduplication for both CPF and CNPJ.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "CPF Examples")
	fmt.Fprintln(w, rule)
	demoCPF(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "CNPJ Examples")
	fmt.Fprintln(w, rule)
	demoCNPJ(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Demo completed successfully!")
	fmt.Fprintln(w, rule)
	return nil
}

func demoCPF(w io.Writer) {
	fmt.Fprintln(w, "\n1. Validating CPFs:")
	for _, input := range []string{"111.444.777-35", "111.444.777-36"} {
		cpf := brdoc.NewCPF(input)
		fmt.Fprintf(w, "   CPF: %s -> Valid: %t\n", cpf, cpf.IsValid())
	}

	fmt.Fprintln(w, "\n2. Formatting CPF:")
	unformatted := brdoc.NewCPF("11144477735")
	fmt.Fprintf(w, "   Input: %s\n", unformatted.Digits())
	fmt.Fprintf(w, "   Formatted: %s\n", unformatted)

	fmt.Fprintln(w, "\n3. Generating random valid CPFs:")
	for i := 0; i < 3; i++ {
		cpf := brdoc.GenerateCPF()
		fmt.Fprintf(w, "   CPF #%d: %s -> Valid: %t\n", i+1, cpf, cpf.IsValid())
	}

	fmt.Fprintln(w, "\n4. Deduplicating CPFs:")
	unique := map[string]brdoc.CPF{}
	var order []string
	for _, input := range []string{"111.444.777-35", "11144477735", "231.002.999-81"} {
		cpf := brdoc.NewCPF(input)
		if _, ok := unique[cpf.Key()]; !ok {
			order = append(order, cpf.Key())
		}
		unique[cpf.Key()] = cpf
	}
	fmt.Fprintf(w, "   Unique CPFs: %d\n", len(unique))
	for _, key := range order {
		fmt.Fprintf(w, "   - %s\n", unique[key])
	}
}

func demoCNPJ(w io.Writer) {
	fmt.Fprintln(w, "\n1. Validating CNPJs:")
	for _, input := range []string{"11.222.333/0001-81", "11.222.333/0001-82"} {
		cnpj := brdoc.NewCNPJ(input)
		fmt.Fprintf(w, "   CNPJ: %s -> Valid: %t\n", cnpj, cnpj.IsValid())
	}

	fmt.Fprintln(w, "\n2. Formatting CNPJ:")
	unformatted := brdoc.NewCNPJ("11222333000181")
	fmt.Fprintf(w, "   Input: %s\n", unformatted.Digits())
	fmt.Fprintf(w, "   Formatted: %s\n", unformatted)

	fmt.Fprintln(w, "\n3. Generating random valid CNPJs:")
	for i := 0; i < 3; i++ {
		cnpj := brdoc.GenerateCNPJ()
		fmt.Fprintf(w, "   CNPJ #%d: %s -> Valid: %t\n", i+1, cnpj, cnpj.IsValid())
	}

	fmt.Fprintln(w, "\n4. Using CNPJs as map keys:")
	companies := []struct {
		cnpj brdoc.CNPJ
		name string
	}{
		{brdoc.NewCNPJ("11.222.333/0001-81"), "Acme Corporation"},
		{brdoc.NewCNPJ("34.028.316/0001-03"), "Tech Solutions Ltd"},
	}
	byKey := make(map[string]string, len(companies))
	for _, c := range companies {
		byKey[c.cnpj.Key()] = c.name
	}
	for _, c := range companies {
		fmt.Fprintf(w, "   %s: %s\n", c.cnpj, byKey[c.cnpj.Key()])
	}
}
