package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rezonia/brdoc/pkg/brdoc"
)

var infoCmd = &cobra.Command{
	Use:   "info [documents...]",
	Short: "Show information about documents",
	Long: `Display what brdoc sees in each input without failing on invalid ones.

Shows:
  - Detected kind (CPF, CNPJ) from the digit count
  - Cleaned digits and their count
  - Formatted form, validity and the first failed rule

Examples:
  brdoc info 111.444.777-35
  brdoc info "11ABC222DEF333GHI0001IJK81"`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(); err != nil {
		return err
	}

	inputs, err := collectInputs(cmd, args)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		return fmt.Errorf("no documents found")
	}

	results := make([]*DocumentResult, 0, len(inputs))
	for _, input := range inputs {
		results = append(results, inspectDocument(brdoc.KindUnknown, input))
	}

	w := cmd.OutOrStdout()
	handled, err := outputStructured(w, results)
	if err != nil || handled {
		return err
	}

	if outputFormat == "csv" {
		outputResultsCSV(w, results)
		return nil
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printDocumentInfo(w, r)
	}
	return nil
}

func printDocumentInfo(w io.Writer, r *DocumentResult) {
	fmt.Fprintf(w, "Input: %s\n", r.Input)
	fmt.Fprintf(w, "  Kind: %s\n", kindName(r.Kind))
	fmt.Fprintf(w, "  Digits: %s\n", r.Digits)
	fmt.Fprintf(w, "  Length: %d\n", r.Length)

	if r.Formatted != "" {
		fmt.Fprintf(w, "  Formatted: %s\n", r.Formatted)
	}

	if r.Valid {
		fmt.Fprintln(w, "  Valid: yes")
		return
	}

	fmt.Fprintln(w, "  Valid: no")
	if r.Rule != "" {
		fmt.Fprintf(w, "  Rule: %s\n", r.Rule)
	}
	fmt.Fprintf(w, "  Reason: %s\n", r.Error)
}

func kindName(kind string) string {
	switch brdoc.Kind(kind) {
	case brdoc.KindCPF:
		return "CPF (individual)"
	case brdoc.KindCNPJ:
		return "CNPJ (legal entity)"
	default:
		return "Unknown"
	}
}
