package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	formatKind string
)

var formatCmd = &cobra.Command{
	Use:   "format [documents...]",
	Short: "Format CPF and CNPJ numbers with separators",
	Long: `Print documents with their standard separators.

  CPF:  XXX.XXX.XXX-XX
  CNPJ: XX.XXX.XXX/XXXX-XX

Formatting only needs the right number of digits; check digits are not
verified. Use validate for that.

Examples:
  brdoc format 11144477735
  brdoc format --kind cnpj 11222333000181`,
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringVarP(&formatKind, "kind", "k", "auto", "Document kind (cpf, cnpj, auto) (env: BRDOC_KIND)")
}

// FormatResult holds the formatted form of a single input
type FormatResult struct {
	Input     string `json:"input" yaml:"input"`
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Formatted string `json:"formatted,omitempty" yaml:"formatted,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

func runFormat(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(); err != nil {
		return err
	}

	if !cmd.Flags().Changed("kind") {
		formatKind = cfg.Kind
	}
	kind, err := resolveKind(formatKind)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(cmd, args)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		return fmt.Errorf("no documents to format")
	}

	results := make([]*FormatResult, 0, len(inputs))
	failed := 0
	for _, input := range inputs {
		result := &FormatResult{Input: input}
		results = append(results, result)

		doc, err := buildDocument(kind, input)
		if err == nil {
			result.Kind = string(doc.Kind())
			result.Formatted, err = doc.Formatted()
		}
		if err != nil {
			printVerbose("cannot format document", "input", input, "error", err)
			result.Error = err.Error()
			failed++
		}
	}

	w := cmd.OutOrStdout()
	handled, err := outputStructured(w, results)
	if err != nil {
		return err
	}
	if !handled {
		switch outputFormat {
		case "csv":
			fmt.Fprintln(w, "input,kind,formatted,error")
			for _, r := range results {
				fmt.Fprintf(w, "%s,%s,%s,%s\n", escapeCSV(r.Input), r.Kind, r.Formatted, escapeCSV(r.Error))
			}
		default:
			if err := outputFormatTable(w, results); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to format %d of %d documents", failed, len(results))
	}
	return nil
}

func outputFormatTable(w io.Writer, results []*FormatResult) error {
	if len(results) == 1 && results[0].Error == "" {
		fmt.Fprintln(w, results[0].Formatted)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tFORMATTED")
	fmt.Fprintln(tw, "-----\t---------")
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\tERROR: %s\n", r.Input, r.Error)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", r.Input, r.Formatted)
	}
	return tw.Flush()
}
