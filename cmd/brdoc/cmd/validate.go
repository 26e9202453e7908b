package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rezonia/brdoc/internal/decimal"
)

var (
	validateKind string
)

var validateCmd = &cobra.Command{
	Use:   "validate [documents...]",
	Short: "Validate CPF and CNPJ numbers",
	Long: `Validate one or more CPF or CNPJ numbers.

Checks performed, in order:
  - Digit count (11 for CPF, 14 for CNPJ)
  - Not a single repeated digit (e.g. 000.000.000-00)
  - Both check digits

Reads one document per line from stdin when no arguments are given.

Examples:
  brdoc validate 111.444.777-35
  brdoc validate --kind cnpj 11.222.333/0001-81 11.222.333/0001-82
  brdoc validate -f json < documents.txt`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "auto", "Document kind (cpf, cnpj, auto) (env: BRDOC_KIND)")
}

// ValidationReport is the structured output of the validate command
type ValidationReport struct {
	Results []*DocumentResult `json:"results" yaml:"results"`
	Summary ValidationSummary `json:"summary" yaml:"summary"`
}

// ValidationSummary aggregates a batch of results
type ValidationSummary struct {
	decimal.Tally `yaml:",inline"`
	Total         int    `json:"total" yaml:"total"`
	ValidRate     string `json:"valid_rate" yaml:"valid_rate"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(); err != nil {
		return err
	}

	if !cmd.Flags().Changed("kind") {
		validateKind = cfg.Kind
	}
	kind, err := resolveKind(validateKind)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(cmd, args)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		return fmt.Errorf("no documents to validate")
	}

	printVerbose("validating documents", "count", len(inputs), "kind", validateKind)

	report := &ValidationReport{
		Results: make([]*DocumentResult, 0, len(inputs)),
	}
	var tally decimal.Tally
	for _, input := range inputs {
		result := inspectDocument(kind, input)
		report.Results = append(report.Results, result)
		tally.Add(result.Valid)

		if !result.Valid {
			printVerbose("invalid document", "input", input, "rule", result.Rule, "error", result.Error)
		}
	}

	report.Summary = ValidationSummary{
		Tally:     tally,
		Total:     tally.Total(),
		ValidRate: decimal.FormatPercentage(tally.ValidRate()),
	}

	w := cmd.OutOrStdout()
	handled, err := outputStructured(w, report)
	if err != nil {
		return err
	}
	if !handled {
		if outputFormat == "csv" {
			outputResultsCSV(w, report.Results)
		} else {
			outputValidateTable(w, report)
		}
	}

	if tally.Invalid > 0 {
		return fmt.Errorf("validation failed for %d of %d documents", tally.Invalid, tally.Total())
	}

	return nil
}

func outputValidateTable(w io.Writer, report *ValidationReport) {
	for _, r := range report.Results {
		if r.Valid {
			fmt.Fprintf(w, "✓ %s: VALID%s\n", r.Input, kindLabel(r.Kind))
		} else {
			fmt.Fprintf(w, "✗ %s: INVALID%s\n", r.Input, kindLabel(r.Kind))
			fmt.Fprintf(w, "  - %s\n", r.Error)
		}
	}
	fmt.Fprintf(w, "\nValid: %d/%d (%s)\n", report.Summary.Valid, report.Summary.Total, report.Summary.ValidRate)
}

func kindLabel(kind string) string {
	switch kind {
	case "cpf":
		return " CPF"
	case "cnpj":
		return " CNPJ"
	default:
		return ""
	}
}
