package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rezonia/brdoc/pkg/brdoc"
)

// collectInputs returns the documents named on the command line, or one
// document per non-blank stdin line when no arguments (or "-") are given.
func collectInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return args, nil
	}

	printVerbose("reading documents from stdin")
	inputs, err := readLines(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return inputs, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// resolveKind turns the --kind value into a brdoc.Kind. "auto" maps to
// KindUnknown, meaning detect from the digit count.
func resolveKind(value string) (brdoc.Kind, error) {
	switch strings.ToLower(value) {
	case "", "auto":
		return brdoc.KindUnknown, nil
	case "cpf":
		return brdoc.KindCPF, nil
	case "cnpj":
		return brdoc.KindCNPJ, nil
	default:
		return brdoc.KindUnknown, fmt.Errorf("unsupported document kind: %s (want cpf, cnpj or auto)", value)
	}
}

// buildDocument constructs a document of kind, detecting it when kind is unknown
func buildDocument(kind brdoc.Kind, input string) (brdoc.Document, error) {
	if kind == brdoc.KindUnknown {
		return brdoc.Parse(input)
	}
	return brdoc.New(kind, input)
}

// DocumentResult holds the outcome for a single input document
type DocumentResult struct {
	Input     string `json:"input" yaml:"input"`
	Kind      string `json:"kind" yaml:"kind"`
	Digits    string `json:"digits" yaml:"digits"`
	Length    int    `json:"length" yaml:"length"`
	Formatted string `json:"formatted,omitempty" yaml:"formatted,omitempty"`
	Valid     bool   `json:"valid" yaml:"valid"`
	Rule      string `json:"rule,omitempty" yaml:"rule,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

func inspectDocument(kind brdoc.Kind, input string) *DocumentResult {
	result := &DocumentResult{
		Input:  input,
		Kind:   string(brdoc.KindUnknown),
		Digits: brdoc.Clean(input),
	}
	result.Length = len(result.Digits)

	doc, err := buildDocument(kind, input)
	if err != nil {
		var lenErr *brdoc.InvalidDocumentError
		if errors.As(err, &lenErr) {
			result.Rule = brdoc.RuleLength
		}
		result.Error = err.Error()
		return result
	}

	result.Kind = string(doc.Kind())
	if formatted, err := doc.Formatted(); err == nil {
		result.Formatted = formatted
	}

	if err := doc.Err(); err != nil {
		var verr *brdoc.ValidationError
		if errors.As(err, &verr) {
			result.Rule = verr.Rule
			result.Error = verr.Message
		} else {
			result.Error = err.Error()
		}
		return result
	}

	result.Valid = true
	return result
}
