package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"

	// Global flags
	verbose      bool
	outputFormat string

	cfg    Config
	logger = newLogger(os.Stderr)
)

var rootCmd = &cobra.Command{
	Use:   "brdoc",
	Short: "Validate, format and generate Brazilian CPF and CNPJ numbers",
	Long: `brdoc is a CLI tool for Brazilian taxpayer documents.

Supports:
  - CPF (Cadastro de Pessoas Físicas): 11 digits, XXX.XXX.XXX-XX
  - CNPJ (Cadastro Nacional da Pessoa Jurídica): 14 digits, XX.XXX.XXX/XXXX-XX

Input may carry any separators; every non-digit character is ignored.

Examples:
  # Validate documents (kind detected from the digit count)
  brdoc validate 111.444.777-35 11.222.333/0001-81

  # Validate a list from stdin
  cat documents.txt | brdoc validate --kind cnpj

  # Generate five formatted CNPJs
  brdoc generate --kind cnpj -n 5 --formatted

  # Show details about a document
  brdoc info 11144477735`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (env: BRDOC_VERBOSE)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (table, json, csv, yaml) (env: BRDOC_FORMAT)")

	// Load from environment variables if not set via flags
	cobra.OnInitialize(initConfig)
}

func newLogger(w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "brdoc",
		Level:  hclog.Warn,
		Output: w,
	})
}

func initConfig() {
	logger = newLogger(rootCmd.ErrOrStderr())

	loaded, err := LoadConfig()
	if err != nil {
		logger.Warn("ignoring invalid environment variables", "error", err)
	}
	cfg = loaded

	flags := rootCmd.PersistentFlags()
	if !flags.Changed("format") && cfg.Format != "" {
		outputFormat = cfg.Format
	}
	if !flags.Changed("verbose") && cfg.Verbose {
		verbose = true
	}

	if verbose {
		logger.SetLevel(hclog.Debug)
	} else {
		logger.SetLevel(hclog.Warn)
	}
}

func printVerbose(msg string, args ...interface{}) {
	logger.Debug(msg, args...)
}

func checkOutputFormat() error {
	switch outputFormat {
	case "table", "json", "csv", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}
