package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rezonia/brdoc/pkg/brdoc"
)

// executeCommand runs the root command with fresh flag state and returns stdout
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeCommandWithStderr(t, stdin, args...)
	return out, err
}

func executeCommandWithStderr(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestValidateCommand_Valid(t *testing.T) {
	out, err := executeCommand(t, "", "validate", "111.444.777-35", "11.222.333/0001-81")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ 111.444.777-35: VALID CPF")
	assert.Contains(t, out, "✓ 11.222.333/0001-81: VALID CNPJ")
	assert.Contains(t, out, "Valid: 2/2 (100.00%)")
}

func TestValidateCommand_Invalid(t *testing.T) {
	out, err := executeCommand(t, "", "validate", "111.444.777-35", "111.444.777-36", "123")
	require.Error(t, err)
	assert.Equal(t, "validation failed for 2 of 3 documents", err.Error())

	assert.Contains(t, out, "✗ 111.444.777-36: INVALID CPF")
	assert.Contains(t, out, "✗ 123: INVALID")
	assert.Contains(t, out, "Valid: 1/3 (33.33%)")
}

func TestValidateCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "", "validate", "-f", "json", "--kind", "cnpj", "11.222.333/0001-82")
	require.Error(t, err)

	var report ValidationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 1)

	r := report.Results[0]
	assert.Equal(t, "cnpj", r.Kind)
	assert.Equal(t, "11222333000182", r.Digits)
	assert.False(t, r.Valid)
	assert.Equal(t, brdoc.RuleCheckDigit, r.Rule)
	assert.Equal(t, 0, report.Summary.Valid)
	assert.Equal(t, 1, report.Summary.Invalid)
	assert.Equal(t, "0.00%", report.Summary.ValidRate)
}

func TestValidateCommand_Stdin(t *testing.T) {
	stdin := "# customers\n111.444.777-35\n\n529.982.247-25\n"
	out, err := executeCommand(t, stdin, "validate", "--kind", "cpf")
	require.NoError(t, err)
	assert.Contains(t, out, "Valid: 2/2 (100.00%)")
}

func TestValidateCommand_KindFromEnv(t *testing.T) {
	t.Setenv("BRDOC_KIND", "cnpj")

	// an 11 digit value is a wrong-length CNPJ, not a CPF
	out, err := executeCommand(t, "", "validate", "111.444.777-35")
	require.Error(t, err)
	assert.Contains(t, out, "INVALID CNPJ")
}

func TestValidateCommand_EnvKeepsValidSettings(t *testing.T) {
	t.Setenv("BRDOC_FORMAT", "json")
	t.Setenv("BRDOC_SEED", "abc")

	out, stderr, err := executeCommandWithStderr(t, "", "validate", "11144477735")
	require.NoError(t, err)

	var report ValidationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 1)
	assert.True(t, report.Results[0].Valid)

	assert.Contains(t, stderr, "ignoring invalid environment variables")
	assert.Contains(t, stderr, "Seed")
}

func TestVerboseLogsToCommandStderr(t *testing.T) {
	out, stderr, err := executeCommandWithStderr(t, "", "validate", "-v", "111.444.777-35")
	require.NoError(t, err)

	assert.Contains(t, stderr, "validating documents")
	assert.NotContains(t, out, "validating documents")

	_, stderr, err = executeCommandWithStderr(t, "", "validate", "111.444.777-35")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestValidateCommand_YAML(t *testing.T) {
	out, err := executeCommand(t, "", "validate", "-f", "yaml", "111.444.777-35")
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	summary, ok := report["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1, summary["valid"])
	assert.Equal(t, "100.00%", summary["valid_rate"])
}

func TestValidateCommand_BadKind(t *testing.T) {
	_, err := executeCommand(t, "", "validate", "--kind", "rg", "123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported document kind")
}

func TestValidateCommand_BadFormat(t *testing.T) {
	_, err := executeCommand(t, "", "validate", "-f", "xml", "111.444.777-35")
	require.Error(t, err)
	assert.Equal(t, "unsupported output format: xml", err.Error())
}

func TestFormatCommand(t *testing.T) {
	out, err := executeCommand(t, "", "format", "11144477735")
	require.NoError(t, err)
	assert.Equal(t, "111.444.777-35\n", out)

	out, err = executeCommand(t, "", "format", "--kind", "cnpj", "11222333000181")
	require.NoError(t, err)
	assert.Equal(t, "11.222.333/0001-81\n", out)
}

func TestFormatCommand_WrongLength(t *testing.T) {
	out, err := executeCommand(t, "", "format", "--kind", "cpf", "11144477735", "123456789")
	require.Error(t, err)
	assert.Equal(t, "failed to format 1 of 2 documents", err.Error())
	assert.Contains(t, out, "111.444.777-35")
	assert.Contains(t, out, "ERROR: CPF must have 11 digits, got 9")
}

func TestGenerateCommand(t *testing.T) {
	out, err := executeCommand(t, "", "generate", "--kind", "cnpj", "-n", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Len(t, line, brdoc.CNPJLength)
		assert.True(t, brdoc.ValidateCNPJ(line), line)
	}
}

func TestGenerateCommand_FormattedSeeded(t *testing.T) {
	first, err := executeCommand(t, "", "generate", "--seed", "7", "-n", "3", "--formatted")
	require.NoError(t, err)

	second, err := executeCommand(t, "", "generate", "--seed", "7", "-n", "3", "--formatted")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for _, line := range strings.Split(strings.TrimSpace(first), "\n") {
		assert.Regexp(t, `^\d{3}\.\d{3}\.\d{3}-\d{2}$`, line)
		assert.True(t, brdoc.ValidateCPF(line))
	}
}

func TestGenerateCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "", "generate", "-f", "json", "-n", "2")
	require.NoError(t, err)

	var docs []GeneratedDocument
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)
	for _, d := range docs {
		assert.Equal(t, "cpf", d.Kind)
		assert.True(t, brdoc.ValidateCPF(d.Formatted))
	}
}

func TestGenerateCommand_Errors(t *testing.T) {
	_, err := executeCommand(t, "", "generate", "--kind", "auto")
	assert.Error(t, err)

	_, err = executeCommand(t, "", "generate", "-n", "0")
	assert.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	out, err := executeCommand(t, "", "info", "11ABC222DEF333GHI0001IJK81", "12345")
	require.NoError(t, err)

	assert.Contains(t, out, "Kind: CNPJ (legal entity)")
	assert.Contains(t, out, "Digits: 11222333000181")
	assert.Contains(t, out, "Formatted: 11.222.333/0001-81")
	assert.Contains(t, out, "Valid: yes")

	assert.Contains(t, out, "Input: 12345")
	assert.Contains(t, out, "Kind: Unknown")
	assert.Contains(t, out, "Rule: length")
}

func TestInfoCommand_CSV(t *testing.T) {
	out, err := executeCommand(t, "", "info", "-f", "csv", "000.000.000-00")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "input,kind,digits,length,formatted,valid,rule,error", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "000.000.000-00,cpf,00000000000,11,000.000.000-00,false,repeated_digits,"))
}

func TestDemoCommand(t *testing.T) {
	out, err := executeCommand(t, "", "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "CPF: 111.444.777-35 -> Valid: true")
	assert.Contains(t, out, "CPF: 111.444.777-36 -> Valid: false")
	assert.Contains(t, out, "Unique CPFs: 2")
	assert.Contains(t, out, "CNPJ: 11.222.333/0001-81 -> Valid: true")
	assert.Contains(t, out, "11.222.333/0001-81: Acme Corporation")
	assert.Contains(t, out, "Demo completed successfully!")
}

func TestEscapeCSV(t *testing.T) {
	assert.Equal(t, "plain", escapeCSV("plain"))
	assert.Equal(t, `"a,b"`, escapeCSV("a,b"))
	assert.Equal(t, `"say ""hi"""`, escapeCSV(`say "hi"`))
}
