package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

func outputJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func outputYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// outputStructured writes v for the json and yaml formats. It reports
// false for formats the caller renders itself.
func outputStructured(w io.Writer, v interface{}) (bool, error) {
	switch outputFormat {
	case "json":
		return true, outputJSON(w, v)
	case "yaml":
		return true, outputYAML(w, v)
	default:
		return false, nil
	}
}

func outputResultsCSV(w io.Writer, results []*DocumentResult) {
	fmt.Fprintln(w, "input,kind,digits,length,formatted,valid,rule,error")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%s,%s,%d,%s,%t,%s,%s\n",
			escapeCSV(r.Input),
			r.Kind,
			r.Digits,
			r.Length,
			escapeCSV(r.Formatted),
			r.Valid,
			r.Rule,
			escapeCSV(r.Error),
		)
	}
}

func escapeCSV(s string) string {
	if strings.Contains(s, ",") || strings.Contains(s, "\"") || strings.Contains(s, "\n") {
		return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
	}
	return s
}
