// Naming: Display* functions write to an io.Writer, Format* functions
// return strings, Write* functions touch the filesystem.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/decicalc/internal/orchestration"
	"github.com/agbru/decicalc/internal/ui"
)

// OutputConfig selects how the agreed product is emitted.
type OutputConfig struct {
	OutputFile string
	Quiet      bool
	Verbose    bool
	Details    bool
}

// WriteResultToFile writes the product with a commented header to
// config.OutputFile, creating parent directories as needed.
func WriteResultToFile(result orchestration.MultiplicationResult, a, b string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	if dir := filepath.Dir(config.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Decimal Multiplication Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Algorithm: %s\n", result.Name)
	fmt.Fprintf(file, "# Duration: %s\n", result.Duration)
	fmt.Fprintf(file, "# A: %s\n", a)
	fmt.Fprintf(file, "# B: %s\n", b)
	fmt.Fprintf(file, "\n%s\n", result.Product)
	return file.Close()
}

// DisplayQuietResult prints only the product, for scripts.
func DisplayQuietResult(out io.Writer, product string) {
	fmt.Fprintln(out, product)
}

// DisplayResultWithConfig prints the product in quiet or standard form and
// saves it when an output file is configured.
func DisplayResultWithConfig(out io.Writer, result orchestration.MultiplicationResult, a, b string, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, result.Product)
	} else {
		DisplayResult(result, orchestration.PresentationOptions{A: a, B: b, Verbose: config.Verbose, Details: config.Details}, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(result, a, b, config); err != nil {
			return err
		}
		if !config.Quiet {
			t := ui.GetCurrentTheme()
			fmt.Fprintf(out, "\n%s %s\n", t.Paint(t.Success, "✓ Result saved to:"), t.Paint(t.Info, config.OutputFile))
		}
	}
	return nil
}

// JSONResult is one algorithm's entry in the JSON report.
type JSONResult struct {
	Algorithm  string  `json:"algorithm"`
	Status     string  `json:"status"`
	Product    string  `json:"product,omitempty"`
	DurationMS float64 `json:"duration_ms"`
	Error      string  `json:"error,omitempty"`
}

// JSONReport is the document printed by -json.
type JSONReport struct {
	A          string       `json:"a"`
	B          string       `json:"b"`
	Product    string       `json:"product,omitempty"`
	Consistent bool         `json:"consistent"`
	Results    []JSONResult `json:"results"`
}

// Status names the outcome of a result: success, skipped or error.
func Status(r orchestration.MultiplicationResult) string {
	switch {
	case r.OK():
		return "success"
	case r.Skipped():
		return "skipped"
	}
	return "error"
}

// BuildJSONReport converts results (sorted or not) into a JSONReport.
// Product is the first successful product when all successes agree.
func BuildJSONReport(a, b string, results []orchestration.MultiplicationResult) JSONReport {
	report := JSONReport{A: a, B: b, Results: make([]JSONResult, 0, len(results))}
	mismatch, _, _ := orchestration.Mismatch(results)
	report.Consistent = !mismatch

	for _, r := range results {
		entry := JSONResult{
			Algorithm:  r.Name,
			Status:     Status(r),
			Product:    r.Product,
			DurationMS: float64(r.Duration.Microseconds()) / 1000,
		}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		if r.OK() && report.Product == "" && report.Consistent {
			report.Product = r.Product
		}
		report.Results = append(report.Results, entry)
	}
	return report
}

// WriteJSON encodes report to out with indentation.
func WriteJSON(out io.Writer, report JSONReport) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
