package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/decicalc into a temporary directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}

	binName := "decicalc"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	// go test runs in test/e2e; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/decicalc")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to build decicalc: %v", err)
	}
	return binPath
}

func TestCLI_E2E(t *testing.T) {
	binPath := buildBinary(t)

	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantOut  string // case-insensitive substring
		wantCode int
	}{
		{
			name:    "Positional operands",
			args:    []string{"1.5", "12.25"},
			wantOut: "= 18.375",
		},
		{
			name:    "Negative operand after separator",
			args:    []string{"--", "-1.5", "12.25"},
			wantOut: "-18.375",
		},
		{
			name:    "Flags and single algorithm",
			args:    []string{"-a", "123456789", "-b", "987654321", "-algo", "karatsuba"},
			wantOut: "121,932,631,112,635,269",
		},
		{
			name:    "Ascending digit order",
			args:    []string{"-algo", "dft,grid", "-order", "asc", "0.5", "0.5"},
			wantOut: "0.25",
		},
		{
			name:    "Quiet mode",
			args:    []string{"-q", "2.5", "4"},
			wantOut: "10",
		},
		{
			name:    "JSON report",
			args:    []string{"-json", "-algo", "grid,schoolbook", "3", "7"},
			wantOut: `"consistent": true`,
		},
		{
			name:    "Details",
			args:    []string{"-d", "99", "99"},
			wantOut: "Detailed result analysis",
		},
		{
			name:    "Help",
			args:    []string{"--help"},
			wantOut: "usage",
		},
		{
			name:    "Version flag",
			args:    []string{"--version"},
			wantOut: "decicalc",
		},
		{
			name:    "Bash completion",
			args:    []string{"-completion", "bash"},
			wantOut: "complete -F",
		},
		{
			name:    "REPL",
			args:    []string{"-interactive"},
			stdin:   "mul 6 7\nexit\n",
			wantOut: "42",
		},
		{
			name:     "Malformed operand",
			args:     []string{"1.2.3", "4"},
			wantOut:  "Failure (Input)",
			wantCode: 5,
		},
		{
			name:     "Missing operand",
			args:     []string{"4"},
			wantOut:  "two operands are required",
			wantCode: 4,
		},
		{
			name:     "Unknown algorithm",
			args:     []string{"-algo", "abacus", "1", "2"},
			wantOut:  "Configuration error",
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			if tt.stdin != "" {
				cmd.Stdin = strings.NewReader(tt.stdin)
			}
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("command failed to run: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput:\n%s", code, tt.wantCode, outStr)
			}
			if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("output missing %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}

func TestCLI_E2E_OutputFile(t *testing.T) {
	binPath := buildBinary(t)
	outFile := filepath.Join(t.TempDir(), "nested", "product.txt")

	cmd := exec.Command(binPath, "-q", "-o", outFile, "-algo", "grid", "12.5", "8")
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("command failed: %v\n%s", err, output)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.Contains(string(data), "\n100\n") {
		t.Errorf("output file missing product:\n%s", data)
	}
}
