package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/decicalc/internal/dft"
	apperrors "github.com/agbru/decicalc/internal/errors"
)

var algos = []string{"dft", "govalues", "grid", "karatsuba", "schoolbook"}

func TestParseConfigDefaults(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := ParseConfig("decicalc", []string{"-a", "12", "-b", "3.5"}, &stderr, algos)
	if err != nil {
		t.Fatalf("ParseConfig error: %v (%s)", err, stderr.String())
	}
	if cfg.A != "12" || cfg.B != "3.5" {
		t.Errorf("operands = %q, %q", cfg.A, cfg.B)
	}
	if cfg.Timeout != DefaultTimeout || cfg.Algo != DefaultAlgo || cfg.Order != DefaultOrder || cfg.LogLevel != DefaultLogLevel {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if got := cfg.ToOptions().Order; got != dft.Descending {
		t.Errorf("ToOptions().Order = %v", got)
	}
}

func TestParseConfigPositionalOperands(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		wantA string
		wantB string
	}{
		{"both positional", []string{"7", "8"}, "7", "8"},
		{"after separator", []string{"-q", "--", "-1.5", "2"}, "-1.5", "2"},
		{"mixed", []string{"-a", "4", "9"}, "4", "9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig("decicalc", tt.args, &bytes.Buffer{}, algos)
			if err != nil {
				t.Fatalf("ParseConfig error: %v", err)
			}
			if cfg.A != tt.wantA || cfg.B != tt.wantB {
				t.Errorf("operands = %q, %q; want %q, %q", cfg.A, cfg.B, tt.wantA, tt.wantB)
			}
		})
	}
}

func TestParseConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown algorithm", []string{"-algo", "toom"}},
		{"unknown algorithm in list", []string{"-algo", "grid,toom"}},
		{"empty list", []string{"-algo", ","}},
		{"zero timeout", []string{"-timeout", "0s"}},
		{"bad order", []string{"-order", "sideways"}},
		{"bad shell", []string{"-completion", "powershell"}},
		{"bad level", []string{"-log-level", "loud"}},
		{"tui and repl", []string{"-tui", "-interactive"}},
		{"three operands", []string{"1", "2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			_, err := ParseConfig("decicalc", tt.args, &stderr, algos)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(stderr.String(), "Configuration error") {
				t.Errorf("missing diagnostic in %q", stderr.String())
			}
		})
	}
}

func TestParseConfigUnknownFlag(t *testing.T) {
	var stderr bytes.Buffer
	if _, err := ParseConfig("decicalc", []string{"-nope"}, &stderr, algos); err == nil {
		t.Fatal("expected a flag parse error")
	}
}

func TestAlgorithms(t *testing.T) {
	t.Parallel()
	cfg := AppConfig{Algo: "all"}
	if got := cfg.Algorithms(algos); len(got) != len(algos) {
		t.Errorf("all expanded to %v", got)
	}
	cfg.Algo = "grid, dft,grid"
	got := cfg.Algorithms(algos)
	if strings.Join(got, ",") != "grid,dft" {
		t.Errorf("Algorithms() = %v", got)
	}
}

func TestValidateReturnsConfigError(t *testing.T) {
	t.Parallel()
	cfg := AppConfig{Timeout: time.Second, Algo: "all", Order: "asc", LogLevel: "debug", Completion: "tcsh"}
	err := cfg.Validate(algos)
	var ce apperrors.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
	cfg.Completion = "fish"
	if err := cfg.Validate(algos); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	if cfg.ToOptions().Order != dft.Ascending {
		t.Errorf("asc order not carried into options")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"ALGO", "grid")
	t.Setenv(EnvPrefix+"TIMEOUT", "5s")
	t.Setenv(EnvPrefix+"QUIET", "yes")
	t.Setenv(EnvPrefix+"A", "11")
	t.Setenv(EnvPrefix+"ORDER", "asc")

	cfg, err := ParseConfig("decicalc", []string{"-algo", "dft", "-b", "2"}, &bytes.Buffer{}, algos)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Algo != "dft" {
		t.Errorf("flag should win over env, got algo %q", cfg.Algo)
	}
	if cfg.Timeout != 5*time.Second || !cfg.Quiet || cfg.A != "11" || cfg.Order != "asc" {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"TRUE", false, true},
		{"1", false, true},
		{"no", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v", tt.in, tt.def, got)
		}
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigFileLayering(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "decicalc.toml", "algo = \"grid\"\ntimeout = \"3s\"\nverbose = true\norder = \"asc\"\n"},
		{"yaml", "decicalc.yaml", "algo: grid\ntimeout: 3s\nverbose: true\norder: asc\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			cfg, err := ParseConfig("decicalc", []string{"-config", path, "-order", "desc", "1", "2"}, &bytes.Buffer{}, algos)
			if err != nil {
				t.Fatalf("ParseConfig error: %v", err)
			}
			if cfg.Algo != "grid" || cfg.Timeout != 3*time.Second || !cfg.Verbose {
				t.Errorf("file values not applied: %+v", cfg)
			}
			if cfg.Order != "desc" {
				t.Errorf("flag should win over file, got order %q", cfg.Order)
			}
		})
	}
}

func TestConfigFileEnvWinsOverFile(t *testing.T) {
	path := writeFile(t, "c.yml", "algo: grid\n")
	t.Setenv(EnvPrefix+"ALGO", "karatsuba")
	t.Setenv(EnvPrefix+"CONFIG", path)

	cfg, err := ParseConfig("decicalc", []string{"1", "2"}, &bytes.Buffer{}, algos)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Algo != "karatsuba" {
		t.Errorf("algo = %q, want env value", cfg.Algo)
	}
	if cfg.ConfigFile != path {
		t.Errorf("config path from env not recorded")
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unsupported extension", "c.ini", "algo=grid"},
		{"broken toml", "c.toml", "algo = "},
		{"broken yaml", "c.yaml", "algo: [grid"},
		{"bad timeout", "c.toml", "timeout = \"soon\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadFile(writeFile(t, tt.file, tt.content))
			var ce apperrors.ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want ConfigError", err)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestUsageMentionsFlags(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var stderr bytes.Buffer
	_, _ = ParseConfig("decicalc", []string{"-algo", "nope"}, &stderr, algos)
	for _, want := range []string{"-algo", "-order", "-config", EnvPrefix} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("usage lacks %q", want)
		}
	}
}
