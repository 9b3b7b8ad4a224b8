// Package config builds the application configuration from command-line
// flags, an optional TOML or YAML file and DECICALC_* environment variables,
// then validates it.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/agbru/decicalc/internal/dft"
	apperrors "github.com/agbru/decicalc/internal/errors"
	"github.com/agbru/decicalc/internal/logging"
	"github.com/agbru/decicalc/internal/multiply"
)

// EnvPrefix prefixes every environment variable read by decicalc.
const EnvPrefix = "DECICALC_"

// Default configuration values.
const (
	DefaultTimeout  = time.Minute
	DefaultAlgo     = "all"
	DefaultOrder    = "desc"
	DefaultLogLevel = "warn"
)

// ErrInvalidConfig is returned by ParseConfig once the validation message
// and the usage text have been written.
var ErrInvalidConfig = errors.New("invalid configuration")

// supportedShells lists the targets of -completion.
var supportedShells = []string{"bash", "zsh", "fish"}

// AppConfig aggregates every setting that drives a run.
type AppConfig struct {
	// A and B are the operands, in the FixedDecimal text grammar.
	A string
	B string
	// Verbose prints the full product instead of a truncated one.
	Verbose bool
	// Details adds per-algorithm timings and operand statistics.
	Details bool
	Timeout time.Duration
	// Algo is "all" or a comma separated list of registered algorithm names.
	Algo string
	// Order is the digit order ("desc" or "asc") handed to the convolution
	// multipliers.
	Order       string
	JSONOutput  bool
	NoColor     bool
	OutputFile  string
	Quiet       bool
	Interactive bool
	TUI         bool
	// Completion names the shell for which a completion script is printed.
	Completion string
	LogLevel   string
	// ConfigFile is the TOML or YAML file applied below env and flags.
	ConfigFile string
}

// ToOptions converts the configuration into multiplier options. Validate
// must have succeeded, so the order is known to parse.
func (c AppConfig) ToOptions() multiply.Options {
	order, err := dft.ParseOrder(c.Order)
	if err != nil {
		order = dft.Descending
	}
	return multiply.Options{Order: order}
}

// Algorithms expands Algo into the list of algorithm names to run.
func (c AppConfig) Algorithms(available []string) []string {
	if c.Algo == DefaultAlgo {
		return slices.Clone(available)
	}
	var names []string
	for _, name := range strings.Split(c.Algo, ",") {
		if name = strings.TrimSpace(name); name != "" && !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

// Validate checks the semantic consistency of the configuration.
// It returns a ConfigError describing the first problem found.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Algo != DefaultAlgo {
		names := c.Algorithms(availableAlgos)
		if len(names) == 0 {
			return apperrors.NewConfigError("no algorithm selected")
		}
		for _, name := range names {
			if !slices.Contains(availableAlgos, name) {
				return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]", name, strings.Join(availableAlgos, ", "))
			}
		}
	}
	if _, err := dft.ParseOrder(c.Order); err != nil {
		return apperrors.NewConfigError("unrecognized digit order: '%s'. Valid orders are: desc, asc", c.Order)
	}
	if c.Completion != "" && !slices.Contains(supportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell for completion: '%s'. Valid shells are: %s", c.Completion, strings.Join(supportedShells, ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("unrecognized log level: '%s'", c.LogLevel)
	}
	if c.TUI && c.Interactive {
		return apperrors.NewConfigError("-tui and -interactive are mutually exclusive")
	}
	return nil
}

// ParseConfig parses args into an AppConfig.
//
// Values are layered as flags > DECICALC_* environment > config file >
// defaults. Up to two positional arguments fill the operands not given
// through -a and -b. Parse and validation failures print the usage text to
// errorWriter.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Algorithms to run: 'all' or a comma separated list of [%s].", strings.Join(availableAlgos, ", "))

	config := AppConfig{}
	fs.StringVar(&config.A, "a", "", "First operand (decimal text, e.g. -12.5).")
	fs.StringVar(&config.B, "b", "", "Second operand (decimal text).")
	fs.BoolVar(&config.Verbose, "v", false, "Display the full product (can be very long).")
	fs.BoolVar(&config.Details, "d", false, "Display per-algorithm timings and operand details.")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the whole comparison.")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.StringVar(&config.Order, "order", DefaultOrder, "Digit order given to the convolution algorithms (desc, asc).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR).")
	fs.StringVar(&config.OutputFile, "output", "", "Write the product to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the product.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start the interactive REPL.")
	fs.BoolVar(&config.TUI, "tui", false, "Start the interactive dashboard.")
	fs.StringVar(&config.Completion, "completion", "", "Print a shell completion script (bash, zsh, fish).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level (debug, info, warn, error, off).")
	fs.StringVar(&config.ConfigFile, "config", "", "TOML or YAML configuration file.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	if config.ConfigFile == "" {
		config.ConfigFile = lookupEnv("CONFIG")
	}
	if config.ConfigFile != "" {
		file, err := LoadFile(config.ConfigFile)
		if err != nil {
			fmt.Fprintln(errorWriter, "Configuration error:", err)
			return AppConfig{}, err
		}
		applyFileOverrides(&config, file, fs)
	}
	applyEnvOverrides(&config, fs)

	if err := assignOperands(&config, fs.Args()); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, ErrInvalidConfig
	}

	config.Algo = strings.ToLower(strings.TrimSpace(config.Algo))
	config.Order = strings.ToLower(config.Order)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, ErrInvalidConfig
	}
	return config, nil
}

// assignOperands fills the operands missing after flags and overrides from
// the positional arguments.
func assignOperands(config *AppConfig, positional []string) error {
	for _, arg := range positional {
		switch {
		case config.A == "":
			config.A = arg
		case config.B == "":
			config.B = arg
		default:
			return apperrors.NewConfigError("unexpected argument: %q", arg)
		}
	}
	return nil
}
