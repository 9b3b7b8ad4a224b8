package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/decicalc/internal/errors"
)

// FileConfig is the on-disk configuration. Unset keys stay nil and leave
// the corresponding setting alone.
type FileConfig struct {
	Algo     *string `toml:"algo" yaml:"algo"`
	Order    *string `toml:"order" yaml:"order"`
	Timeout  *string `toml:"timeout" yaml:"timeout"`
	LogLevel *string `toml:"log_level" yaml:"log_level"`
	Output   *string `toml:"output" yaml:"output"`
	Verbose  *bool   `toml:"verbose" yaml:"verbose"`
	Details  *bool   `toml:"details" yaml:"details"`
	Quiet    *bool   `toml:"quiet" yaml:"quiet"`
	JSON     *bool   `toml:"json" yaml:"json"`
	NoColor  *bool   `toml:"no_color" yaml:"no_color"`
}

// LoadFile reads a configuration file, picking the decoder from the
// extension (.toml, .yaml or .yml).
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return fc, apperrors.NewConfigError("failed to read config file %s: %v", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return fc, apperrors.NewConfigError("unsupported config file format: %q", ext)
	}
	if err != nil {
		return fc, apperrors.NewConfigError("failed to parse config file %s: %v", path, err)
	}
	if fc.Timeout != nil {
		if _, err := time.ParseDuration(*fc.Timeout); err != nil {
			return fc, apperrors.NewConfigError("invalid timeout %q in %s", *fc.Timeout, path)
		}
	}
	return fc, nil
}

type fileOverride struct {
	flags []string
	apply func(*AppConfig, FileConfig)
}

var fileOverrides = []fileOverride{
	{[]string{"algo"}, func(c *AppConfig, f FileConfig) { setString(&c.Algo, f.Algo) }},
	{[]string{"order"}, func(c *AppConfig, f FileConfig) { setString(&c.Order, f.Order) }},
	{[]string{"log-level"}, func(c *AppConfig, f FileConfig) { setString(&c.LogLevel, f.LogLevel) }},
	{[]string{"output", "o"}, func(c *AppConfig, f FileConfig) { setString(&c.OutputFile, f.Output) }},
	{[]string{"timeout"}, func(c *AppConfig, f FileConfig) {
		if f.Timeout != nil {
			// LoadFile already validated the duration.
			c.Timeout, _ = time.ParseDuration(*f.Timeout)
		}
	}},
	{[]string{"v"}, func(c *AppConfig, f FileConfig) { setBool(&c.Verbose, f.Verbose) }},
	{[]string{"d", "details"}, func(c *AppConfig, f FileConfig) { setBool(&c.Details, f.Details) }},
	{[]string{"quiet", "q"}, func(c *AppConfig, f FileConfig) { setBool(&c.Quiet, f.Quiet) }},
	{[]string{"json"}, func(c *AppConfig, f FileConfig) { setBool(&c.JSONOutput, f.JSON) }},
	{[]string{"no-color"}, func(c *AppConfig, f FileConfig) { setBool(&c.NoColor, f.NoColor) }},
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// applyFileOverrides copies file values into config for flags that were
// not given explicitly.
func applyFileOverrides(config *AppConfig, file FileConfig, fs *flag.FlagSet) {
	for _, o := range fileOverrides {
		if !isFlagSetAny(fs, o.flags...) {
			o.apply(config, file)
		}
	}
}
