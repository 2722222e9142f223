// Package config resolves the lvpack run configuration.
//
// Sources, highest priority first:
//
//  1. Command-line flags
//  2. Environment variables (LVPACK_ prefix, dashes become underscores:
//     LVPACK_MAX_STATES)
//  3. Config file (--config; any format viper reads)
//  4. Defaults
//
// All values are validated on load.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvpack/codec"
	"github.com/katalvlaran/lvpack/knapsack"
)

// EnvPrefix prefixes every environment variable read by viper.
const EnvPrefix = "LVPACK"

// Keys shared by flags, env and config files.
const (
	KeyInput        = "input"
	KeyOutput       = "output"
	KeyInputFormat  = "input-format"
	KeyOutputFormat = "output-format"
	KeyVerbose      = "verbose"
	KeyQuiet        = "quiet"
	KeyMaxStates    = "max-states"
	KeyVerify       = "verify"
	KeyMetrics      = "metrics"
)

// Config is the resolved configuration of one solve run.
type Config struct {
	// Input is the problem path; empty reads standard input.
	Input string
	// Output is the solution path; empty writes standard output.
	Output string

	InputFormat  codec.Format
	OutputFormat codec.Format

	Verbose int
	Quiet   bool

	// MaxStates bounds Π(bound_d+1); see knapsack.WithMaxStates.
	MaxStates int

	// Verify re-evaluates the solution before writing it.
	Verify bool
	// Metrics dumps solver metrics to stderr after the run.
	Metrics bool
}

// NewViper returns a viper instance with defaults and env binding set up.
// Each command gets its own instance; the global viper is never used.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyMaxStates, knapsack.DefaultMaxStates)
	v.SetDefault(KeyVerbose, 0)

	return v
}

// BindFlags registers the solve flags on fs and binds them to v.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.StringP(KeyInput, "i", "", "problem file (default: standard input)")
	fs.StringP(KeyOutput, "o", "", "solution file (default: standard output)")
	fs.String(KeyInputFormat, "", "problem format: toml, yaml or json (default: by extension, else toml)")
	fs.String(KeyOutputFormat, "", "solution format: toml, yaml or json (default: by extension, else input format)")
	fs.CountP(KeyVerbose, "v", "raise log verbosity (repeatable)")
	fs.BoolP(KeyQuiet, "q", false, "disable logging")
	fs.Int(KeyMaxStates, knapsack.DefaultMaxStates, "largest accepted state space, the product of (bound+1)")
	fs.Bool(KeyVerify, false, "re-evaluate the solution with exact arithmetic before writing it")
	fs.Bool(KeyMetrics, false, "write solver metrics to stderr")

	return v.BindPFlags(fs)
}

// Load reads an optional config file into v and resolves a Config.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	inFmt, err := codec.ParseFormat(v.GetString(KeyInputFormat))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyInputFormat, err)
	}
	outFmt, err := codec.ParseFormat(v.GetString(KeyOutputFormat))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyOutputFormat, err)
	}

	cfg := Config{
		Input:        v.GetString(KeyInput),
		Output:       v.GetString(KeyOutput),
		InputFormat:  inFmt,
		OutputFormat: outFmt,
		Verbose:      v.GetInt(KeyVerbose),
		Quiet:        v.GetBool(KeyQuiet),
		MaxStates:    v.GetInt(KeyMaxStates),
		Verify:       v.GetBool(KeyVerify),
		Metrics:      v.GetBool(KeyMetrics),
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.MaxStates <= 0 {
		return fmt.Errorf("config: %s must be > 0, got %d", KeyMaxStates, c.MaxStates)
	}
	if c.Verbose < 0 {
		return fmt.Errorf("config: %s must be >= 0, got %d", KeyVerbose, c.Verbose)
	}

	return nil
}
