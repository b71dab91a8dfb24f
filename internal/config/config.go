// Package config parses and validates the command-line configuration of
// speedwatch. Values come from flags first, then from SPEEDWATCH_* environment
// variables, then from the defaults declared here.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/speedwatch/internal/errors"
)

const (
	// EnvPrefix prefixes every environment variable read by the configuration.
	EnvPrefix = "SPEEDWATCH_"
	// DefaultTimeout bounds a whole run.
	DefaultTimeout = 10 * time.Minute
	// DefaultLogLevel keeps the log quiet unless something goes wrong.
	DefaultLogLevel = "warn"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Routine is the name of the built-in routine to time.
	Routine string
	// Sizes are the input sizes to time. Empty means the routine's defaults.
	Sizes []uint64
	// Final is the size estimates extrapolate to. Zero means the last size.
	Final uint64
	// Models are the growth model names, "all", or empty for the defaults.
	Models []string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// NoColor disables colored output.
	NoColor bool
	// LogLevel is a zerolog level name.
	LogLevel string
	// Metrics prints the collected Prometheus metrics after the run.
	Metrics bool
	// List prints the available routines and models and exits.
	List bool
	// Spinner animates a spinner during the final call.
	Spinner bool
}

// Validate checks the configuration against the available routines.
func (c AppConfig) Validate(availableRoutines []string) error {
	if c.List {
		return nil
	}
	if c.Routine == "" {
		return apperrors.NewConfigError("no routine given; use --list to see the available routines")
	}
	if !slices.Contains(availableRoutines, c.Routine) {
		return apperrors.NewConfigError("unknown routine %q (available: %s)",
			c.Routine, strings.Join(availableRoutines, ", "))
	}
	for _, s := range c.Sizes {
		if s == 0 {
			return apperrors.ValidationError{Field: "sizes", Message: "sizes must be positive"}
		}
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid log level %q", c.LogLevel)
	}
	return nil
}

// ParseConfig parses args into an AppConfig. The first positional argument
// names the routine and any further ones are sizes, unless the matching flags
// are set. flag.ErrHelp is returned unchanged when help was requested.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableRoutines []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags] <routine> [sizes...]\n\n", programName)
		fmt.Fprintf(errorWriter, "Times a routine at increasing sizes and estimates its run time on the final size.\n\n")
		fmt.Fprintf(errorWriter, "Routines: %s\n\nFlags:\n", strings.Join(availableRoutines, ", "))
		fs.PrintDefaults()
	}

	config := AppConfig{}
	var sizes sizeList
	var models stringList

	fs.StringVar(&config.Routine, "routine", "", "Routine to time.")
	fs.StringVar(&config.Routine, "r", "", "Routine to time (shorthand).")
	fs.Var(&sizes, "sizes", "Comma-separated input sizes; the last one is the final size unless --final is set.")
	fs.Var(&sizes, "s", "Input sizes (shorthand).")
	fs.Uint64Var(&config.Final, "final", 0, "Size to extrapolate to (default: the last size).")
	fs.Uint64Var(&config.Final, "f", 0, "Size to extrapolate to (shorthand).")
	fs.Var(&models, "models", "Comma-separated growth models, or 'all' (default: linear,nlog2n,square,cube,exp).")
	fs.Var(&models, "m", "Growth models (shorthand).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the whole run.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also honors NO_COLOR).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error, disabled.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print the collected metrics in Prometheus text format after the run.")
	fs.BoolVar(&config.List, "list", false, "List the available routines and models.")
	fs.BoolVar(&config.List, "l", false, "List routines and models (shorthand).")
	fs.BoolVar(&config.Spinner, "spinner", true, "Show a spinner while the final size runs.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	positional := fs.Args()
	if len(positional) > 0 && !isFlagSetAny(fs, "routine", "r") {
		if err := fs.Set("routine", positional[0]); err != nil {
			return AppConfig{}, err
		}
		positional = positional[1:]
	}
	if len(positional) > 0 {
		if isFlagSetAny(fs, "sizes", "s") {
			return AppConfig{}, apperrors.NewConfigError("sizes given both as arguments and with --sizes")
		}
		if err := fs.Set("sizes", strings.Join(positional, ",")); err != nil {
			return AppConfig{}, apperrors.NewConfigError("invalid size: %v", err)
		}
	}

	config.Sizes = sizes
	config.Models = models
	applyEnvOverrides(&config, fs)

	if err := config.Validate(availableRoutines); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

// sizeList is a flag.Value holding comma-separated sizes. Sizes accept Go
// integer syntax, so 1_000_000 and 0x10 are valid.
type sizeList []uint64

func (s *sizeList) String() string {
	if s == nil {
		return ""
	}
	parts := make([]string, len(*s))
	for i, v := range *s {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(parts, ",")
}

func (s *sizeList) Set(value string) error {
	parsed, err := parseSizes(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func parseSizes(value string) ([]uint64, error) {
	var sizes []uint64
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.ParseUint(field, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a size", field)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// stringList is a flag.Value holding comma-separated names.
type stringList []string

func (s *stringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = splitNames(value)
	return nil
}

func splitNames(value string) []string {
	var names []string
	for _, field := range strings.Split(value, ",") {
		if field = strings.TrimSpace(field); field != "" {
			names = append(names, field)
		}
	}
	return names
}
