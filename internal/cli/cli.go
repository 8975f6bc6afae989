package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/goidioms/internal/app"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating the program should exit cleanly (help
// was requested), or an ExitError for malformed flags.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("goidioms", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
goidioms - a catalog of runnable Go idiom demonstrations.

Usage:
  goidioms [options] [SAMPLE]

Arguments:
  SAMPLE
    1-based sample number to run, or 'all' to run every sample.
    Omit it to list the available samples.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL settings file or directory.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json' (default 'text').")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn', or 'error' (default 'info').")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected at most one sample selector"}
	}

	config, err := app.NewConfig(app.Config{
		Selection:    flagSet.Arg(0),
		SettingsPath: *configFlag,
		LogLevel:     strings.ToLower(*logLevelFlag),
		LogFormat:    strings.ToLower(*logFormatFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
