// FILE: lixenwraith/ncl/cmd/cli.go
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/ncl"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// options holds the parsed command line.
type options struct {
	Inputs    []string
	Discover  string
	Settings  []ncl.CompleteField
	Out       string
	Format    ncl.Format
	Open      bool
	LogLevel  string
	LogFormat string
}

// parseArgs parses args into options. It reports shouldExit when help was
// printed.
func parseArgs(args []string, output io.Writer) (*options, bool, error) {
	opts := &options{}
	flagSet := flag.NewFlagSet("nclgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
nclgen - build a Nickel record from files and dotted settings.

Usage:
  nclgen [options] [FILE...]

Arguments:
  FILE
    TOML, JSON or YAML input. Files are merged in order.

Options:
`)
		flagSet.PrintDefaults()
	}

	flagSet.Func("set", "Field assignment `path=value`, may be repeated.", func(s string) error {
		f, err := ncl.ParseSetting(s)
		if err != nil {
			return err
		}
		opts.Settings = append(opts.Settings, f)
		return nil
	})
	formatFlag := flagSet.String("format", "", "Output format: nickel, hcl, yaml, toml or json. Defaults to the -out extension, else nickel.")
	flagSet.StringVar(&opts.Discover, "discover", "", "Load NAME.{toml,yaml,yml,json} from $NAME_CONFIG, the current directory or XDG config dirs before FILE inputs.")
	flagSet.StringVar(&opts.Out, "out", "", "Write output to this file instead of stdout.")
	flagSet.BoolVar(&opts.Open, "open", false, "Mark the top-level record open.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	opts.Inputs = flagSet.Args()

	if len(opts.Inputs) == 0 && len(opts.Settings) == 0 && opts.Discover == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	switch {
	case *formatFlag != "":
		f, err := ncl.ParseFormat(*formatFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		opts.Format = f
	case opts.Out != "":
		f, err := ncl.FormatFromPath(opts.Out)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		opts.Format = f
	default:
		opts.Format = ncl.FormatNickel
	}

	opts.LogFormat = strings.ToLower(*logFormatFlag)
	if opts.LogFormat != "text" && opts.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	opts.LogLevel = strings.ToLower(*logLevelFlag)
	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return opts, false, nil
}
