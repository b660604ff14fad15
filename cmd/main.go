// FILE: lixenwraith/ncl/cmd/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/ncl"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds one record from the input files and -set assignments, in that
// order, and writes it to outW or the -out file.
func run(outW io.Writer, args []string) (err error) {
	opts, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(opts.LogLevel, opts.LogFormat, os.Stderr)

	// Builder misuse panics; report it as an ordinary failure.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("nclgen panicked: %v", r)
		}
	}()

	inputs := opts.Inputs
	if opts.Discover != "" {
		if path, ok := ncl.DiscoverFile(ncl.DefaultDiscoveryOptions(opts.Discover)); ok {
			logger.Info("Discovered input.", "name", opts.Discover, "path", path)
			inputs = append([]string{path}, inputs...)
		} else {
			logger.Warn("No input discovered.", "name", opts.Discover)
		}
	}

	r := ncl.NewRecord().SetOpen(opts.Open)
	for _, path := range inputs {
		in, err := ncl.LoadFile(path)
		if err != nil {
			return err
		}
		logger.Debug("Loaded input.", "path", path, "fields", in.Len())
		r.Extend(in)
	}
	r.Fields(opts.Settings...)
	logger.Debug("Applied settings.", "count", len(opts.Settings))

	t := r.Build()

	if opts.Out != "" {
		if err := ncl.Save(opts.Out, t, opts.Format); err != nil {
			return err
		}
		logger.Info("Wrote output.", "path", opts.Out, "format", opts.Format)
		return nil
	}

	if err := ncl.Write(outW, t, opts.Format); err != nil {
		return err
	}
	logger.Debug("Wrote output to stdout.", "format", opts.Format)
	return nil
}
