package apitester

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/nojima/apitester/exchange"
	"github.com/nojima/apitester/flags"
	"github.com/nojima/apitester/input"
	"github.com/nojima/apitester/logging"
	"github.com/nojima/apitester/output"
	"github.com/nojima/apitester/tui"
	"github.com/nojima/apitester/version"
	"github.com/pkg/errors"
)

// Options overrides the process environment. Zero values mean os.Args,
// os.Stdin, os.Stdout, os.Stderr and the default transport.
type Options struct {
	Args      []string
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Transport http.RoundTripper
}

func (o *Options) withDefaults() *Options {
	c := *o
	if c.Args == nil {
		c.Args = os.Args
	}
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	return &c
}

func Main(options *Options) error {
	options = options.withDefaults()

	// Parse flags
	flagSet, optionSet, err := flags.Parse(options.Args)
	if err != nil {
		if flagSet != nil {
			flagSet.PrintUsage(options.Stderr)
		}
		return err
	}
	switch {
	case optionSet.ShowHelp:
		flagSet.PrintUsage(options.Stdout)
		return nil
	case optionSet.ShowVersion:
		version.PrintVersion(options.Stdout)
		return nil
	case optionSet.ShowLicense:
		version.PrintLicenses(options.Stdout)
		return nil
	}

	// Logging
	logger, closeLog, err := openLogger(optionSet, options.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	// Executor
	exchangeOptions := optionSet.ExchangeOptions
	exchangeOptions.Transport = options.Transport
	client, err := exchange.BuildHTTPClient(&exchangeOptions)
	if err != nil {
		return err
	}
	executor := exchange.NewExecutor(client, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Interactive composer
	if optionSet.Interactive {
		draft := input.NewDraft()
		if len(flagSet.Args()) > 0 {
			draft, err = input.ParseArgs(flagSet.Args(), options.Stdin, &optionSet.InputOptions)
			if err != nil {
				return err
			}
		}
		return tui.Run(ctx, tui.Config{
			Draft:    draft,
			Executor: executor,
			Logger:   logger,
		})
	}

	// Parse positional arguments
	draft, err := input.ParseArgs(flagSet.Args(), options.Stdin, &optionSet.InputOptions)
	if _, ok := errors.Cause(err).(*input.UsageError); ok {
		flagSet.PrintUsage(options.Stderr)
		return err
	}
	if err != nil {
		return err
	}

	return execute(ctx, executor, draft, &optionSet.OutputOptions, options)
}

// execute sends draft once and prints what outputOptions selects.
func execute(ctx context.Context, executor *exchange.Executor, draft *input.Draft, outputOptions *output.Options, options *Options) error {
	writer := bufio.NewWriter(options.Stdout)
	defer writer.Flush()
	printer := output.NewPrinter(writer, outputOptions)

	req, err := executor.Start(draft)
	if err != nil {
		return err
	}
	if err := output.PrintRequest(printer, outputOptions, req); err != nil {
		executor.Finish(nil)
		return err
	}
	writer.Flush()

	result := executor.Do(ctx, req)
	executor.Finish(result)

	switch r := result.(type) {
	case *exchange.Failure:
		return errors.New(r.Error)
	case *exchange.Success:
		if !outputOptions.Download {
			return output.PrintResponse(printer, outputOptions, r)
		}
		headerOnly := *outputOptions
		headerOnly.PrintResponseBody = false
		if err := output.PrintResponse(printer, &headerOnly, r); err != nil {
			return err
		}
		fileWriter := output.NewFileWriter(req.URL, outputOptions)
		if err := fileWriter.Write(r.Data); err != nil {
			return err
		}
		fmt.Fprintf(options.Stderr, "Downloaded to %s (%s)\n", fileWriter.Path(), output.FormatSize(r.Size))
	}
	return nil
}

// openLogger writes to --log-file when given. Otherwise the command line
// logs to stderr and the composer discards logs to keep the screen intact.
func openLogger(optionSet *flags.OptionSet, stderr io.Writer) (*logging.Logger, func(), error) {
	if optionSet.LogFile != "" {
		f, err := os.OpenFile(optionSet.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "opening log file '%s'", optionSet.LogFile)
		}
		return logging.New(f, optionSet.LogLevel), func() { f.Close() }, nil
	}
	if optionSet.Interactive {
		return logging.Discard(), func() {}, nil
	}
	return logging.New(stderr, optionSet.LogLevel), func() {}, nil
}
