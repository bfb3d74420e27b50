package flags

import (
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/nojima/apitester/config"
	"github.com/nojima/apitester/exchange"
	"github.com/nojima/apitester/input"
	"github.com/nojima/apitester/logging"
	"github.com/nojima/apitester/output"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"
)

var reNumber = regexp.MustCompile(`^[0-9.]+$`)

type FlagSet interface {
	Args() []string
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	InputOptions    input.Options
	ExchangeOptions exchange.Options
	OutputOptions   output.Options

	Interactive bool
	LogLevel    logging.Level
	LogFile     string
	ShowVersion bool
	ShowLicense bool
	ShowHelp    bool
}

type terminalInfo struct {
	stdinIsTerminal  bool
	stdoutIsTerminal bool
}

// environment is what parsing needs from outside the argument list.
type environment struct {
	terminal    terminalInfo
	loadConfig  func(path string) (*config.Config, error)
	askPassword func(user string) (string, error)
}

func Parse(args []string) (FlagSet, *OptionSet, error) {
	env := environment{
		terminal: terminalInfo{
			stdinIsTerminal:  isatty.IsTerminal(os.Stdin.Fd()),
			stdoutIsTerminal: isatty.IsTerminal(os.Stdout.Fd()),
		},
		loadConfig:  config.Load,
		askPassword: askPassword,
	}
	return parse(args, env)
}

func parse(args []string, env environment) (FlagSet, *OptionSet, error) {
	inputOptions := input.Options{}
	outputOptions := output.Options{}
	optionSet := &OptionSet{}
	var ignoreStdin, interactive, noFollow, http1 bool
	var authType, prettyFlag, verifyFlag, timeout, logLevel, configPath string
	printFlag := "\000" // "\000" is a special value that indicates user did not specified --print

	flagSet := getopt.New()
	flagSet.SetParameters("[METHOD] URL [REQUEST_ITEM [REQUEST_ITEM ...]]")
	flagSet.StringVarLong(&inputOptions.Body, "body", 'd', "raw request body; @FILE reads a file, @- reads stdin", "BODY")
	flagSet.StringVarLong(&authType, "auth-type", 'A', "auth scheme: none, bearer, basic or apikey", "TYPE")
	flagSet.StringVarLong(&inputOptions.Auth, "auth", 'a', "token, USER[:PASS] or API key for --auth-type", "VALUE")
	flagSet.StringVarLong(&printFlag, "print", 'p', "specifies what the output should contain (HBhb)")
	flagSet.StringVarLong(&prettyFlag, "pretty", 0, "controls output processing: all, colors, format or none", "STYLE")
	flagSet.BoolVarLong(&ignoreStdin, "ignore-stdin", 0, "do not attempt to read stdin")
	timeoutOpt := flagSet.StringVarLong(&timeout, "timeout", 0, "Timeout seconds that you allow the whole operation to take")
	noFollowOpt := flagSet.BoolVarLong(&noFollow, "no-follow", 0, "do not follow redirects")
	verifyOpt := flagSet.StringVarLong(&verifyFlag, "verify", 0, "verify TLS certificates: yes or no", "yes|no")
	http1Opt := flagSet.BoolVarLong(&http1, "http1", 0, "force HTTP/1.1")
	flagSet.BoolVarLong(&interactive, "interactive", 'i', "open the terminal composer")
	flagSet.StringVarLong(&logLevel, "log-level", 0, "log verbosity: error, warn, info or debug", "LEVEL")
	flagSet.StringVarLong(&optionSet.LogFile, "log-file", 0, "write logs to FILE", "FILE")
	flagSet.BoolVarLong(&outputOptions.Download, "download", 'D', "download the response body to a file")
	flagSet.StringVarLong(&outputOptions.OutputFile, "output", 'o', "file to download into (with --download)", "FILE")
	flagSet.BoolVarLong(&outputOptions.Overwrite, "overwrite", 0, "overwrite an existing download target")
	flagSet.StringVarLong(&configPath, "config", 0, "read defaults from FILE", "FILE")
	flagSet.BoolVarLong(&optionSet.ShowVersion, "version", 0, "print version and exit")
	flagSet.BoolVarLong(&optionSet.ShowLicense, "license", 0, "print license information and exit")
	flagSet.BoolVarLong(&optionSet.ShowHelp, "help", 'h', "print this help and exit")
	if err := flagSet.Getopt(args, nil); err != nil {
		return flagSet, nil, errors.Wrap(err, "parsing flags")
	}

	conf, err := env.loadConfig(configPath)
	if err != nil {
		return flagSet, nil, err
	}

	// Interactive
	optionSet.Interactive = interactive ||
		(len(flagSet.Args()) == 0 && env.terminal.stdinIsTerminal && env.terminal.stdoutIsTerminal)

	// Check stdin
	if !ignoreStdin && !optionSet.Interactive && !env.terminal.stdinIsTerminal {
		inputOptions.ReadStdin = true
	}

	// Parse --auth-type and --auth
	t, err := input.ParseAuthType(authType)
	if err != nil {
		return flagSet, nil, err
	}
	if t == input.AuthNone && inputOptions.Auth != "" {
		t = input.AuthBasic
	}
	inputOptions.AuthType = t
	if t == input.AuthBasic && inputOptions.Auth != "" && !strings.Contains(inputOptions.Auth, ":") {
		password, err := env.askPassword(inputOptions.Auth)
		if err != nil {
			return flagSet, nil, err
		}
		inputOptions.Auth += ":" + password
	}

	// Parse --print
	if err := parsePrintFlag(printFlag, env.terminal, &outputOptions); err != nil {
		return flagSet, nil, err
	}

	// Parse --pretty
	if err := parsePrettyFlag(prettyFlag, env.terminal, conf, &outputOptions); err != nil {
		return flagSet, nil, err
	}

	// Exchange options: flags win over the config file
	exchangeOptions, err := parseExchangeOptions(conf, exchangeFlags{
		timeout:     timeout,
		timeoutSeen: timeoutOpt.Seen(),
		noFollow:    noFollow && noFollowOpt.Seen(),
		verify:      verifyFlag,
		verifySeen:  verifyOpt.Seen(),
		http1:       http1 && http1Opt.Seen(),
	})
	if err != nil {
		return flagSet, nil, err
	}

	// Log level
	if logLevel == "" {
		logLevel = conf.LogLevel
	}
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return flagSet, nil, err
	}

	optionSet.InputOptions = inputOptions
	optionSet.ExchangeOptions = exchangeOptions
	optionSet.OutputOptions = outputOptions
	optionSet.LogLevel = level
	return flagSet, optionSet, nil
}

func parsePrintFlag(printFlag string, terminal terminalInfo, outputOptions *output.Options) error {
	if printFlag == "\000" {
		// --print is not specified
		if terminal.stdoutIsTerminal {
			outputOptions.PrintResponseHeader = true
			outputOptions.PrintResponseBody = true
		} else {
			outputOptions.PrintResponseBody = true
		}
	} else {
		for _, c := range printFlag {
			switch c {
			case 'H':
				outputOptions.PrintRequestHeader = true
			case 'B':
				outputOptions.PrintRequestBody = true
			case 'h':
				outputOptions.PrintResponseHeader = true
			case 'b':
				outputOptions.PrintResponseBody = true
			default:
				return errors.Errorf("Invalid char in --print value (must be consist of HBhb): %c", c)
			}
		}
	}
	return nil
}

func parsePrettyFlag(prettyFlag string, terminal terminalInfo, conf *config.Config, outputOptions *output.Options) error {
	switch prettyFlag {
	case "":
		outputOptions.EnableFormat = terminal.stdoutIsTerminal
		outputOptions.EnableColor = terminal.stdoutIsTerminal
		if conf.Color != nil && !*conf.Color {
			outputOptions.EnableColor = false
		}
	case "all":
		outputOptions.EnableFormat = true
		outputOptions.EnableColor = true
	case "colors":
		outputOptions.EnableColor = true
	case "format":
		outputOptions.EnableFormat = true
	case "none":
	default:
		return errors.Errorf("Value of --pretty must be one of all, colors, format or none: %s", prettyFlag)
	}
	return nil
}

type exchangeFlags struct {
	timeout     string
	timeoutSeen bool
	noFollow    bool
	verify      string
	verifySeen  bool
	http1       bool
}

func parseExchangeOptions(conf *config.Config, f exchangeFlags) (exchange.Options, error) {
	options := exchange.Options{
		FollowRedirects: true,
	}

	timeout := conf.Timeout
	if f.timeoutSeen {
		timeout = f.timeout
	}
	if timeout != "" {
		d, err := parseDurationOrSeconds(timeout)
		if err != nil {
			return exchange.Options{}, err
		}
		options.Timeout = d
	}

	if conf.FollowRedirects != nil {
		options.FollowRedirects = *conf.FollowRedirects
	}
	if f.noFollow {
		options.FollowRedirects = false
	}

	if conf.Verify != nil {
		options.SkipVerify = !*conf.Verify
	}
	if f.verifySeen {
		verify, err := parseYesNo(f.verify)
		if err != nil {
			return exchange.Options{}, err
		}
		options.SkipVerify = !verify
	}

	if conf.HTTP1 != nil {
		options.ForceHTTP1 = *conf.HTTP1
	}
	if f.http1 {
		options.ForceHTTP1 = true
	}
	return options, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, errors.Errorf("Value of --verify must be yes or no: %s", s)
	}
}

func parseDurationOrSeconds(timeout string) (time.Duration, error) {
	if reNumber.MatchString(timeout) {
		timeout += "s"
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return time.Duration(0), errors.Errorf("Value of --timeout must be a number or duration string: %v", timeout)
	}
	return d, nil
}
