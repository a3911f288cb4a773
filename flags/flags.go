package flags

import (
	"io"
	"os"
	"regexp"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"
	"github.com/tenkiya/tenki-go/exchange"
	"github.com/tenkiya/tenki-go/output"
)

var reNumber = regexp.MustCompile(`^[0-9.]+$`)

type FlagSet interface {
	Args() []string
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	ExchangeOptions exchange.Options
	OutputOptions   output.Options
	Debug           bool
	NoHistory       bool
	APIKey          string
	ShowVersion     bool
	ShowLicense     bool
}

type terminalInfo struct {
	stdoutIsTerminal bool
}

func Parse(args []string) (FlagSet, *OptionSet, error) {
	return parse(args, terminalInfo{
		stdoutIsTerminal: isatty.IsTerminal(os.Stdout.Fd()),
	})
}

func parse(args []string, terminalInfo terminalInfo) (FlagSet, *OptionSet, error) {
	exchangeOptions := exchange.Options{}
	outputOptions := output.Options{}
	optionSet := OptionSet{}
	var noColor bool
	var askKey bool
	timeout := "30s"

	flagSet := getopt.New()
	flagSet.SetParameters("[QUERY [PARAM==VALUE ...]]")
	flagSet.BoolVarLong(&outputOptions.JSON, "json", 'j', "print the report as indented JSON")
	flagSet.BoolVarLong(&noColor, "no-color", 0, "disable colored output")
	flagSet.StringVarLong(&timeout, "timeout", 0, "timeout seconds that you allow the whole operation to take")
	flagSet.BoolVarLong(&exchangeOptions.FollowRedirects, "follow", 0, "follow redirects")
	flagSet.BoolVarLong(&exchangeOptions.SkipVerify, "skip-verify", 0, "skip TLS certificate verification")
	flagSet.BoolVarLong(&optionSet.Debug, "debug", 'd', "log requests and responses to stderr")
	flagSet.BoolVarLong(&askKey, "ask-key", 0, "prompt for the API key instead of reading configuration")
	flagSet.BoolVarLong(&optionSet.NoHistory, "no-history", 0, "do not read or write the last-search history")
	flagSet.BoolVarLong(&optionSet.ShowVersion, "version", 'V', "print version and exit")
	flagSet.BoolVarLong(&optionSet.ShowLicense, "license", 0, "print license information and exit")
	flagSet.Parse(args)

	// Parse --timeout
	d, err := parseDurationOrSeconds(timeout)
	if err != nil {
		return nil, nil, err
	}
	exchangeOptions.Timeout = d

	// Color
	outputOptions.EnableColor = !noColor && terminalInfo.stdoutIsTerminal

	if askKey {
		key, err := askSecret()
		if err != nil {
			return nil, nil, err
		}
		optionSet.APIKey = key
	}

	optionSet.ExchangeOptions = exchangeOptions
	optionSet.OutputOptions = outputOptions
	return flagSet, &optionSet, nil
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
