package tenki

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/tenkiya/tenki-go/config"
	"github.com/tenkiya/tenki-go/debug"
	"github.com/tenkiya/tenki-go/exchange"
	"github.com/tenkiya/tenki-go/flags"
	"github.com/tenkiya/tenki-go/history"
	"github.com/tenkiya/tenki-go/input"
	"github.com/tenkiya/tenki-go/output"
	"github.com/tenkiya/tenki-go/version"
	"github.com/tenkiya/tenki-go/weather"
)

func Main() error {
	// Parse flags
	flagSet, optionSet, err := flags.Parse(os.Args)
	if err != nil {
		return err
	}
	if optionSet.ShowVersion {
		fmt.Println(version.Current())
		return nil
	}
	if optionSet.ShowLicense {
		version.PrintLicenses(os.Stdout)
		return nil
	}

	debug.SetupLogger(optionSet.Debug)
	ctx := debug.WithDebug(context.Background(), optionSet.Debug)

	// Parse positional arguments
	query, err := input.ParseArgs(flagSet.Args())
	if input.IsUsageError(err) {
		flagSet.PrintUsage(os.Stderr)
		return err
	}
	if err != nil {
		return err
	}

	// Fall back to the last searched query
	store := history.NewStore(history.DefaultDir())
	if query.Text == "" && !optionSet.NoHistory {
		if last, ok := store.Last(); ok {
			query.Text = last
		}
	}
	if query.Text == "" {
		flagSet.PrintUsage(os.Stderr)
		return fmt.Errorf("QUERY is required")
	}

	// Resolve configuration; failures degrade, the request reports them
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("could not load configuration", "error", err)
		cfg = config.Empty()
	}

	// Fetch
	httpClient, err := exchange.BuildHTTPClient(&optionSet.ExchangeOptions)
	if err != nil {
		return err
	}
	client := weather.NewClientFromConfig(httpClient, cfg)
	if optionSet.APIKey != "" {
		client = client.WithAPIKey(optionSet.APIKey)
	}
	report, err := client.CurrentWith(ctx, query.Text, query.Parameters...)
	if err != nil {
		return err
	}
	if !optionSet.NoHistory {
		store.Save(query.Text)
	}

	// Print report
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()
	printer := output.NewPrinter(writer, &optionSet.OutputOptions)
	return printer.PrintReport(report)
}
