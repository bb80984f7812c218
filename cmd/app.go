// Package cmd implements the CLI application to track a mutual fund portfolio.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/mfolio"
	"github.com/etnz/mfolio/mfapi"
	"github.com/etnz/mfolio/sheet"
	"github.com/google/subcommands"
)

// Commands lists the subcommands, by group.
var Commands = map[string][]subcommands.Command{
	"portfolio": {&holdingCmd{}, &addCmd{}},
	"returns":   {&xirrCmd{}},
	"funds":     {&searchCmd{}, &navCmd{}},
	"help":      {&topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for group, cmds := range Commands {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "mfo.toml", "Path to the TOML configuration file")
var ledgerFile = flag.String("ledger-file", "", "Path to the local ledger file (CSV format), overrides ledger.file")
var sheetURL = flag.String("sheet-url", "", "URL of the published ledger sheet (CSV format), overrides ledger.sheet_csv_url")
var scriptURL = flag.String("script-url", "", "URL of the ledger append script, overrides ledger.script_url")
var defaultCurrency = flag.String("currency", "", "Currency of the ledger, overrides currency")
var Verbose = flag.Bool("v", false, "Verbose output: log skipped transactions and data source activity")

// Setup applies the verbose flag to the standard logger. To be called after flag.Parse().
func Setup() {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// loadConfig loads the configuration file and applies the global flags over it.
func loadConfig() (Config, error) {
	c, err := LoadConfig(*configFile)
	if err != nil {
		return c, err
	}
	if *ledgerFile != "" {
		c.Ledger.File = *ledgerFile
		c.Ledger.SheetCSVURL = "" // an explicit file wins
	}
	if *sheetURL != "" {
		c.Ledger.SheetCSVURL = *sheetURL
	}
	if *scriptURL != "" {
		c.Ledger.ScriptURL = *scriptURL
	}
	if *defaultCurrency != "" {
		c.Currency = *defaultCurrency
	}
	return c, nil
}

// newClient creates the NAV API client of the configuration.
func newClient(c Config) *mfapi.Client {
	opts := []mfapi.ClientOption{
		mfapi.WithBaseURL(c.MFAPI.BaseURL),
		mfapi.WithCurrency(c.Currency),
	}
	if c.MFAPI.RateLimit > 0 {
		opts = append(opts, mfapi.WithRateLimit(c.MFAPI.RateLimit))
	}
	if c.MFAPI.Cache != "" {
		opts = append(opts, mfapi.WithDailyCache(c.MFAPI.Cache))
	}
	return mfapi.NewClient(opts...)
}

// transactionSource returns where to read the ledger from: the published sheet if any, the local file otherwise.
func transactionSource(c Config) mfolio.TransactionSource {
	if c.Ledger.SheetCSVURL != "" {
		return sheet.NewFeed(c.Ledger.SheetCSVURL)
	}
	return mfolio.LedgerFile(c.Ledger.File)
}

// transactionSink returns where to append transactions: the script if any, the local file otherwise.
func transactionSink(c Config) mfolio.TransactionSink {
	if c.Ledger.ScriptURL != "" {
		return sheet.NewScript(c.Ledger.ScriptURL)
	}
	return mfolio.LedgerFile(c.Ledger.File)
}

// printMarkdown renders md for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		log.Printf("cannot create markdown renderer: %v", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error to stderr and returns the failure exit status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

// Known reports whether name is a builtin subcommand.
func Known(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, cmds := range Commands {
		for _, c := range cmds {
			if c.Name() == name {
				return true
			}
		}
	}
	return false
}
