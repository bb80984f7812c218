package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/mfolio"
	"github.com/etnz/mfolio/renderer"
	"github.com/google/subcommands"
)

// xirrCmd holds the flags for the 'xirr' subcommand.
type xirrCmd struct {
	json bool
}

func (*xirrCmd) Name() string     { return "xirr" }
func (*xirrCmd) Synopsis() string { return "compute the annualized return of a cash flow series" }
func (*xirrCmd) Usage() string {
	return `mfo xirr [-json] [<file>]

  Reads cash flows from file, or from the standard input, one per line:

    <date> <amount>

  Dates are dd-mm-yyyy or yyyy-mm-dd. Outflows are negative and inflows
  positive. Blank lines and lines starting with # are ignored.

  Flows are solved in the order given.
`
}

func (c *xirrCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the result as JSON")
}

func (c *xirrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one file is expected")
		return subcommands.ExitUsageError
	}
	config, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	bands, err := config.ReturnBands()
	if err != nil {
		return fail("Error in return bands: %v", err)
	}

	var r io.Reader = os.Stdin
	if f.NArg() == 1 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			return fail("Error opening cash flows: %v", err)
		}
		defer file.Close()
		r = file
	}

	flows, err := mfolio.DecodeCashFlows(r, config.Currency)
	if err != nil {
		return fail("Error reading cash flows: %v", err)
	}

	report := renderer.NewCashFlows(flows, bands)
	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fail("Error encoding result: %v", err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderCashFlows(report))
	return subcommands.ExitSuccess
}
