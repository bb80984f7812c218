package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/mfolio"
	"github.com/etnz/mfolio/date"
	"github.com/etnz/mfolio/renderer"
	"github.com/google/subcommands"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	date   string
	sort   string
	json   bool
	strict bool
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the fund positions and their returns" }
func (*holdingCmd) Usage() string {
	return `mfo holding [-d <date>] [-sort <key>] [-json] [-strict]

  Reads the ledger, fetches the NAV history of every fund in it and displays
  one position per fund: units, invested capital, current value, gain,
  absolute return, XIRR and its band, then the portfolio total.

  Transactions that cannot be valued (unknown fund, no NAV on that day) are
  listed at the end.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Valuation date of the returns (dd-mm-yyyy or yyyy-mm-dd)")
	f.StringVar(&c.sort, "sort", mfolio.ByName.String(), "Sort key of the positions: "+strings.Join(mfolio.SortKeys(), ", "))
	f.BoolVar(&c.json, "json", false, "Print the holding as JSON")
	f.BoolVar(&c.strict, "strict", false, "Fail if any transaction was skipped")
}

func (c *holdingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.ParseAny(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	key, err := mfolio.ParseSortKey(c.sort)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
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

	p, err := mfolio.Refresh(ctx, transactionSource(config), newClient(config), config.MFAPI.Concurrency)
	if err != nil {
		return fail("Error refreshing portfolio: %v", err)
	}

	h := renderer.NewHolding(p, key, bands, on.Time())
	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(h); err != nil {
			return fail("Error encoding holding: %v", err)
		}
	} else {
		printMarkdown(renderer.RenderHolding(h))
	}

	if c.strict && len(h.Skipped) > 0 {
		return fail("%d transaction(s) skipped", len(h.Skipped))
	}
	return subcommands.ExitSuccess
}
