package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/mfolio"
	"github.com/etnz/mfolio/date"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date  string
	id    string
	units string
	check bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a fund purchase in the ledger" }
func (*addCmd) Usage() string {
	return `mfo add -id <scheme code> -u <units> [-d <date>] [-check=false]

  Appends a purchase to the ledger: to the append script if one is configured,
  to the local ledger file otherwise.

  With -check, the fund must have a NAV on the purchase date.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Purchase date (dd-mm-yyyy or yyyy-mm-dd)")
	f.StringVar(&c.id, "id", "", "Scheme code of the fund")
	f.StringVar(&c.units, "u", "", "Purchased units")
	f.BoolVar(&c.check, "check", true, "Check that the fund has a NAV on the purchase date")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.ParseAny(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	units, err := mfolio.ParseQuantity(c.units)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing units: %v\n", err)
		return subcommands.ExitUsageError
	}
	tx := mfolio.NewTransaction(on, c.id, units)
	if err := tx.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	config, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}

	if c.check {
		s, err := newClient(config).PriceSeries(ctx, tx.ID)
		if err != nil {
			return fail("Error fetching fund %s: %v", tx.ID, err)
		}
		if _, ok := s.PriceAt(on); !ok {
			return fail("%s has no NAV on %s", s.Name(), on)
		}
	}

	if err := transactionSink(config).Submit(ctx, tx); err != nil {
		return fail("Error recording transaction: %v", err)
	}
	fmt.Printf("Recorded %s\n", tx)
	return subcommands.ExitSuccess
}
