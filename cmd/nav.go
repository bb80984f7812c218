package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/mfolio"
	"github.com/google/subcommands"
)

type navCmd struct{}

func (*navCmd) Name() string     { return "nav" }
func (*navCmd) Synopsis() string { return "display the latest NAV of funds" }
func (*navCmd) Usage() string {
	return `mfo nav <scheme code>...

  Displays the latest published NAV of each fund.
`
}

func (*navCmd) SetFlags(f *flag.FlagSet) {}

func (*navCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one scheme code is required")
		return subcommands.ExitUsageError
	}
	config, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	client := newClient(config)

	var b strings.Builder
	b.WriteString("| Code | Fund | Date | NAV |\n|---:|:---|:---|---:|\n")
	for _, id := range f.Args() {
		name, on, nav, err := client.Latest(ctx, id)
		if err != nil {
			return fail("Error fetching NAV of %s: %v", id, err)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", id, name, on, mfolio.M(nav, config.Currency))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
