package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search funds by name" }
func (*searchCmd) Usage() string {
	return `mfo search <query>...

  Lists the scheme codes and names of the funds matching the query.
`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (*searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search query is required")
		return subcommands.ExitUsageError
	}
	config, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}

	schemes, err := newClient(config).Search(ctx, strings.Join(f.Args(), " "))
	if err != nil {
		return fail("Error searching funds: %v", err)
	}
	if len(schemes) == 0 {
		fmt.Println("No fund found.")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString("| Code | Fund |\n|---:|:---|\n")
	for _, s := range schemes {
		fmt.Fprintf(&b, "| %d | %s |\n", s.Code, s.Name)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
