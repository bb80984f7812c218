package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/mfolio/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the user manual" }
func (*topicCmd) Usage() string {
	return `mfo topic [<topic>...]

  Prints the manual topics, in order. Without topic, prints the manual index
  and the available topics. Use '*' for the whole manual.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := manual(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// manual returns the markdown of the requested topics.
func manual(topics []string) (string, error) {
	available, err := docs.GetAllTopics()
	if err != nil {
		return "", err
	}
	if len(topics) == 0 {
		index, err := docs.GetTopic("readme")
		if err != nil {
			return "", err
		}
		return index + "\nAvailable topics: `" + strings.Join(available, "`, `") + "`.\n", nil
	}
	for _, topic := range topics {
		if topic != "*" && !slices.Contains(available, topic) {
			return "", fmt.Errorf("unknown topic %q, want one of %s or '*'", topic, strings.Join(available, ", "))
		}
	}
	return docs.GetTopics(topics...)
}
