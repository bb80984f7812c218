package cmd

import (
	"flag"
	"io"

	"github.com/etnz/mfolio"
	"github.com/etnz/mfolio/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the application, built from the global flags and the subcommands flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, cmds := range Commands {
		for _, c := range cmds {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			c.SetFlags(fs)
			sub := &complete.Command{Flags: flagPredictors(fs)}
			switch c.Name() {
			case "xirr":
				sub.Args = predict.Files("*")
			case "topic":
				topics, _ := docs.GetAllTopics()
				sub.Args = predict.Set(topics)
			}
			root.Sub[c.Name()] = sub
		}
	}
	return root
}

// flagPredictors predicts the values of the flags in fs.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case f.Name == "sort":
			flags[f.Name] = predict.Set(mfolio.SortKeys())
		case f.Name == "config":
			flags[f.Name] = predict.Files("*.toml")
		case f.Name == "ledger-file":
			flags[f.Name] = predict.Files("*.csv")
		case isBool(f):
			flags[f.Name] = nil
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
