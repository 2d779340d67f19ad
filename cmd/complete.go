package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the application, made of
// cmds and their flags.
func Completion(cmds []subcommands.Command) *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command, len(cmds)),
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*.yaml"),
			"dir":       predict.Dirs("*"),
			"currency":  predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
			"log-level": predict.Set{"trace", "debug", "info", "warn", "error"},
			"pretty":    predict.Nothing,
		},
	}
	for _, c := range cmds {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		f.VisitAll(func(fl *flag.Flag) {
			sub.Flags[fl.Name] = predict.Something
		})
		if c.Name() == "topic" {
			sub.Args = predict.Set{"introduction", "commands", "files"}
		}
		root.Sub[c.Name()] = sub
	}
	return root
}
