package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/stockbook"
	"github.com/etnz/stockbook/renderer"
	"github.com/google/subcommands"
)

// oneShotCmd runs a single shell command against the data directory: the
// state is loaded, the command executed and the state saved if it changed.
type oneShotCmd struct {
	subcommands.Command
	in  io.Reader
	out io.Writer
}

func (c *oneShotCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	in, out := c.in, c.out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	s := newSession(cfg, in, out, newLogger(cfg.LogLevel, os.Stderr))
	if reports, ok := stockbook.Validate(s.dir); !ok {
		s.printf("%s", renderer.ValidationMarkdown(reports))
		s.println("Please fix the data files and try again.")
		return subcommands.ExitFailure
	}
	if err := s.load(); err != nil {
		s.printf("Error loading program state: %v\n", err)
		return subcommands.ExitFailure
	}

	status := c.Command.Execute(ctx, f, s)
	if !s.dirty {
		return status
	}
	if err := s.save(); err != nil {
		s.printf("Error saving program state: %v\n", err)
		return subcommands.ExitFailure
	}
	return status
}
