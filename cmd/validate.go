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

type validateCmd struct {
	out io.Writer
}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check the format of the data files" }
func (*validateCmd) Usage() string {
	return `validate

  Checks the balance, warehouse and operations files of the data directory
  and prints a report. Exits with a failure status if any file is invalid.
`
}
func (*validateCmd) SetFlags(*flag.FlagSet) {}

func (c *validateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	s := newSession(cfg, os.Stdin, out, newLogger(cfg.LogLevel, os.Stderr))

	if !stockbook.HasData(s.dir) {
		s.printf("No data files found in %s\n", s.dir)
		return subcommands.ExitSuccess
	}
	reports, ok := stockbook.Validate(s.dir)
	s.printMarkdown(renderer.ValidationMarkdown(reports))
	if !ok {
		s.log.Warn().Str("dir", s.dir).Msg("invalid data files")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
