package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/stockbook"
	"github.com/etnz/stockbook/renderer"
	"github.com/google/subcommands"
)

// shellCommands returns the commands of the interactive shell, in menu order.
func shellCommands() []subcommands.Command {
	return []subcommands.Command{
		&introductionCmd{},
		&balanceCmd{},
		&saleCmd{},
		&purchaseCmd{},
		&accountCmd{},
		&listCmd{},
		&warehouseCmd{},
		&reviewCmd{},
		&endCmd{},
	}
}

type shellCmd struct {
	in  io.Reader
	out io.Writer
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "run the interactive simulator (default)" }
func (*shellCmd) Usage() string {
	return `sbk [shell]

  Checks and loads the data files, then reads commands until 'end', which
  saves the state. Type a command name to run it; flags may follow the name.
`
}
func (*shellCmd) SetFlags(*flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if !s.start() {
		return subcommands.ExitFailure
	}
	return s.run(ctx, shellCommands())
}

// start checks the data files and loads the state. It returns false when the
// files are invalid and the user does not want to start from an empty state.
func (s *session) start() bool {
	if stockbook.HasData(s.dir) {
		s.println()
		s.println("Checking existing data files...")
		reports, ok := stockbook.Validate(s.dir)
		s.printf("%s", renderer.ValidationMarkdown(reports))
		if !ok {
			s.log.Warn().Str("dir", s.dir).Msg("invalid data files")
			answer, err := s.prompt("Issues found with data files. Do you want to start with empty state? (yes/no): ")
			if err != nil || strings.ToLower(strings.TrimSpace(answer)) != "yes" {
				s.println("Please fix the data files and restart the program.")
				return false
			}
			s.state = stockbook.NewState(s.currency)
			return true
		}
	}

	if err := s.load(); err != nil {
		s.printf("Error loading program state: %v\n", err)
		s.println("Starting with default empty state.")
		return true
	}
	s.println("Program state loaded successfully.")
	return true
}

// run reads and dispatches commands until the end command, or the end of input.
func (s *session) run(ctx context.Context, commands []subcommands.Command) subcommands.ExitStatus {
	byName := make(map[string]subcommands.Command, len(commands))
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		byName[c.Name()] = c
		names = append(names, c.Name())
	}
	menu := renderer.Menu(names)

	s.println()
	s.println("Hello! This program will simulate operations on a company's account and a warehouse. ")
	s.printMarkdown(menu)

	status := subcommands.ExitSuccess
	for !s.done {
		line, err := s.prompt("\nPlease enter a command: ")
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.log.Error().Err(err).Msg("reading command failed")
			}
			s.println()
			line = (&endCmd{}).Name()
		}

		fields := strings.Fields(line)
		var c subcommands.Command
		if len(fields) > 0 {
			c = byName[strings.ToLower(fields[0])]
		}
		if c == nil {
			s.println("This command is invalid. Please try again.")
		} else {
			status = s.dispatch(ctx, c, fields[1:])
		}

		if !s.done {
			s.printMarkdown(menu)
		}
	}
	return status
}

// dispatch parses the command flags and executes it within the session.
func (s *session) dispatch(ctx context.Context, c subcommands.Command, args []string) subcommands.ExitStatus {
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	f.SetOutput(s.out)
	f.Usage = func() { fmt.Fprint(s.out, c.Usage()) }
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	s.log.Debug().Str("command", c.Name()).Strs("args", args).Msg("dispatch")
	return c.Execute(ctx, f, s)
}

type endCmd struct{}

func (*endCmd) Name() string     { return "end" }
func (*endCmd) Synopsis() string { return "save the state and quit" }
func (*endCmd) Usage() string {
	return `end

  Saves the balance, the warehouse and the operations, then quits.
`
}
func (*endCmd) SetFlags(*flag.FlagSet) {}

func (*endCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionFrom(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	s.done = true
	if err := s.save(); err != nil {
		s.printf("Error saving program state: %v\n", err)
		s.println("Terminating the program.")
		return subcommands.ExitFailure
	}
	s.println("Program state saved successfully.")
	s.println("Program state saved. Terminating the program.")
	return subcommands.ExitSuccess
}
