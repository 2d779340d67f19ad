// Package cmd implements the CLI application to simulate a company account
// and its warehouse.
package cmd

import (
	"flag"

	"github.com/etnz/stockbook/config"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a config file (default stockbook.yaml in . or $HOME/.config/stockbook)")
var dataDir = flag.String("dir", ".", "Directory holding the data files")
var currency = flag.String("currency", "EUR", "ISO code of the account currency")
var logLevel = flag.String("log-level", "warn", "Log level: trace, debug, info, warn or error")
var pretty = flag.Bool("pretty", false, "Render markdown output for the terminal")

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		c.Register(cmd, "")
	}
}

// Commands returns the top level commands of the application.
func Commands() []subcommands.Command {
	cmds := []subcommands.Command{
		&shellCmd{},
		&validateCmd{},
		&topicCmd{},
	}
	for _, c := range shellCommands() {
		switch c.(type) {
		case *endCmd, *introductionCmd:
			// only meaningful in the shell
			continue
		}
		cmds = append(cmds, &oneShotCmd{Command: c})
	}
	return cmds
}

// DefaultToShell makes the shell the command of f when f, already parsed, has
// no command.
func DefaultToShell(f *flag.FlagSet) error {
	if f.NArg() > 0 {
		return nil
	}
	return f.Parse([]string{(&shellCmd{}).Name()})
}

// settings merges the configuration (file and environment) with the command
// line flags, flags winning when they are explicitly set.
func settings() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if *configFile != "" {
		cfg, err = config.LoadFile(*configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Dir = *dataDir
		case "currency":
			cfg.Currency = *currency
		case "log-level":
			cfg.LogLevel = *logLevel
		case "pretty":
			cfg.Pretty = *pretty
		}
	})
	if err := cfg.Normalize().Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
