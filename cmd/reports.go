package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/stockbook/docs"
	"github.com/etnz/stockbook/renderer"
	"github.com/google/subcommands"
)

type accountCmd struct{}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "print the account balance" }
func (*accountCmd) Usage() string {
	return `account

  Prints the current account balance.
`
}
func (*accountCmd) SetFlags(*flag.FlagSet) {}

func (*accountCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionFrom(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	s.printf("Current account balance: %s\n", s.state.Balance)
	return subcommands.ExitSuccess
}

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the warehouse inventory" }
func (*listCmd) Usage() string {
	return `list

  Lists every product of the warehouse with its price and quantity.
`
}
func (*listCmd) SetFlags(*flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionFrom(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	s.printMarkdown(renderer.InventoryMarkdown(s.state.Warehouse))
	return subcommands.ExitSuccess
}

type warehouseCmd struct {
	product string
}

func (*warehouseCmd) Name() string     { return "warehouse" }
func (*warehouseCmd) Synopsis() string { return "print the stock of one product" }
func (*warehouseCmd) Usage() string {
	return `warehouse [-product <name>]

  Prints the price and quantity in stock of a product.
`
}

func (c *warehouseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "product", "", "Product name")
}

func (c *warehouseCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionFrom(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	if err := s.ask(f, "product", &c.product, "Enter the product name to check: "); err != nil {
		return subcommands.ExitFailure
	}
	c.product = strings.TrimSpace(c.product)
	p, ok := s.state.Warehouse.Product(c.product)
	if !ok {
		s.printf("%s not found in the warehouse.\n\n", c.product)
		return subcommands.ExitFailure
	}
	s.printMarkdown(renderer.ProductMarkdown(c.product, p))
	return subcommands.ExitSuccess
}

type reviewCmd struct {
	from string
	to   string
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "review the recorded operations" }
func (*reviewCmd) Usage() string {
	return `review [-from <index>] [-to <index>]

  Prints the recorded operations from index 'from' (included, default the
  first one) to index 'to' (excluded, default past the last one).
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First operation index (inclusive)")
	f.StringVar(&c.to, "to", "", "Last operation index (exclusive)")
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionFrom(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	journal := s.state.Operations
	if journal.Len() == 0 {
		s.println("No operations recorded.")
		s.println()
		return subcommands.ExitSuccess
	}
	if err := s.ask(f, "from", &c.from, "Enter the starting index (leave empty to show from the beginning): "); err != nil {
		return subcommands.ExitFailure
	}
	if err := s.ask(f, "to", &c.to, "Enter the ending index (leave empty to show up to the last one): "); err != nil {
		return subcommands.ExitFailure
	}

	from, to, err := journal.ParseRange(c.from, c.to)
	if err != nil {
		return s.inputError(err, "Invalid input. Please enter valid indices.")
	}
	entries, err := journal.Review(from, to)
	if err != nil {
		s.log.Debug().Err(err).Msg("review rejected")
		s.println("Invalid range. Please try again.")
		s.println()
		return subcommands.ExitUsageError
	}
	s.printMarkdown(renderer.ReviewMarkdown(entries))
	return subcommands.ExitSuccess
}

type introductionCmd struct{}

func (*introductionCmd) Name() string     { return "introduction" }
func (*introductionCmd) Synopsis() string { return "explain how to simulate a product cycle" }
func (*introductionCmd) Usage() string {
	return `introduction

  Prints a short introduction to the simulator.
`
}
func (*introductionCmd) SetFlags(*flag.FlagSet) {}

func (*introductionCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionFrom(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	intro, err := docs.GetTopic("introduction")
	if err != nil {
		s.log.Error().Err(err).Msg("introduction unavailable")
		return subcommands.ExitFailure
	}
	s.printMarkdown(intro)
	s.println()
	return subcommands.ExitSuccess
}
