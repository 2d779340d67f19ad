package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/stockbook"
	"github.com/google/subcommands"
)

// --- Balance Command ---

type balanceCmd struct {
	amount string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "add to or subtract from the account balance" }
func (*balanceCmd) Usage() string {
	return `balance [-amount <amount>]

  Adds the amount to the account balance. A negative amount is a withdrawal.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount to add, negative to subtract")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionFrom(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	if err := s.ask(f, "amount", &c.amount, fmt.Sprintf("Enter the amount to add or subtract: %s ", s.state.Currency())); err != nil {
		return subcommands.ExitFailure
	}
	amount, err := stockbook.ParseMoney(c.amount, s.state.Currency())
	if err != nil {
		s.log.Debug().Err(err).Msg("balance rejected")
		s.println("Invalid input. Please enter a correct value.")
		s.println()
		return subcommands.ExitUsageError
	}

	op := s.state.UpdateBalance(amount)
	s.record(op)
	s.printf("New account balance: %s\n\n", s.state.Balance)
	return subcommands.ExitSuccess
}

// tradeFlags are the inputs shared by sales and purchases.
type tradeFlags struct {
	product  string
	price    string
	quantity string
}

func (t *tradeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.product, "product", "", "Product name")
	f.StringVar(&t.price, "price", "", "Price per unit")
	f.StringVar(&t.quantity, "quantity", "", "Number of units")
}

// read asks for the missing inputs. Parsing stops at the first invalid value,
// and the remaining ones are not asked for.
func (t *tradeFlags) read(s *session, f *flag.FlagSet, quantityLabel string) (stockbook.Money, stockbook.Quantity, error) {
	if err := s.ask(f, "product", &t.product, "Enter the product name: "); err != nil {
		return stockbook.Money{}, 0, err
	}
	if err := s.ask(f, "price", &t.price, fmt.Sprintf("Enter the product price: %s ", s.state.Currency())); err != nil {
		return stockbook.Money{}, 0, err
	}
	price, err := stockbook.ParseMoney(t.price, s.state.Currency())
	if err != nil {
		return stockbook.Money{}, 0, err
	}
	if err := s.ask(f, "quantity", &t.quantity, quantityLabel); err != nil {
		return stockbook.Money{}, 0, err
	}
	quantity, err := stockbook.ParseQuantity(t.quantity)
	if err != nil {
		return stockbook.Money{}, 0, err
	}
	return price, quantity, nil
}

// --- Sale Command ---

type saleCmd struct {
	tradeFlags
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "sell units of a product from the warehouse" }
func (*saleCmd) Usage() string {
	return `sale [-product <name>] [-price <price>] [-quantity <n>]

  Sells units of a product in stock. The proceeds are credited to the account.
`
}

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionFrom(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	price, quantity, err := c.read(s, f, "Enter the quantity sold: ")
	if err != nil {
		return s.inputError(err, "Invalid input. Please enter numeric values for price and quantity.")
	}

	op, err := s.state.Sell(c.product, price, quantity)
	switch {
	case errors.Is(err, stockbook.ErrProductNotFound), errors.Is(err, stockbook.ErrInsufficientStock):
		s.log.Debug().Err(err).Msg("sale rejected")
		s.println("Insufficient stock or product not found.")
		s.println()
		return subcommands.ExitFailure
	case err != nil:
		return s.inputError(err, "")
	}

	s.record(op)
	s.printf("Sale successful. %s added to account. New balance: %s\n\n", op.Total(), s.state.Balance)
	return subcommands.ExitSuccess
}

// --- Purchase Command ---

type purchaseCmd struct {
	tradeFlags
}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "buy units of a product into the warehouse" }
func (*purchaseCmd) Usage() string {
	return `purchase [-product <name>] [-price <price>] [-quantity <n>]

  Buys units of a product. The cost is debited from the account, which must
  hold enough money. The product price becomes the purchase price.
`
}

func (c *purchaseCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionFrom(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	price, quantity, err := c.read(s, f, "Enter the quantity purchased: ")
	if err != nil {
		return s.inputError(err, "Invalid input. Please enter numeric values for price and quantity.")
	}

	op, err := s.state.Buy(c.product, price, quantity)
	switch {
	case errors.Is(err, stockbook.ErrInsufficientFunds):
		s.log.Debug().Err(err).Msg("purchase rejected")
		s.println("Insufficient funds for this purchase.")
		s.println()
		return subcommands.ExitFailure
	case err != nil:
		return s.inputError(err, "")
	}

	s.record(op)
	s.printf("Purchase is successful. %s deducted from account. New balance: %s\n\n", op.Total(), s.state.Balance)
	return subcommands.ExitSuccess
}

// inputError reports a user input error. Reading errors (end of input) are
// only logged, the shell loop deals with them.
func (s *session) inputError(err error, message string) subcommands.ExitStatus {
	if !errors.Is(err, stockbook.ErrInvalidInput) {
		s.log.Debug().Err(err).Msg("input interrupted")
		return subcommands.ExitFailure
	}
	s.log.Debug().Err(err).Msg("invalid input")
	if message == "" {
		message = fmt.Sprintf("Invalid input: %v.", err)
	}
	s.println(message)
	s.println()
	return subcommands.ExitUsageError
}
