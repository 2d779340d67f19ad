package stockbook

import (
	"fmt"
	"strings"
)

// CommandType is a typed string for identifying operations.
type CommandType string

// Command types used for identifying operations.
const (
	CmdBalance  CommandType = "balance"
	CmdPurchase CommandType = "purchase"
	CmdSale     CommandType = "sale"
)

// Line prefixes of the operations log, one per command type.
const (
	PrefixBalance  = "Balance update:"
	PrefixPurchase = "Purchase:"
	PrefixSale     = "Sale:"

	// written by early versions of the simulator.
	legacyPrefixSale = "Sale is:"
)

// Operation is a completed action on the state. Its String form is the line
// recorded in the operations log.
type Operation interface {
	What() CommandType
	String() string
}

// ParseCommandType returns the command type of a log line from its prefix.
func ParseCommandType(line string) (CommandType, error) {
	switch {
	case strings.HasPrefix(line, PrefixBalance):
		return CmdBalance, nil
	case strings.HasPrefix(line, PrefixPurchase):
		return CmdPurchase, nil
	case strings.HasPrefix(line, PrefixSale), strings.HasPrefix(line, legacyPrefixSale):
		return CmdSale, nil
	}
	return "", fmt.Errorf("unknown operation %q", line)
}

// BalanceUpdate is a deposit (positive amount) or a withdrawal (negative amount).
type BalanceUpdate struct {
	Amount Money
}

func (BalanceUpdate) What() CommandType { return CmdBalance }

func (b BalanceUpdate) String() string {
	return fmt.Sprintf("%s %s", PrefixBalance, b.Amount)
}

// Purchase adds Quantity units of Product to the warehouse at Price each.
type Purchase struct {
	Product  string
	Price    Money
	Quantity Quantity
}

func (Purchase) What() CommandType { return CmdPurchase }

// Total returns the cost of the purchase.
func (p Purchase) Total() Money { return p.Price.Mul(p.Quantity) }

func (p Purchase) String() string {
	return fmt.Sprintf("%s %dx %s at %s each, total: %s", PrefixPurchase, p.Quantity, p.Product, p.Price, p.Total())
}

// Sale removes Quantity units of Product from the warehouse, sold at Price each.
type Sale struct {
	Product  string
	Price    Money
	Quantity Quantity
}

func (Sale) What() CommandType { return CmdSale }

// Total returns the proceeds of the sale.
func (s Sale) Total() Money { return s.Price.Mul(s.Quantity) }

func (s Sale) String() string {
	return fmt.Sprintf("%s %dx %s at %s each, total: %s", PrefixSale, s.Quantity, s.Product, s.Price, s.Total())
}
