package stockbook

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// State is everything the simulator tracks: the account balance, the
// warehouse and the operations log.
type State struct {
	Balance    Money
	Warehouse  *Warehouse
	Operations *Journal
}

// NewState creates an empty state with a zero balance in currency.
func NewState(currency string) *State {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &State{
		Balance:    M(0, currency),
		Warehouse:  NewWarehouse(),
		Operations: NewJournal(),
	}
}

// Currency returns the currency of the account.
func (s *State) Currency() string { return s.Balance.Currency() }

// UpdateBalance adds amount to the balance; a negative amount is a withdrawal.
func (s *State) UpdateBalance(amount Money) BalanceUpdate {
	op := BalanceUpdate{Amount: amount.In(s.Currency())}
	s.Balance = s.Balance.Add(op.Amount)
	s.Operations.Append(op)
	return op
}

// Buy pays for quantity units of product at price each. The product is
// created if needed, otherwise its quantity grows and its price becomes price.
//
// It fails with ErrInsufficientFunds when the cost exceeds the balance.
func (s *State) Buy(product string, price Money, quantity Quantity) (Purchase, error) {
	op := Purchase{Product: strings.TrimSpace(product), Price: price.In(s.Currency()), Quantity: quantity}
	if err := checkTrade(op.Product, op.Price, op.Quantity); err != nil {
		return op, err
	}
	cost := op.Total()
	if cost.GreaterThan(s.Balance) {
		return op, fmt.Errorf("%w: %s costs %s, balance is %s", ErrInsufficientFunds, op.Product, cost, s.Balance)
	}

	stock, _ := s.Warehouse.Product(op.Product)
	if op.Quantity > math.MaxInt64-stock.Quantity {
		return op, fmt.Errorf("%w: %d more %s would exceed the warehouse capacity", ErrInvalidInput, op.Quantity, op.Product)
	}
	s.Warehouse.set(op.Product, Product{Price: op.Price, Quantity: stock.Quantity + op.Quantity})
	s.Balance = s.Balance.Sub(cost)
	s.Operations.Append(op)
	return op, nil
}

// Sell removes quantity units of product from the warehouse and credits
// price for each unit.
//
// It fails with ErrProductNotFound or ErrInsufficientStock.
func (s *State) Sell(product string, price Money, quantity Quantity) (Sale, error) {
	op := Sale{Product: strings.TrimSpace(product), Price: price.In(s.Currency()), Quantity: quantity}
	if err := checkTrade(op.Product, op.Price, op.Quantity); err != nil {
		return op, err
	}
	stock, ok := s.Warehouse.Product(op.Product)
	if !ok {
		return op, fmt.Errorf("%w: %q", ErrProductNotFound, op.Product)
	}
	if stock.Quantity < op.Quantity {
		return op, fmt.Errorf("%w: %d %s in stock, %d requested", ErrInsufficientStock, stock.Quantity, op.Product, op.Quantity)
	}

	stock.Quantity -= op.Quantity
	s.Warehouse.set(op.Product, stock)
	s.Balance = s.Balance.Add(op.Total())
	s.Operations.Append(op)
	return op, nil
}

// checkTrade validates the user inputs of a purchase or a sale.
func checkTrade(product string, price Money, quantity Quantity) error {
	if product == "" {
		return fmt.Errorf("%w: product name is missing", ErrInvalidInput)
	}
	if strings.ContainsFunc(product, unicode.IsControl) {
		return fmt.Errorf("%w: product name %q contains control characters", ErrInvalidInput, product)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price %s is negative", ErrInvalidInput, price)
	}
	if !quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidInput, quantity)
	}
	return nil
}
