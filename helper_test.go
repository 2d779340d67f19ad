package stockbook

import "testing"

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// mustPurchase buys or fails the test.
func mustPurchase(t *testing.T, s *State, product string, price float64, quantity Quantity) {
	t.Helper()
	if _, err := s.Buy(product, EUR(price), quantity); err != nil {
		t.Fatalf("Buy(%q, %v, %d) returned an unexpected error: %v", product, price, quantity, err)
	}
}
