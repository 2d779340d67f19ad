package renderer

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/stockbook"
)

func TestInventoryMarkdown(t *testing.T) {
	s := stockbook.NewState("EUR")
	if got, want := InventoryMarkdown(s.Warehouse), "The warehouse is empty.\n"; got != want {
		t.Errorf("InventoryMarkdown() of an empty warehouse = %q, want %q", got, want)
	}

	s.UpdateBalance(stockbook.M(100, "EUR"))
	if _, err := s.Buy("widget", stockbook.M(10, "EUR"), 5); err != nil {
		t.Fatalf("Buy() returned an unexpected error: %v", err)
	}
	if _, err := s.Buy("bolt", stockbook.M(0.5, "EUR"), 2); err != nil {
		t.Fatalf("Buy() returned an unexpected error: %v", err)
	}

	got := InventoryMarkdown(s.Warehouse)
	for _, want := range []string{"Current inventory", "| widget", "10.00 EUR", "| bolt", "0.50 EUR"} {
		if !strings.Contains(got, want) {
			t.Errorf("InventoryMarkdown() output is missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "bolt") > strings.Index(got, "widget") {
		t.Errorf("InventoryMarkdown() should list products by name:\n%s", got)
	}
}

func TestProductMarkdown(t *testing.T) {
	got := ProductMarkdown("widget", stockbook.Product{Price: stockbook.M(10, "EUR"), Quantity: 2})
	if want := "widget: 10.00 EUR, Quantity: 2\n"; got != want {
		t.Errorf("ProductMarkdown() = %q, want %q", got, want)
	}
}

func TestReviewMarkdown(t *testing.T) {
	got := ReviewMarkdown([]stockbook.Entry{{Index: 3, Text: "Balance update: 1.00 EUR"}, {Index: 4, Text: "Sale: 1x a at 1.00 EUR each, total: 1.00 EUR"}})
	for _, want := range []string{"Recorded operations", "| 3 ", "Balance update: 1.00 EUR", "| 4 "} {
		if !strings.Contains(got, want) {
			t.Errorf("ReviewMarkdown() output is missing %q:\n%s", want, got)
		}
	}
}

func TestMarkdownTablesKeepLongCells(t *testing.T) {
	sale := "Sale: 3x widget at 12.00 EUR each, total: 36.00 EUR"
	got := ReviewMarkdown([]stockbook.Entry{{Index: 0, Text: sale}})
	if !strings.Contains(got, "| 0 ") || !strings.Contains(got, sale) {
		t.Errorf("ReviewMarkdown() split the operation across rows:\n%s", got)
	}

	long := "an extremely long product name for the table"
	s := stockbook.NewState("EUR")
	s.UpdateBalance(stockbook.M(10, "EUR"))
	if _, err := s.Buy(long, stockbook.M(1, "EUR"), 1); err != nil {
		t.Fatalf("Buy() returned an unexpected error: %v", err)
	}
	got = InventoryMarkdown(s.Warehouse)
	if !strings.Contains(got, long) {
		t.Errorf("InventoryMarkdown() split the product name across rows:\n%s", got)
	}
}

func TestValidationMarkdown(t *testing.T) {
	got := ValidationMarkdown([]stockbook.FileReport{
		{Name: stockbook.BalanceFile, Present: true},
		{Name: stockbook.WarehouseFile},
		{Name: stockbook.OperationsFile, Present: true, Err: errors.New("invalid operation format at line 2"), Content: "Refund"},
	})
	want := "✓ account_balance.txt format is valid\n" +
		"✕ operations.txt format is invalid.\n" +
		"Error: invalid operation format at line 2\n" +
		"Current content: Refund\n"
	if got != want {
		t.Errorf("ValidationMarkdown() = %q, want %q", got, want)
	}
}

func TestMenu(t *testing.T) {
	got := Menu([]string{"balance", "end"})
	for _, want := range []string{"available Commands", "- balance", "- end"} {
		if !strings.Contains(got, want) {
			t.Errorf("Menu() output is missing %q:\n%s", want, got)
		}
	}
}
