package stockbook

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeWarehouse(t *testing.T) {
	wh := NewWarehouse()
	wh.set("widget", Product{Price: EUR(10), Quantity: 5})
	wh.set("bolt", Product{Price: EUR(0.25), Quantity: 0})

	var buf bytes.Buffer
	if err := EncodeWarehouse(&buf, wh); err != nil {
		t.Fatalf("EncodeWarehouse() returned an unexpected error: %v", err)
	}

	want := `{"product":"bolt","price":0.25,"quantity":0}
{"product":"widget","price":10,"quantity":5}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeWarehouse() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestDecodeWarehouse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "valid", input: "{\"product\":\"a\",\"price\":1.5,\"quantity\":2}\n\n{\"product\":\"b\",\"price\":0,\"quantity\":0}\n"},
		{name: "duplicate", input: "{\"product\":\"a\",\"price\":1,\"quantity\":2}\n{\"product\":\"a\",\"price\":1,\"quantity\":2}\n", wantErr: "defined twice"},
		{name: "negative quantity", input: `{"product":"a","price":1,"quantity":-2}`, wantErr: "negative"},
		{name: "missing name", input: `{"price":1,"quantity":2}`, wantErr: "name missing"},
		{name: "literal dict", input: `{'a': {'price': 1.0, 'quantity': 2}}`, wantErr: "line 1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wh, err := DecodeWarehouse(strings.NewReader(tc.input), "EUR")
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("DecodeWarehouse() returned an unexpected error: %v", err)
				}
				if wh.Len() != 2 {
					t.Errorf("DecodeWarehouse() decoded %d products, want 2", wh.Len())
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodeWarehouse() error: got %v, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := NewState("EUR")
	s.UpdateBalance(EUR(100.1))
	mustPurchase(t, s, "widget", 10.05, 5)
	mustPurchase(t, s, "gadget with spaces", 0.333, 3)
	if _, err := s.Sell("widget", EUR(12), 5); err != nil {
		t.Fatalf("Sell() returned an unexpected error: %v", err)
	}

	if err := Save(dir, s); err != nil {
		t.Fatalf("Save() returned an unexpected error: %v", err)
	}
	got, err := Load(dir, "EUR")
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}

	if !got.Balance.Equal(s.Balance) {
		t.Errorf("balance: got %s, want %s", got.Balance, s.Balance)
	}
	if !got.Warehouse.Equal(s.Warehouse) {
		t.Errorf("warehouse: got %v, want %v", got.Warehouse.Names(), s.Warehouse.Names())
	}
	if diff := cmp.Diff(s.Operations.Lines(), got.Operations.Lines()); diff != "" {
		t.Errorf("operations mismatch (-want +got):\n%s", diff)
	}

	// A loaded state passes validation.
	if reports, ok := Validate(dir); !ok {
		t.Errorf("Validate() rejected files written by Save(): %+v", reports)
	}
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(t.TempDir(), "EUR")
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if !s.Balance.IsZero() || !s.Warehouse.IsEmpty() || s.Operations.Len() != 0 {
		t.Errorf("Load() of an empty directory: got balance=%s, products=%d, operations=%d", s.Balance, s.Warehouse.Len(), s.Operations.Len())
	}
}

func TestLoad_FallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, BalanceFile, "42")
	writeFile(t, dir, WarehouseFile, "not a record")

	s, err := Load(dir, "EUR")
	if err == nil {
		t.Fatal("Load() expected an error for a malformed warehouse")
	}
	if !strings.Contains(err.Error(), WarehouseFile) {
		t.Errorf("Load() error should name the file, got %v", err)
	}
	if !s.Balance.IsZero() || !s.Warehouse.IsEmpty() {
		t.Errorf("Load() should fall back to an empty state, got balance=%s, products=%d", s.Balance, s.Warehouse.Len())
	}
}

func TestHasData(t *testing.T) {
	dir := t.TempDir()
	if HasData(dir) {
		t.Errorf("HasData() = true for an empty directory")
	}
	writeFile(t, dir, OperationsFile, "")
	if !HasData(dir) {
		t.Errorf("HasData() = false with %s present", OperationsFile)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}
