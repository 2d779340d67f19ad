package stockbook

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		files       map[string]string
		wantOK      bool
		wantInvalid string // name of the invalid file, if any
		wantContent string
	}{
		{
			name:   "no files",
			wantOK: true,
		},
		{
			name: "all valid",
			files: map[string]string{
				BalanceFile:    "50.0\n",
				WarehouseFile:  "{\"product\":\"widget\",\"price\":10,\"quantity\":5}\n",
				OperationsFile: "Balance update: 100.0 EUR\nPurchase: 5x widget at 10.00 EUR each, total: 50.00 EUR\nSale is: 1x widget at 12.00 EUR each, total EUR12.00\n",
			},
			wantOK: true,
		},
		{
			name:        "balance not a number",
			files:       map[string]string{BalanceFile: "fifty"},
			wantInvalid: BalanceFile,
			wantContent: "fifty",
		},
		{
			name:        "empty balance",
			files:       map[string]string{BalanceFile: ""},
			wantInvalid: BalanceFile,
		},
		{
			name:        "price missing",
			files:       map[string]string{WarehouseFile: `{"product":"widget","quantity":5}`},
			wantInvalid: WarehouseFile,
			wantContent: `{"product":"widget","quantity":5}`,
		},
		{
			name:        "price is a string",
			files:       map[string]string{WarehouseFile: `{"product":"widget","price":"10","quantity":5}`},
			wantInvalid: WarehouseFile,
		},
		{
			name:        "fractional quantity",
			files:       map[string]string{WarehouseFile: `{"product":"widget","price":10,"quantity":1.5}`},
			wantInvalid: WarehouseFile,
		},
		{
			name:        "trailing content",
			files:       map[string]string{WarehouseFile: `{"product":"widget","price":10,"quantity":1} {}`},
			wantInvalid: WarehouseFile,
		},
		{
			name:        "not an object",
			files:       map[string]string{WarehouseFile: `["widget", 10, 5]`},
			wantInvalid: WarehouseFile,
		},
		{
			name:        "unknown operation",
			files:       map[string]string{OperationsFile: "Balance update: 1 EUR\nRefund: 1 EUR\n"},
			wantInvalid: OperationsFile,
			wantContent: "Refund: 1 EUR",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tc.files {
				writeFile(t, dir, name, content)
			}

			reports, ok := Validate(dir)
			if ok != tc.wantOK {
				t.Errorf("Validate() ok = %v, want %v", ok, tc.wantOK)
			}
			if len(reports) != 3 {
				t.Fatalf("Validate() returned %d reports, want 3", len(reports))
			}
			for _, r := range reports {
				_, present := tc.files[r.Name]
				if r.Present != present {
					t.Errorf("%s: Present = %v, want %v", r.Name, r.Present, present)
				}
				if r.Name != tc.wantInvalid {
					if !r.Valid() {
						t.Errorf("%s: unexpected error %v", r.Name, r.Err)
					}
					continue
				}
				if r.Valid() {
					t.Errorf("%s: expected an error", r.Name)
				}
				if tc.wantContent != "" && !strings.Contains(r.Content, tc.wantContent) {
					t.Errorf("%s: Content = %q, want it to contain %q", r.Name, r.Content, tc.wantContent)
				}
			}
		})
	}
}
