package stockbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// productRecord is the persisted form of one warehouse product, one per line.
//
//	{"product":"widget","price":10,"quantity":5}
type productRecord struct {
	Product  string          `json:"product"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// MarshalJSON keeps the product name first.
func (r productRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("product", r.Product)
	w.Append("price", r.Price)
	w.Append("quantity", r.Quantity)
	return w.MarshalJSON()
}

// EncodeBalance writes the balance amount as plain decimal text.
func EncodeBalance(w io.Writer, balance Money) error {
	if _, err := io.WriteString(w, balance.Decimal().String()); err != nil {
		return fmt.Errorf("failed to write balance: %w", err)
	}
	return nil
}

// DecodeBalance reads a balance written by EncodeBalance.
func DecodeBalance(r io.Reader, currency string) (Money, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Money{}, fmt.Errorf("error reading from input: %w", err)
	}
	return ParseMoney(string(content), currency)
}

// EncodeWarehouse writes one JSON record per product, sorted by product name.
func EncodeWarehouse(w io.Writer, wh *Warehouse) error {
	for name, p := range wh.All() {
		line, err := json.Marshal(productRecord{Product: name, Price: p.Price.Decimal(), Quantity: int64(p.Quantity)})
		if err != nil {
			return fmt.Errorf("failed to marshal product %q: %w", name, err)
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("failed to write product %q: %w", name, err)
		}
	}
	return nil
}

// DecodeWarehouse reads the records written by EncodeWarehouse. Blank lines are skipped.
func DecodeWarehouse(r io.Reader, currency string) (*Warehouse, error) {
	wh := NewWarehouse()
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var rec productRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not decode product at line %d: %w", n, err)
		}
		if rec.Product == "" {
			return nil, fmt.Errorf("product name missing at line %d", n)
		}
		if _, dup := wh.Product(rec.Product); dup {
			return nil, fmt.Errorf("product %q is defined twice (line %d)", rec.Product, n)
		}
		if rec.Price.IsNegative() || rec.Quantity < 0 {
			return nil, fmt.Errorf("product %q has a negative price or quantity (line %d)", rec.Product, n)
		}
		wh.set(rec.Product, Product{Price: M(rec.Price, currency), Quantity: Quantity(rec.Quantity)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return wh, nil
}

// EncodeJournal writes one operation per line.
func EncodeJournal(w io.Writer, j *Journal) error {
	bw := bufio.NewWriter(w)
	for _, line := range j.All() {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write operations: %w", err)
	}
	return nil
}

// DecodeJournal reads the lines written by EncodeJournal. Surrounding spaces
// are trimmed and blank lines are skipped.
func DecodeJournal(r io.Reader) (*Journal, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return &Journal{lines: lines}, nil
}
