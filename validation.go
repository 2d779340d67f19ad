package stockbook

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// FileReport is the outcome of checking one state file.
type FileReport struct {
	Name    string // Name is the file name, e.g. "warehouse.txt".
	Path    string
	Present bool   // Present is false when the file does not exist, which is valid.
	Err     error  // Err explains why the file is invalid.
	Content string // Content is the offending content when the file is invalid.
}

// Valid reports whether the file can be loaded.
func (r FileReport) Valid() bool { return r.Err == nil }

// Validate checks the format of the state files in dir, without loading
// them. It returns one report per file and whether all of them are valid.
func Validate(dir string) ([]FileReport, bool) {
	checks := []struct {
		name  string
		check func([]byte) (string, error)
	}{
		{BalanceFile, validateBalance},
		{WarehouseFile, validateWarehouse},
		{OperationsFile, validateOperations},
	}

	ok := true
	reports := make([]FileReport, 0, len(checks))
	for _, c := range checks {
		r := FileReport{Name: c.name, Path: filepath.Join(dir, c.name)}
		content, err := os.ReadFile(r.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			r.Present = true
			r.Err = err
		default:
			r.Present = true
			r.Content, r.Err = c.check(content)
		}
		if r.Err != nil {
			ok = false
		} else {
			r.Content = ""
		}
		reports = append(reports, r)
	}
	return reports, ok
}

// validateBalance requires a single decimal number.
func validateBalance(content []byte) (string, error) {
	text := strings.TrimSpace(string(content))
	if _, err := decimal.NewFromString(text); err != nil {
		return text, errors.New("should contain only a number")
	}
	return "", nil
}

// validateWarehouse requires every non-blank line to be a product record
// with a name, a non-negative price and a non-negative whole quantity.
func validateWarehouse(content []byte) (string, error) {
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, err := validateProductRecord(line)
		if err != nil {
			return line, fmt.Errorf("line %d: %w", n, err)
		}
		if seen[name] {
			return line, fmt.Errorf("line %d: product %q is defined twice", n, name)
		}
		seen[name] = true
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", nil
}

func validateProductRecord(line string) (string, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()
	var record any
	if err := dec.Decode(&record); err != nil {
		return "", fmt.Errorf("not a product record: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return "", errors.New("unexpected content after the product record")
	}
	if _, ok := record.(map[string]any); !ok {
		return "", errors.New("product details must be an object")
	}

	v, err := jsonpath.Get("$.product", record)
	if err != nil {
		return "", errors.New("product details must contain 'product'")
	}
	name, ok := v.(string)
	if !ok || name == "" {
		return "", errors.New("'product' must be a non-empty string")
	}

	v, err = jsonpath.Get("$.price", record)
	if err != nil {
		return name, errors.New("product details must contain 'price'")
	}
	price, ok := v.(json.Number)
	if !ok {
		return name, fmt.Errorf("'price' of %q must be a number", name)
	}
	if d, err := decimal.NewFromString(price.String()); err != nil || d.IsNegative() {
		return name, fmt.Errorf("'price' of %q must be a non-negative number", name)
	}

	v, err = jsonpath.Get("$.quantity", record)
	if err != nil {
		return name, errors.New("product details must contain 'quantity'")
	}
	quantity, ok := v.(json.Number)
	if !ok {
		return name, fmt.Errorf("'quantity' of %q must be a number", name)
	}
	if q, err := quantity.Int64(); err != nil || q < 0 {
		return name, fmt.Errorf("'quantity' of %q must be a non-negative whole number", name)
	}
	return name, nil
}

// validateOperations requires every non-blank line to start with a known prefix.
func validateOperations(content []byte) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := ParseCommandType(strings.TrimSpace(line)); err != nil {
			return line, fmt.Errorf("invalid operation format at line %d", n)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", nil
}
