package stockbook

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Names of the files holding the state, inside the data directory.
const (
	BalanceFile    = "account_balance.txt"
	WarehouseFile  = "warehouse.txt"
	OperationsFile = "operations.txt"
)

// DataFiles lists the state files in load order.
var DataFiles = []string{BalanceFile, WarehouseFile, OperationsFile}

// HasData reports whether any state file exists in dir.
func HasData(dir string) bool {
	for _, name := range DataFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// Load reads the state saved in dir. Missing files leave the matching part
// of the state empty.
//
// On error, Load returns an empty state along with the error so that callers
// can carry on with defaults.
func Load(dir, currency string) (*State, error) {
	s := NewState(currency)
	err := loadFile(dir, BalanceFile, func(r io.Reader) (err error) {
		s.Balance, err = DecodeBalance(r, s.Currency())
		return err
	})
	if err == nil {
		err = loadFile(dir, WarehouseFile, func(r io.Reader) (err error) {
			s.Warehouse, err = DecodeWarehouse(r, s.Currency())
			return err
		})
	}
	if err == nil {
		err = loadFile(dir, OperationsFile, func(r io.Reader) (err error) {
			s.Operations, err = DecodeJournal(r)
			return err
		})
	}
	if err != nil {
		return NewState(currency), err
	}
	return s, nil
}

// loadFile opens dir/name and decodes it. A missing file is not an error.
func loadFile(dir, name string, decode func(io.Reader) error) error {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()

	if err := decode(f); err != nil {
		return fmt.Errorf("could not decode %q: %w", path, err)
	}
	return nil
}

// Save writes the state into dir, one file per part. Every file is
// attempted, errors are joined.
func Save(dir string, s *State) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return errors.Join(
		saveFile(dir, BalanceFile, func(w io.Writer) error { return EncodeBalance(w, s.Balance) }),
		saveFile(dir, WarehouseFile, func(w io.Writer) error { return EncodeWarehouse(w, s.Warehouse) }),
		saveFile(dir, OperationsFile, func(w io.Writer) error { return EncodeJournal(w, s.Operations) }),
	)
}

// saveFile truncates dir/name and encodes into it.
func saveFile(dir, name string, encode func(io.Writer) error) (err error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("error closing %q: %w", path, cerr)
		}
	}()

	if err := encode(f); err != nil {
		return fmt.Errorf("error writing %q: %w", path, err)
	}
	return nil
}
