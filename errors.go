package stockbook

import "errors"

// Errors returned by State and Journal operations. None of them leaves the
// state modified.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidRange      = errors.New("invalid range")
)
