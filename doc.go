// Package stockbook simulates the books of a small trading company: a cash
// account, a warehouse of products and a log of every operation.
//
// The core functionalities include:
//   - State: the account balance, the warehouse (product name to price and
//     quantity) and the operations journal, grouped in a State value.
//   - Operations: balance updates, purchases and sales. Each one checks its
//     business rules (sufficient funds, sufficient stock) before mutating
//     anything, and appends a line to the journal when it succeeds.
//   - Persistence: the state is kept in three text files, a plain decimal
//     balance, JSON lines for the warehouse and one line per operation. The
//     files can be validated before they are loaded.
//
// This package serves as the foundational logic for the `sbk` command-line
// tool.
package stockbook
