package stockbook

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Journal is the operations log: an append-only list of operation
// descriptions in chronological order.
type Journal struct {
	lines []string
}

// Entry is a journal line and its position in the journal.
type Entry struct {
	Index int
	Text  string
}

// NewJournal creates a journal holding lines, in that order.
func NewJournal(lines ...string) *Journal {
	return &Journal{lines: slices.Clone(lines)}
}

// Append records an operation at the end of the journal.
func (j *Journal) Append(op Operation) {
	j.lines = append(j.lines, op.String())
}

// Len returns the number of recorded operations.
func (j *Journal) Len() int { return len(j.lines) }

// Lines returns a copy of all recorded lines.
func (j *Journal) Lines() []string { return slices.Clone(j.lines) }

// All iterates over the journal in chronological order.
func (j *Journal) All() iter.Seq2[int, string] {
	return slices.All(j.lines)
}

// Review returns the entries in [from, to).
//
// The range is valid only when 0 <= from < to <= Len().
func (j *Journal) Review(from, to int) ([]Entry, error) {
	if from < 0 || from >= to || to > len(j.lines) {
		return nil, fmt.Errorf("%w: [%d, %d) in a journal of %d operations", ErrInvalidRange, from, to, len(j.lines))
	}
	entries := make([]Entry, 0, to-from)
	for i := from; i < to; i++ {
		entries = append(entries, Entry{Index: i, Text: j.lines[i]})
	}
	return entries, nil
}

// ParseRange converts user-typed review bounds into a range of the journal.
// An empty from means the first operation, an empty to means past the last one.
func (j *Journal) ParseRange(from, to string) (int, int, error) {
	f, t := 0, len(j.lines)
	var err error
	if from = strings.TrimSpace(from); from != "" {
		if f, err = strconv.Atoi(from); err != nil {
			return 0, 0, fmt.Errorf("%w: index %q is not a whole number", ErrInvalidInput, from)
		}
	}
	if to = strings.TrimSpace(to); to != "" {
		if t, err = strconv.Atoi(to); err != nil {
			return 0, 0, fmt.Errorf("%w: index %q is not a whole number", ErrInvalidInput, to)
		}
	}
	return f, t, nil
}
