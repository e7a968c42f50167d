package sim

import (
	"fmt"
	"sync"

	"demandsim/internal/model"
)

// Aggregator owns the accumulating result table. Rows are appended
// strictly in interval order, exactly one per interval, and the table
// is only readable once finalized — an aborted run never publishes a
// partial result set.
type Aggregator struct {
	mu        sync.Mutex
	rows      []model.ResultRow
	next      int
	finalized bool
}

func NewAggregator(capacity int) *Aggregator {
	return &Aggregator{rows: make([]model.ResultRow, 0, capacity)}
}

// Append adds the finalized row for interval i. Out-of-order or
// duplicate appends are programming errors and rejected.
func (a *Aggregator) Append(i int, row model.ResultRow) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return fmt.Errorf("append after finalize")
	}
	if i != a.next {
		return fmt.Errorf("row for interval %d appended out of order, want %d", i, a.next)
	}
	a.rows = append(a.rows, row)
	a.next++
	return nil
}

// Finalize seals the table and returns it. Errors if the row count
// does not match the expected horizon.
func (a *Aggregator) Finalize(expected int) ([]model.ResultRow, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return nil, fmt.Errorf("already finalized")
	}
	if len(a.rows) != expected {
		return nil, fmt.Errorf("finalized with %d rows, want %d", len(a.rows), expected)
	}
	a.finalized = true
	return a.rows, nil
}
