package data

import (
	"fmt"
	"time"
)

// DataGapError reports missing historical coverage for a requested
// range or household count. It is fatal to a run: the engine cannot
// substitute values silently without corrupting the output series.
type DataGapError struct {
	What string
	From time.Time
	To   time.Time
}

func (e *DataGapError) Error() string {
	if e.From.IsZero() && e.To.IsZero() {
		return fmt.Sprintf("data gap: %s", e.What)
	}
	return fmt.Sprintf("data gap: %s (requested %s .. %s)",
		e.What, e.From.Format(time.RFC3339), e.To.Format(time.RFC3339))
}
