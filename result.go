package postgres

import (
	"runtime"

	"github.com/guestkit/postgres/driver"
)

// nullText is how a NULL cell is rendered during iteration.
const nullText = "(null)"

// Result owns a completed query's rows until closed. Row and column counts
// are read from the capability once, at construction.
type Result struct {
	rows        driver.ResultSet
	rowCount    uint64
	columnCount uint64
	closed      bool
	iterating   bool
}

func newResult(rows driver.ResultSet) *Result {
	r := &Result{
		rows:        rows,
		rowCount:    uint64(rows.RowCount()),
		columnCount: uint64(rows.ColumnCount()),
	}

	// Explicit Close and end-of-lifetime collection share the same
	// idempotent release, so the native result is freed exactly once.
	runtime.SetFinalizer(r, (*Result).finalize)

	return r
}

// RowCount returns the number of rows in the result, and 0 once the Result
// has been closed.
func (r *Result) RowCount() uint64 { return r.rowCount }

// Close releases the result. The first call frees the capability's result
// set and zeroes the row count; later calls do nothing and return nil.
func (r *Result) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.rowCount = 0
	runtime.SetFinalizer(r, nil)
	return r.rows.Close()
}

// EachRow calls fn once per row in ascending row order. Each row is
// delivered as one string per column, with NULL cells rendered as
// "(null)". A closed or empty result is a no-op. The first error returned
// by fn stops iteration and is returned as-is; re-entering EachRow from
// inside fn fails with ErrIterationInProgress.
func (r *Result) EachRow(fn func(row []string) error) error {
	if r.closed || r.rows == nil || r.rowCount == 0 {
		return nil
	}
	if r.iterating {
		return ErrIterationInProgress
	}
	r.iterating = true
	defer func() { r.iterating = false }()

	for row := 0; row < int(r.rowCount); row++ {
		cells := make([]string, r.columnCount)
		for col := range cells {
			text, null := r.rows.Value(row, col)
			if null {
				text = nullText
			}
			cells[col] = text
		}
		if err := fn(cells); err != nil {
			return err
		}
	}

	return nil
}

func (r *Result) finalize() { _ = r.Close() }
