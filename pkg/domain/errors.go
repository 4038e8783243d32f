package domain

import (
	"errors"
	"fmt"
)

// ErrNotebookNotFound is returned when a notebook ID cannot be found in the store.
var ErrNotebookNotFound = errors.New("notebook not found")

// CellFault reports a failed cell execution (parse or runtime).
// Output carries everything the cell wrote before the failure, with the
// full fault trace appended. A fault aborts the current run.
type CellFault struct {
	Node   string
	Output string
}

func (f *CellFault) Error() string {
	return fmt.Sprintf("cell %s failed: %s", f.Node, f.Output)
}
