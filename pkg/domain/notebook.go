package domain

import "time"

// Notebook is an uploaded notebook retained by a store adapter.
// Cells holds the non-blank code cell sources in authoring order; the
// dependency graph is rebuilt from them on demand rather than persisted.
type Notebook struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Cells     []string  `json:"cells"`
	CreatedAt time.Time `json:"created_at"`
}
