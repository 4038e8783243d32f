package domain

// ExecutionLog records one successfully executed cell of a graph-driven run.
// Component is the index of the weakly connected component the cell belongs
// to, in discovery order.
type ExecutionLog struct {
	Node      string `json:"node"`
	Component int    `json:"component"`
	Stdout    string `json:"stdout"`
}

// GraphRunResult is the outcome of a graph-driven run.
// On failure, Stdout carries the failing cell's captured output plus the
// fault trace, and Logs holds everything that completed before the fault.
type GraphRunResult struct {
	OK         bool           `json:"ok"`
	FailedNode string         `json:"failed_node,omitempty"`
	Component  *int           `json:"component,omitempty"`
	Stdout     string         `json:"stdout,omitempty"`
	Logs       []ExecutionLog `json:"logs"`
}

// LinearLog records one successfully executed cell of a legacy linear run.
type LinearLog struct {
	Cell   string `json:"cell"`
	Stdout string `json:"stdout"`
}

// LinearRunResult is the outcome of a legacy linear run (no graph, one
// shared namespace). FailedCell is one past the last successful log.
type LinearRunResult struct {
	OK         bool        `json:"ok"`
	FailedCell string      `json:"failed_cell,omitempty"`
	Stdout     string      `json:"stdout,omitempty"`
	Logs       []LinearLog `json:"logs"`
}
