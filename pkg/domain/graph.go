package domain

// Node is one notebook cell retained as a graph node.
// IDs follow the "cell-{n}" convention (1-based over the non-blank cells)
// when the graph is auto-built, but a hand-edited graph may carry any ids.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Code  string `json:"code"`
}

// Edge is an inferred (or user-supplied) dependency between two cells.
// Labels carries the names the source defines and the target consumes,
// sorted lexicographically.
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Labels []string `json:"labels"`
}

// Graph is the node/edge collection handed to the transport layer.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
