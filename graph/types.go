// Package graph core types: the half-edge stored in adjacency lists,
// sentinel errors, and per-edge functional options.
package graph

import "errors"

// ErrIndexOutOfRange indicates a node id outside [0, NumNodes()).
// Passing an invalid id is a programming error, not a recoverable
// condition: the operation is aborted and the graph is left untouched.
var ErrIndexOutOfRange = errors.New("graph: node index out of range")

// unreached is the sentinel for "no distance/predecessor recorded yet" in
// per-query state, mirrored by the -1 values exposed through BFSResult.
const unreached = -1

// defaultWeight is the edge weight used when WithWeight is not supplied.
const defaultWeight = 1.0

// Edge is a half-edge in a node's adjacency list: the neighbor it leads to
// and the weight of the connection. An undirected edge (u, v, w) appears as
// Edge{v, w} in u's list and Edge{u, w} in v's list.
type Edge struct {
	// To is the neighboring node id.
	To int

	// Weight is the cost of traversing the edge. Dijkstra's correctness
	// requires it to be non-negative; it is stored as given.
	Weight float64
}

// EdgeOption configures properties of an individual edge as it is added.
type EdgeOption func(*Edge)

// WithWeight overrides the default edge weight of 1.0.
func WithWeight(weight float64) EdgeOption {
	return func(e *Edge) { e.Weight = weight }
}
