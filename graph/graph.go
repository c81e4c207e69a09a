package graph

import "fmt"

// Graph is an undirected, weighted graph over the node ids [0, NumNodes()).
//
// The node count is fixed at construction; the edge set is append-only.
// Graph carries no internal synchronization: callers sharing an instance
// across goroutines must serialize AddEdge and query calls externally.
type Graph struct {
	numNodes int
	numEdges int      // undirected edges inserted
	adj      [][]Edge // adj[u] holds u's half-edges in insertion order
}

// New returns a Graph with numNodes nodes and no edges.
// A negative numNodes is treated as 0, yielding a graph on which every
// operation fails index validation.
func New(numNodes int) *Graph {
	if numNodes < 0 {
		numNodes = 0
	}

	return &Graph{
		numNodes: numNodes,
		adj:      make([][]Edge, numNodes),
	}
}

// NumNodes returns the fixed node count the graph was created with.
func (g *Graph) NumNodes() int {
	return g.numNodes
}

// NumEdges returns the number of undirected edges successfully inserted.
func (g *Graph) NumEdges() int {
	return g.numEdges
}

// AddEdge inserts an undirected edge between u and v with weight 1.0,
// overridable via WithWeight. The edge is appended symmetrically to both
// adjacency lists and the edge count advances by one.
//
// Returns a wrapped ErrIndexOutOfRange when u or v lies outside
// [0, NumNodes()); the graph is left untouched in that case.
func (g *Graph) AddEdge(u, v int, opts ...EdgeOption) error {
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}

	e := Edge{Weight: defaultWeight}
	for _, opt := range opts {
		opt(&e)
	}

	// Symmetric insertion: one undirected edge, two half-edges.
	e.To = v
	g.adj[u] = append(g.adj[u], e)
	e.To = u
	g.adj[v] = append(g.adj[v], e)
	g.numEdges++

	return nil
}

// Neighbors returns a copy of u's adjacency list in insertion order, or a
// wrapped ErrIndexOutOfRange for an invalid id.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if err := g.checkNode(u); err != nil {
		return nil, err
	}

	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// checkNode validates that id names a node of the graph.
func (g *Graph) checkNode(id int) error {
	if id < 0 || id >= g.numNodes {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, id, g.numNodes)
	}

	return nil
}
