// Breadth-first traversal over the graph's adjacency lists, ignoring edge
// weights. Useful for connectivity and hop-count questions about the
// processing topology where edge costs are irrelevant.
package graph

import "github.com/eapache/queue"

// BFSResult holds the outcome of a breadth-first traversal.
//
// Order lists node ids in visit order, starting with the source.
// Depth[v] is the hop count from the source, or -1 if v was not reached.
// Parent[v] is the node v was discovered from, or -1 for the source and
// for unreached nodes.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
}

// BFS runs a breadth-first traversal from source, visiting every reachable
// node in increasing hop distance. Neighbors are explored in edge insertion
// order. Returns a wrapped ErrIndexOutOfRange for an invalid source.
//
// Complexity: O(V + E) time and space.
func (g *Graph) BFS(source int) (*BFSResult, error) {
	if err := g.checkNode(source); err != nil {
		return nil, err
	}

	res := &BFSResult{
		Order:  make([]int, 0, g.numNodes),
		Depth:  make([]int, g.numNodes),
		Parent: make([]int, g.numNodes),
	}
	for i := 0; i < g.numNodes; i++ {
		res.Depth[i] = unreached
		res.Parent[i] = unreached
	}

	// Seed the frontier with the source at depth 0.
	res.Depth[source] = 0
	frontier := queue.New()
	frontier.Add(source)

	for frontier.Length() > 0 {
		u := frontier.Remove().(int)
		res.Order = append(res.Order, u)

		for _, e := range g.adj[u] {
			// First discovery fixes depth and parent.
			if res.Depth[e.To] != unreached {
				continue
			}
			res.Depth[e.To] = res.Depth[u] + 1
			res.Parent[e.To] = u
			frontier.Add(e.To)
		}
	}

	return res, nil
}
