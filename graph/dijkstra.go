// Dijkstra shortest-path query over the graph's adjacency lists.
//
// The implementation uses a min-heap priority queue with the lazy
// decrease-key strategy: improving a node's tentative distance pushes a
// duplicate heap entry, and stale entries are skipped on pop via the
// finalized set. Distances accumulate in float64 end-to-end, so fractional
// edge weights never truncate.
package graph

import (
	"container/heap"
	"strconv"
	"strings"
)

// ShortestPath computes the minimum-cost path from source to target and
// formats it as the node ids joined by "-", e.g. "0-1-2".
//
// Behavior:
//
//   - source == target: returns the degenerate self-path "<s>-<s>"
//     (the node id twice), with no search performed.
//   - target unreachable from source: returns "" with a nil error; an
//     empty path is a normal outcome, not an error.
//   - source or target outside [0, NumNodes()): returns a wrapped
//     ErrIndexOutOfRange.
//
// Per-query dist/prev state is recomputed fresh on every call and does not
// persist between calls.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func (g *Graph) ShortestPath(source, target int) (string, error) {
	if err := g.checkNode(source); err != nil {
		return "", err
	}
	if err := g.checkNode(target); err != nil {
		return "", err
	}

	// Degenerate query: the path-format convention repeats the node.
	if source == target {
		return strconv.Itoa(source) + "-" + strconv.Itoa(target), nil
	}

	// 1) Run Dijkstra from the source over the current adjacency.
	_, prev := g.dijkstra(source)

	// 2) Recover the path by walking predecessors backward from the target.
	path := make([]int, 0, 8)
	for from := target; from != unreached; from = prev[from] {
		path = append(path, from)
	}

	// 3) A single-element walk means the target was never relaxed: no route.
	if len(path) == 1 {
		return "", nil
	}

	// 4) Reverse into source→target order and join with "-".
	var b strings.Builder
	for idx := len(path) - 1; idx >= 0; idx-- {
		if idx != len(path)-1 {
			b.WriteByte('-')
		}
		b.WriteString(strconv.Itoa(path[idx]))
	}

	return b.String(), nil
}

// dijkstra runs the single-source shortest-path computation from source,
// returning the per-node best distances (unreached sentinel -1) and
// predecessor links (-1 for none). The caller has validated source.
func (g *Graph) dijkstra(source int) ([]float64, []int) {
	// used marks nodes whose distance is finalized.
	used := make([]bool, g.numNodes)

	dist := make([]float64, g.numNodes)
	prev := make([]int, g.numNodes)
	for i := range dist {
		dist[i] = unreached
		prev[i] = unreached
	}
	dist[source] = 0

	// Min-heap of (distance, node), seeded with the source at distance 0.
	pq := make(nodePQ, 0, g.numNodes)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{node: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)

		// Skip stale entries left behind by lazy decrease-key.
		if used[item.node] {
			continue
		}
		used[item.node] = true

		// Relax every edge out of the finalized node.
		for _, e := range g.adj[item.node] {
			if used[e.To] {
				continue
			}

			next := item.dist + e.Weight
			if dist[e.To] == unreached || next < dist[e.To] {
				dist[e.To] = next
				prev[e.To] = item.node
				heap.Push(&pq, &nodeItem{node: e.To, dist: next})
			}
		}
	}

	return dist, prev
}

// nodeItem pairs a node id with its tentative distance from the source for
// ordering in the priority queue.
type nodeItem struct {
	node int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Ties pop in
// arbitrary heap order; no secondary tie-break is applied.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders the heap: smaller distance, higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push, x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
