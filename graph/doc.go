// Package graph maintains an undirected, weighted graph over dense integer
// node ids and answers routing queries over it: single-source shortest paths
// via Dijkstra's algorithm and breadth-first traversal.
//
// Overview:
//
//   - A Graph is created with a fixed node count n; node ids are the
//     integers [0, n). Topology is append-only: edges may be added at any
//     time, never removed.
//   - AddEdge inserts an undirected edge symmetrically into both endpoints'
//     adjacency lists. The default weight is 1.0; override with WithWeight.
//   - ShortestPath runs Dijkstra from the source and returns the node path
//     as a "-"-joined string of ids (e.g. "0-1-2"), or "" when the target is
//     unreachable. Dijkstra requires non-negative weights; weights are used
//     as given and not validated.
//   - BFS returns visit order, hop depth, and parent links for the
//     unweighted traversal from a source node.
//
// Error handling:
//
//   - Node indices outside [0, n) are a programming error: operations fail
//     with a wrapped ErrIndexOutOfRange and leave the graph untouched.
//   - An unreachable target is a normal outcome, signaled by an empty path
//     string with a nil error, not by an error value.
//
// Concurrency:
//
//   - No internal synchronization. Serialize AddEdge and query calls
//     externally if the same instance is shared across goroutines.
//
// Complexity:
//
//   - AddEdge: amortized O(1). ShortestPath: O((V + E) log V) time,
//     O(V + E) space (lazy decrease-key). BFS: O(V + E).
package graph
