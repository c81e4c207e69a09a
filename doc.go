// Package physiokit is the core data-structures layer of a
// physiological-signal-processing toolkit: the containers that stream,
// window, and route sensor data between processing nodes.
//
// What lives here?
//
//	A small, focused set of primitives with real invariants:
//		• ringbuffer: fixed-capacity, internally synchronized circular FIFO
//		  with overwrite-on-full and overlapping sliding-window reads
//		• graph:      undirected weighted graph over integer node ids with
//		  Dijkstra shortest-path queries and BFS traversal
//
// Why a separate layer?
//
//   - Everything around it (device I/O, configuration, wiring) is thin glue;
//     the concurrency and algorithmic content is concentrated here.
//   - Each buffer instance is independently locked: one buffer per sensor
//     channel composes without cross-channel coordination.
//   - The graph describes the processing topology itself (which channels
//     feed which stages) and answers routing queries over it.
//
// The two packages share no code and may be consumed independently:
//
//	rb := ringbuffer.New[float64](1024)
//	g  := graph.New(8)
//
// Dive into each package's documentation for contracts, complexity, and
// worked examples.
package physiokit
