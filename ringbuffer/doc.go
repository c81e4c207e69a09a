// Package ringbuffer provides a fixed-capacity, internally synchronized
// circular FIFO over an arbitrary element type, built for streaming and
// windowing sensor samples.
//
// Overview:
//
//   - RingBuffer[T] owns a contiguous backing array of capacity elements and
//     tracks head (oldest), tail (next write), and the live element count.
//   - Insertion past capacity overwrites the oldest stored element; the newly
//     inserted item is never silently dropped.
//   - Bulk reads support an overlap parameter: the last overlap elements of a
//     window are retained for the next read, implementing the overlapping
//     sliding-window pattern common in streaming signal analysis.
//
// When to use:
//
//   - One buffer per sensor channel, fed by an acquisition goroutine and
//     drained by an analysis goroutine.
//   - Any bounded producer/consumer hand-off where dropping the oldest data
//     under back-pressure is acceptable.
//
// Concurrency:
//
//   - Every operation acquires the instance's exclusive lock for its full
//     duration, so any number of goroutines may call any combination of
//     operations concurrently.
//   - No operation blocks waiting for space or data: callers poll or layer
//     their own signaling on top.
//   - Data is the single unsynchronized escape hatch; see its documentation.
//
// Failure policy:
//
//   - This package never panics and never returns errors. Every fallible
//     operation reports failure through a bool or a (value, ok) pair, and a
//     rejected bulk operation leaves the buffer untouched.
//   - With warnings enabled (WithWarnings or SetWarnings), degraded
//     operations additionally emit an advisory line on the configured
//     writer (os.Stderr by default). Diagnostics never alter control flow,
//     state, or return values.
//
// Complexity: every operation is O(1) or O(k) in the requested batch size k;
// the lock is held only for that duration.
package ringbuffer
