package ringbuffer

import (
	"fmt"
	"os"
	"sync"
)

// RingBuffer is a fixed-capacity circular FIFO over elements of type T.
//
// The zero value is an inert, zero-capacity buffer: every enqueue, dequeue,
// and peek fails until Resize allocates storage. Use New to allocate up
// front.
//
// Invariants (holding whenever the lock is released):
//
//   - head, tail ∈ [0, cap) whenever cap > 0
//   - 0 ≤ size ≤ cap
//   - tail == (head + size) mod cap
//
// All methods are safe for concurrent use except Data.
type RingBuffer[T any] struct {
	mu sync.Mutex

	buf  []T // backing storage; len(buf) is the capacity
	head int // index of the oldest unconsumed element
	tail int // index where the next element is written
	size int // number of currently valid elements

	opts Options
}

// New returns a RingBuffer with storage for capacity elements.
// A capacity of 0 (or below) yields an inert buffer on which every
// enqueue/dequeue/peek fails until Resize is called.
func New[T any](capacity int, opts ...Option) *RingBuffer[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if capacity < 0 {
		capacity = 0
	}

	return &RingBuffer[T]{
		buf:  make([]T, capacity),
		opts: o,
	}
}

// SetWarnings toggles advisory diagnostics on degraded operations.
// It never affects return values or buffer state.
func (r *RingBuffer[T]) SetWarnings(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts.Warnings = enabled
}

// Resize reallocates the backing storage to capacity elements, discarding
// all current contents and resetting head/tail/size to zero. A negative
// capacity is treated as 0.
//
// Not safe to call while another goroutine holds a slice obtained via Data.
func (r *RingBuffer[T]) Resize(capacity int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if capacity < 0 {
		capacity = 0
	}
	r.buf = make([]T, capacity)
	r.reset()
}

// Clear resets every stored element to the zero value of T and resets
// head/tail/size to zero. Capacity is unchanged.
func (r *RingBuffer[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	r.reset()
}

// Enqueue inserts item at the back of the buffer.
//
// If the buffer is unallocated (capacity 0) the insertion fails and false
// is returned. If the buffer is full, the oldest element is evicted first
// (overwrite policy): the buffer never grows and never silently drops the
// newly inserted item.
func (r *RingBuffer[T]) Enqueue(item T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.buf) == 0 {
		r.warn("no buffer allocated to insert into")
		return false
	}

	// Full: overwrite the oldest element.
	if r.size >= len(r.buf) {
		r.warn("overflow, overwriting oldest data")
		r.head = (r.head + 1) % len(r.buf)
		r.size--
	}

	r.buf[r.tail] = item
	r.tail = (r.tail + 1) % len(r.buf)
	r.size++

	return true
}

// EnqueueSlice inserts all of items, in order, at the back of the buffer.
//
// The batch is rejected (false, buffer untouched) when it can never fit:
// the buffer is unallocated or len(items) exceeds the capacity. If inserting
// would exceed capacity, a batch-sized block of the oldest elements is
// evicted first, so one call retires at most len(items) old elements.
func (r *RingBuffer[T]) EnqueueSlice(items []T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(items)
	if n > len(r.buf) || len(r.buf) == 0 {
		r.warn("not enough buffer space allocated to insert into")
		return false
	}

	// Batch would exceed capacity: evict up to n of the oldest elements.
	if r.size+n >= len(r.buf) {
		r.warn("overflow, overwriting oldest data")
		evict := n
		if evict > r.size {
			evict = r.size
		}
		r.head = (r.head + evict) % len(r.buf)
		r.size -= evict
	}

	for i := 0; i < n; i++ {
		r.buf[r.tail] = items[i]
		r.tail = (r.tail + 1) % len(r.buf)
		r.size++
	}

	return true
}

// Dequeue removes and returns the oldest element. The second return value
// is false when the buffer is unallocated or empty.
func (r *RingBuffer[T]) Dequeue() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	if len(r.buf) == 0 {
		r.warn("no buffer allocated to pop from")
		return zero, false
	}
	if r.size == 0 {
		r.warn("buffer empty, cannot pop")
		return zero, false
	}

	item := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.size--

	return item, true
}

// DequeueSlice copies len(dst) consecutive elements, oldest first, into dst,
// then retires only the first len(dst)−overlap of them: the trailing overlap
// elements remain available for the next read (sliding-window pattern).
//
// The read is rejected (false, buffer untouched) when the buffer is
// unallocated, len(dst) exceeds the capacity, overlap is negative or
// exceeds len(dst), or fewer than len(dst) elements are stored.
func (r *RingBuffer[T]) DequeueSlice(dst []T, overlap int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(dst)
	if n > len(r.buf) || len(r.buf) == 0 || overlap < 0 || overlap > n {
		r.warn("no buffer allocated to pop from")
		return false
	}
	if n > r.size {
		r.warn("buffer empty, cannot pop")
		return false
	}

	// Copy the full window, but advance head only through the first
	// keep elements; the rest are re-read by the next window.
	keep := n - overlap
	pos := r.head
	for i := 0; i < n; i++ {
		dst[i] = r.buf[pos]
		pos = (pos + 1) % len(r.buf)
		if i < keep {
			r.head = (r.head + 1) % len(r.buf)
			r.size--
		}
	}

	return true
}

// Front returns the oldest element without removing it. The second return
// value is false when the buffer is unallocated or empty.
func (r *RingBuffer[T]) Front() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	if len(r.buf) == 0 {
		r.warn("no buffer allocated to copy from")
		return zero, false
	}
	if r.size == 0 {
		r.warn("buffer empty, cannot copy")
		return zero, false
	}

	return r.buf[r.head], true
}

// FrontSlice copies the len(dst) oldest elements into dst without mutating
// the buffer. The peek is rejected (false) when the buffer is unallocated,
// len(dst) exceeds the capacity, or fewer than len(dst) elements are stored.
func (r *RingBuffer[T]) FrontSlice(dst []T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(dst)
	if n > len(r.buf) || len(r.buf) == 0 {
		r.warn("no buffer allocated to copy from")
		return false
	}
	if n > r.size {
		r.warn("buffer empty, cannot copy")
		return false
	}

	pos := r.head
	for i := 0; i < n; i++ {
		dst[i] = r.buf[pos]
		pos = (pos + 1) % len(r.buf)
	}

	return true
}

// Data returns the raw backing slice, or nil when the buffer is unallocated.
//
// Unlike every other method, Data performs NO locking: holding or reading
// the returned slice while other goroutines enqueue or dequeue is a data
// race. Callers needing safety must wrap access in the same external
// synchronization discipline as the rest of their use of the buffer.
func (r *RingBuffer[T]) Data() []T {
	if len(r.buf) == 0 {
		return nil
	}

	return r.buf
}

// Empty reports whether the buffer currently stores no elements.
func (r *RingBuffer[T]) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.size == 0
}

// Full reports whether the buffer is at capacity.
func (r *RingBuffer[T]) Full() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	// size should never exceed cap, but >= keeps the answer sane if it did.
	return r.size >= len(r.buf)
}

// Len returns the number of elements currently stored.
func (r *RingBuffer[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.size
}

// Cap returns the maximum number of elements the buffer can store.
func (r *RingBuffer[T]) Cap() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.buf)
}

// reset zeroes the indices; callers hold the lock.
func (r *RingBuffer[T]) reset() {
	r.head = 0
	r.tail = 0
	r.size = 0
}

// warn emits an advisory diagnostic when warnings are enabled.
// Callers hold the lock, so reads of opts are serialized with SetWarnings.
func (r *RingBuffer[T]) warn(msg string) {
	if !r.opts.Warnings {
		return
	}
	w := r.opts.WarningOutput
	if w == nil {
		// Zero-value RingBuffer with warnings enabled via SetWarnings.
		w = os.Stderr
	}
	fmt.Fprintf(w, "ringbuffer: %s\n", msg)
}
