package ringbuffer_test

import (
	"testing"

	"github.com/physiokit/physiokit/ringbuffer"
)

// BenchmarkEnqueueDequeue measures single-element throughput through a
// buffer sized like a typical per-channel sample window.
func BenchmarkEnqueueDequeue(b *testing.B) {
	rb := ringbuffer.New[float64](1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rb.Enqueue(float64(i))
		if i%2 == 0 {
			_, _ = rb.Dequeue()
		}
	}
}

// BenchmarkWindowedRead measures the overlapping-window read path:
// 256-sample windows with 50% overlap over a steady stream.
func BenchmarkWindowedRead(b *testing.B) {
	const window = 256
	rb := ringbuffer.New[float64](4096)

	// Keep the buffer primed so every windowed read succeeds.
	batch := make([]float64, window)
	for i := range batch {
		batch[i] = float64(i)
	}
	rb.EnqueueSlice(batch)
	rb.EnqueueSlice(batch)

	win := make([]float64, window)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rb.EnqueueSlice(batch)
		if !rb.DequeueSlice(win, window/2) {
			b.Fatal("windowed read failed")
		}
	}
}
