// Package ringbuffer configuration: functional options controlling the
// advisory diagnostics emitted on degraded operations.
//
// Diagnostics are off by default and are never part of the buffer's
// contract: they exist so a misbehaving producer/consumer pairing can be
// spotted in logs without changing any return value or state transition.
package ringbuffer

import (
	"io"
	"os"
)

// Options configures a RingBuffer at construction time.
type Options struct {
	// Warnings controls whether degraded operations (zero capacity,
	// overflow, underflow, oversized batch) emit an advisory diagnostic.
	Warnings bool

	// WarningOutput is the destination for those diagnostics.
	WarningOutput io.Writer
}

// Option represents a functional option for configuring a RingBuffer.
type Option func(*Options)

// WithWarnings enables advisory diagnostics on degraded operations.
// Equivalent to calling SetWarnings(true) after construction.
func WithWarnings() Option {
	return func(o *Options) { o.Warnings = true }
}

// WithWarningOutput redirects diagnostics to w. A nil w restores the
// default destination (os.Stderr).
func WithWarningOutput(w io.Writer) Option {
	return func(o *Options) {
		if w == nil {
			w = os.Stderr
		}
		o.WarningOutput = w
	}
}

// DefaultOptions returns the Options a RingBuffer starts from:
// warnings disabled, diagnostics destined for os.Stderr.
func DefaultOptions() Options {
	return Options{
		Warnings:      false,
		WarningOutput: os.Stderr,
	}
}
