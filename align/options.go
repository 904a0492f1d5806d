// SPDX-License-Identifier: MIT

package align

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvalign/matrix"
)

// Option configures Fill, All, Align and Distance.
type Option func(*Options)

// Options holds the storage and logging configuration of one alignment.
type Options struct {
	// Backend selects the matrix storage. Default matrix.InMemory.
	Backend matrix.Backend

	// Dir is the directory of the backing file when Backend is
	// matrix.MemoryMapped. It must exist; it is never created or removed.
	Dir string

	// Logger receives debug events (allocation, pass completion, release).
	// Nil means the package Logger().
	Logger *zap.Logger
}

// DefaultOptions returns Options with:
//   - Backend InMemory
//   - no directory
//   - the package logger
func DefaultOptions() Options {
	return Options{
		Backend: matrix.InMemory,
		Dir:     "",
		Logger:  nil,
	}
}

// WithBackend selects the matrix backend.
func WithBackend(b matrix.Backend) Option {
	return func(o *Options) { o.Backend = b }
}

// WithMapped selects the memory-mapped backend with its file in dir.
func WithMapped(dir string) Option {
	return func(o *Options) {
		o.Backend = matrix.MemoryMapped
		o.Dir = dir
	}
}

// WithLogger routes the alignment's debug events to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// gatherOptions applies opts over the defaults and resolves the logger.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = Logger()
	}

	return o
}
