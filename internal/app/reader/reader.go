//go:generate mockgen -source=reader.go -destination=reader_mock.go -package=reader
package reader

import (
	"context"
)

// Options carries the per-invocation log retrieval options, parsed once at
// startup and shared read-only by every reader.
type Options struct {
	// Follow keeps streams open indefinitely
	Follow bool
	// Tail is a positive integer count of history lines, or "all"
	Tail string
	// Single is true when exactly one service was requested across the
	// whole invocation; it suppresses per-line service prefixes
	Single bool
}

// Compose streams logs for one orchestrator-managed service
type Compose interface {
	Stream(ctx context.Context, service string, opts Options, emit func(line string))
}

// Container streams logs for one service whose log file lives inside the
// consolidated container
type Container interface {
	Stream(ctx context.Context, service string, opts Options, emit func(line string))
}
