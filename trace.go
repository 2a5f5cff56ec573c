package seqfn

import (
	"context"
	"iter"
	"log/slog"
)

// Trace returns a sequence that logs every value of src at debug level
// under the given name, followed by one record summarising the pass.
//
// A nil logger selects slog.Default(). Logging is skipped entirely when
// the logger's handler has debug disabled.
func Trace[T any](src iter.Seq[T], logger *slog.Logger, name string) iter.Seq[T] {
	mustNotNil("Trace", "src", src == nil)
	if logger == nil {
		logger = slog.Default()
	}

	return func(yield func(T) bool) {
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			for item := range src {
				if !yield(item) {
					return
				}
			}
			return
		}

		n := 0
		completed := true
		for item := range src {
			logger.Debug("sequence element", "seq", name, "index", n, "value", item)
			n++
			if !yield(item) {
				completed = false
				break
			}
		}
		logger.Debug("sequence pass finished", "seq", name, "count", n, "completed", completed)
	}
}
