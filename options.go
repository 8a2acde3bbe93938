package runemap

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	checkInvariants  bool
	initialCapacity  int
}

// Option configures a Map.
//
// Options are not generic over the value type, so the same option slice can
// be shared between maps of different value types. The equality predicate is
// passed to NewWithEquator instead.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for storage events.
// Pass nil to disable metrics collection.
//
// Example:
//
//	metrics := &runemap.BasicMetricsCollector{}
//	m := runemap.New[string](runemap.WithMetricsCollector(metrics))
//	// ... use m ...
//	stats := metrics.GetStats()
//	fmt.Printf("Grows: %d, peak capacity: %d\n", stats.GrowCount, stats.PeakCapacity)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := runemap.NewJSONLogger(slog.LevelDebug)
//	m := runemap.New[string](runemap.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithInvariantChecks enables the self-check after every mutation.
//
// The check compares binary search against a linear scan and is quadratic in
// the number of runs. Meant for tests and debugging sessions.
func WithInvariantChecks(enabled bool) Option {
	return func(o *options) {
		o.checkInvariants = enabled
	}
}

// WithInitialCapacity preallocates room for n boundary entries.
// Values below 2 are ignored.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		initialCapacity:  defaultCapacity,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.initialCapacity < 2 {
		o.initialCapacity = defaultCapacity
	}
	return o
}
