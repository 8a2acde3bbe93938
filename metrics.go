package runemap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting storage metrics of a Map.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example:
//
//	type PrometheusCollector struct {
//	    grows prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordGrow(oldCapacity, newCapacity int) {
//	    p.grows.Inc()
//	}
type MetricsCollector interface {
	// RecordGrow is called whenever the backing storage is reallocated.
	RecordGrow(oldCapacity, newCapacity int)

	// RecordSplice is called after every structural change of the inversion list.
	// inserted and removed count boundary entries.
	RecordSplice(inserted, removed int)

	// RecordBulkLoad is called after SetAll, SetCodePointSet and SetFromProperty.
	// kind names the operation, codePoints is the number of code points consumed.
	RecordBulkLoad(kind string, codePoints int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int)                              {}
func (NoopMetricsCollector) RecordSplice(int, int)                            {}
func (NoopMetricsCollector) RecordBulkLoad(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe to share between maps.
type BasicMetricsCollector struct {
	GrowCount          atomic.Int64
	PeakCapacity       atomic.Int64
	InsertedBoundaries atomic.Int64
	RemovedBoundaries  atomic.Int64
	BulkLoadCount      atomic.Int64
	BulkLoadErrors     atomic.Int64
	BulkLoadCodePoints atomic.Int64
	BulkLoadTotalNanos atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_, newCapacity int) {
	b.GrowCount.Add(1)
	for {
		peak := b.PeakCapacity.Load()
		if int64(newCapacity) <= peak || b.PeakCapacity.CompareAndSwap(peak, int64(newCapacity)) {
			return
		}
	}
}

// RecordSplice implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSplice(inserted, removed int) {
	b.InsertedBoundaries.Add(int64(inserted))
	b.RemovedBoundaries.Add(int64(removed))
}

// RecordBulkLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBulkLoad(_ string, codePoints int, duration time.Duration, err error) {
	b.BulkLoadCount.Add(1)
	b.BulkLoadCodePoints.Add(int64(codePoints))
	b.BulkLoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BulkLoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:          b.GrowCount.Load(),
		PeakCapacity:       b.PeakCapacity.Load(),
		InsertedBoundaries: b.InsertedBoundaries.Load(),
		RemovedBoundaries:  b.RemovedBoundaries.Load(),
		BulkLoadCount:      b.BulkLoadCount.Load(),
		BulkLoadErrors:     b.BulkLoadErrors.Load(),
		BulkLoadCodePoints: b.BulkLoadCodePoints.Load(),
		BulkLoadAvgNanos:   b.getAvgBulkLoadNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgBulkLoadNanos() int64 {
	count := b.BulkLoadCount.Load()
	if count == 0 {
		return 0
	}
	return b.BulkLoadTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount          int64
	PeakCapacity       int64
	InsertedBoundaries int64
	RemovedBoundaries  int64
	BulkLoadCount      int64
	BulkLoadErrors     int64
	BulkLoadCodePoints int64
	BulkLoadAvgNanos   int64
}
