package trisum

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    checksumCounter prometheus.Counter
//	    faultCounter    prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordChecksum(engine trisum.Engine, size int, duration time.Duration) {
//	    p.checksumCounter.Inc()
//	    // ... record size, duration, etc.
//	}
type MetricsCollector interface {
	// RecordChecksum is called after each successful checksum.
	// size is the input length, duration the total time taken.
	RecordChecksum(engine Engine, size int, duration time.Duration)

	// RecordFault is called when a checksum aborts, immediately before
	// the panic unwinds. err is the typed fault.
	RecordFault(engine Engine, size int, duration time.Duration, err error)

	// RecordSelfTest is called after each self test run.
	// err is nil if the self test passed.
	RecordSelfTest(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordChecksum(Engine, int, time.Duration)     {}
func (NoopMetricsCollector) RecordFault(Engine, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSelfTest(time.Duration, error)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ChecksumCount      atomic.Int64
	ChecksumBytes      atomic.Int64
	ChecksumTotalNanos atomic.Int64
	FaultCount         atomic.Int64
	SelfTestCount      atomic.Int64
	SelfTestErrors     atomic.Int64
}

// RecordChecksum implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChecksum(engine Engine, size int, duration time.Duration) {
	b.ChecksumCount.Add(1)
	b.ChecksumBytes.Add(int64(size))
	b.ChecksumTotalNanos.Add(duration.Nanoseconds())
}

// RecordFault implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFault(engine Engine, size int, duration time.Duration, err error) {
	b.FaultCount.Add(1)
}

// RecordSelfTest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelfTest(duration time.Duration, err error) {
	b.SelfTestCount.Add(1)
	if err != nil {
		b.SelfTestErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ChecksumCount:    b.ChecksumCount.Load(),
		ChecksumBytes:    b.ChecksumBytes.Load(),
		ChecksumAvgNanos: b.getAvgChecksumNanos(),
		FaultCount:       b.FaultCount.Load(),
		SelfTestCount:    b.SelfTestCount.Load(),
		SelfTestErrors:   b.SelfTestErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgChecksumNanos() int64 {
	count := b.ChecksumCount.Load()
	if count == 0 {
		return 0
	}
	return b.ChecksumTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ChecksumCount    int64
	ChecksumBytes    int64
	ChecksumAvgNanos int64
	FaultCount       int64
	SelfTestCount    int64
	SelfTestErrors   int64
}
