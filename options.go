package trisum

import (
	"io"
	"log/slog"

	"github.com/hupe1980/trisum/internal/trace"
)

// TraceCompression defines the compression applied to trace output.
type TraceCompression uint8

const (
	// TraceCompressionNone writes trace records uncompressed.
	TraceCompressionNone TraceCompression = iota
	// TraceCompressionLZ4 compresses trace output with LZ4 frames
	// (fast, low overhead).
	TraceCompressionLZ4
	// TraceCompressionZSTD compresses trace output with ZSTD
	// (better ratio).
	TraceCompressionZSTD
)

// String returns the string representation of a TraceCompression.
func (c TraceCompression) String() string {
	return c.compressionType().String()
}

func (c TraceCompression) compressionType() trace.CompressionType {
	switch c {
	case TraceCompressionLZ4:
		return trace.CompressionLZ4
	case TraceCompressionZSTD:
		return trace.CompressionZSTD
	default:
		return trace.CompressionNone
	}
}

type options struct {
	engine           Engine
	engineSet        bool
	parallel         bool
	metricsCollector MetricsCollector
	logger           *Logger
	traceWriter      io.Writer
	traceCompression TraceCompression
	traceRate        int
}

// Option configures Summer constructor behavior.
//
// Today options primarily exist to avoid exploding the API surface
// (e.g. engine-specific constructor variants).
type Option func(*options)

// WithEngine pins the Summer to a specific engine instead of the
// automatic selection. New fails with *ErrEngineUnavailable if the
// engine cannot run on this CPU.
func WithEngine(engine Engine) Option {
	return func(o *options) {
		o.engine = engine
		o.engineSet = true
	}
}

// WithParallelChannels runs the three redundant channels on separate
// goroutines instead of sequentially.
//
// Parallel channels shorten wall time for large inputs at the cost of
// goroutine scheduling overhead; sequential is faster below a few
// kilobytes. The checksum result is identical either way.
func WithParallelChannels(parallel bool) Option {
	return func(o *options) {
		o.parallel = parallel
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &trisum.BasicMetricsCollector{}
//	s, _ := trisum.New(trisum.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Checksums: %d, Avg latency: %dns\n", stats.ChecksumCount, stats.ChecksumAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := trisum.NewJSONLogger(slog.LevelInfo)
//	s, _ := trisum.New(trisum.WithLogger(logger))
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

// WithTraceWriter streams a one-line record of every checksum call to w
// for offline fault analysis. Tracing is disabled when no writer is set.
//
// The Summer owns any compressor it layers on top of w; call Close to
// flush it. The writer itself is never closed.
func WithTraceWriter(w io.Writer) Option {
	return func(o *options) {
		o.traceWriter = w
	}
}

// WithTraceCompression compresses the trace stream. It only takes
// effect together with WithTraceWriter.
func WithTraceCompression(c TraceCompression) Option {
	return func(o *options) {
		o.traceCompression = c
	}
}

// WithTraceRate caps the trace volume at recordsPerSec records per
// second. Records over the cap are dropped, never blocked on. If 0,
// the trace stream is unlimited.
func WithTraceRate(recordsPerSec int) Option {
	return func(o *options) {
		o.traceRate = recordsPerSec
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
