package trisum

import (
	"time"

	"github.com/hupe1980/trisum/internal/crc32c"
	"github.com/hupe1980/trisum/internal/trace"
)

// MaxInputSize is the largest input accepted by a single checksum call.
// Longer data is checksummed by chaining: feed the result of one call
// as the seed of the next.
const MaxInputSize = crc32c.MaxInput

// Poly is the reflected form of the Castagnoli polynomial (0x1EDC6F41).
const Poly = crc32c.Poly

// Summer computes CRC32C checksums under triple modular redundancy.
//
// A zero-configuration Summer is not valid; use New. For one-off
// checksums the package-level Checksum and Sum functions share a
// process-wide default Summer.
type Summer struct {
	engine   Engine
	parallel bool
	metrics  MetricsCollector
	logger   *Logger
	sink     *trace.Sink
}

// New creates a Summer. Without WithEngine it computes with the engine
// selected at startup (see ActiveEngine).
func New(optFns ...Option) (*Summer, error) {
	o := applyOptions(optFns)

	engine := ActiveEngine()
	if o.engineSet {
		engine = o.engine
		if (engine != EngineSoftware && engine != EngineHardware) || !EngineAvailable(engine) {
			return nil, &ErrEngineUnavailable{Engine: engine}
		}
	}

	var sink *trace.Sink
	if o.traceWriter != nil {
		var err error
		sink, err = trace.NewSink(o.traceWriter, o.traceCompression.compressionType(), o.traceRate)
		if err != nil {
			return nil, err
		}
	}

	return &Summer{
		engine:   engine,
		parallel: o.parallel,
		metrics:  o.metricsCollector,
		logger:   o.logger,
		sink:     sink,
	}, nil
}

// Engine returns the engine this Summer computes with.
func (s *Summer) Engine() Engine {
	return s.engine
}

// Checksum computes the CRC32C of data chained onto seed. Pass 0 for
// the first block and the previous result for each following block.
//
// A fault does not surface as an error: the call panics with a typed
// error value (*ErrInputTooLarge or *ErrNoMajority) after recording the
// fault with the logger, metrics collector, and trace sink. A checksum
// that returns is always a voted result.
func (s *Summer) Checksum(seed uint32, data []byte) uint32 {
	start := time.Now()

	sum, channels, err := crc32c.Checksum(s.engine.kind(), seed, data, s.parallel)
	duration := time.Since(start)

	if err != nil {
		fault := translateError(s.engine, err)
		s.metrics.RecordFault(s.engine, len(data), duration, fault)
		s.logger.LogFault(s.engine, len(data), fault)
		s.writeTrace(start, seed, len(data), sum, channels, duration, fault)

		panic(fault)
	}

	s.metrics.RecordChecksum(s.engine, len(data), duration)
	s.logger.LogChecksum(s.engine, len(data), sum)
	s.writeTrace(start, seed, len(data), sum, channels, duration, nil)

	return sum
}

// Sum computes the CRC32C of data with a zero seed.
func (s *Summer) Sum(data []byte) uint32 {
	return s.Checksum(0, data)
}

// Close flushes and closes the trace compressor, if any. The underlying
// trace writer is left open; it belongs to the caller.
func (s *Summer) Close() error {
	return s.sink.Close()
}

func (s *Summer) writeTrace(start time.Time, seed uint32, size int, sum uint32, channels [Channels]uint32, duration time.Duration, fault error) {
	if s.sink == nil {
		return
	}

	rec := trace.Record{
		Time:     start,
		Engine:   s.engine.String(),
		Parallel: s.parallel,
		Size:     size,
		Seed:     seed,
		Sum:      sum,
		Channels: channels,
		Duration: duration,
	}
	if fault != nil {
		rec.Fault = fault.Error()
	}

	if err := s.sink.Write(rec); err != nil {
		s.logger.Warn("trace write failed", "error", err)
	}
}

// std is the process-wide Summer behind the package-level functions.
// It uses the automatically selected engine, sequential channels, and
// no logging, metrics, or tracing.
var std = mustNew()

func mustNew() *Summer {
	s, err := New()
	if err != nil {
		panic(err)
	}
	return s
}

// Checksum computes the CRC32C of data chained onto seed using the
// process-wide default Summer. See (*Summer).Checksum for the fault
// semantics.
func Checksum(seed uint32, data []byte) uint32 {
	return std.Checksum(seed, data)
}

// Sum computes the CRC32C of data with a zero seed using the
// process-wide default Summer.
func Sum(data []byte) uint32 {
	return std.Sum(data)
}
