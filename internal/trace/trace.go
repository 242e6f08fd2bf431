package trace

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/time/rate"

	"github.com/hupe1980/trisum/internal/tmr"
)

// CompressionType defines the compression algorithm for trace output.
type CompressionType uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone CompressionType = 0
	// CompressionLZ4 indicates LZ4 frame compression (fast, low overhead).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD indicates ZSTD compression (better ratio).
	CompressionZSTD CompressionType = 2
)

// String returns the string representation of a CompressionType.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "unknown"
	}
}

// Record is a single checksum trace entry.
type Record struct {
	Time     time.Time
	Engine   string
	Parallel bool
	Size     int
	Seed     uint32
	Sum      uint32
	Channels [tmr.Channels]uint32
	Fault    string // empty on success
	Duration time.Duration
}

// String renders the record as a single logfmt-style line.
func (r Record) String() string {
	line := fmt.Sprintf("ts=%s engine=%s parallel=%t size=%d seed=0x%08x sum=0x%08x channels=[0x%08x 0x%08x 0x%08x] dur=%s",
		r.Time.UTC().Format(time.RFC3339Nano), r.Engine, r.Parallel, r.Size, r.Seed, r.Sum,
		r.Channels[0], r.Channels[1], r.Channels[2], r.Duration)

	if r.Fault != "" {
		line += fmt.Sprintf(" fault=%q", r.Fault)
	}

	return line
}

// Sink writes trace records to an underlying writer, one line per
// record. It is safe for concurrent use.
type Sink struct {
	mu      sync.Mutex
	w       io.Writer
	closer  io.Closer     // compressor to flush on Close, nil when uncompressed
	limiter *rate.Limiter // nil if unlimited
	dropped atomic.Uint64
}

// NewSink wraps w with the given compression. recordsPerSec caps the
// trace volume; if 0, the sink is unlimited.
func NewSink(w io.Writer, compression CompressionType, recordsPerSec int) (*Sink, error) {
	s := &Sink{}

	switch compression {
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		s.w = lw
		s.closer = lw
	case CompressionZSTD:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		s.w = zw
		s.closer = zw
	default:
		s.w = w
	}

	if recordsPerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(recordsPerSec), recordsPerSec)
	}

	return s, nil
}

// Write appends one record. Records over the rate limit are dropped
// rather than blocked on.
func (s *Sink) Write(r Record) error {
	if s == nil {
		return nil
	}

	if s.limiter != nil && !s.limiter.Allow() {
		s.dropped.Add(1)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := io.WriteString(s.w, r.String()+"\n")

	return err
}

// Dropped returns the number of records discarded by the rate limit.
func (s *Sink) Dropped() uint64 {
	if s == nil {
		return 0
	}

	return s.dropped.Load()
}

// Close flushes and closes the compressor, if any. The underlying
// writer is left open; it belongs to the caller.
func (s *Sink) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}

	return s.closer.Close()
}
