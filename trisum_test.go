package trisum

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/trisum/util"
)

var knownAnswers = []struct {
	name string
	seed uint32
	data string
	sum  uint32
}{
	{"Empty", 0, "", 0x00000000},
	{"Check string", 0, "123456789", 0xE3069283},
	{"Quick brown fox", 0, "The quick brown fox jumps over the lazy dog", 0x22620404},
	{"Test", 0, "test", 0x86A072C0},
	{"Hello world", 0, "hello, world", 0x6999A41F},
	{"Inverted seed", 0xFFFFFFFF, "123456789", 0xA71C05DF},
}

func TestSummerChecksum(t *testing.T) {
	engines := []Engine{EngineSoftware}
	if EngineAvailable(EngineHardware) {
		engines = append(engines, EngineHardware)
	}

	for _, engine := range engines {
		t.Run(engine.String(), func(t *testing.T) {
			s, err := New(WithEngine(engine))
			require.NoError(t, err)
			assert.Equal(t, engine, s.Engine())

			for _, tc := range knownAnswers {
				assert.Equal(t, tc.sum, s.Checksum(tc.seed, []byte(tc.data)), "vector %q", tc.name)
			}
		})
	}
}

func TestSummerSum(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	data := []byte("hello, world")
	assert.Equal(t, s.Checksum(0, data), s.Sum(data))
	assert.Equal(t, uint32(0x6999A41F), s.Sum(data))
}

func TestSummerParallelChannels(t *testing.T) {
	s, err := New(WithParallelChannels(true))
	require.NoError(t, err)

	for _, tc := range knownAnswers {
		assert.Equal(t, tc.sum, s.Checksum(tc.seed, []byte(tc.data)), "vector %q", tc.name)
	}
}

func TestExportedConstants(t *testing.T) {
	assert.Equal(t, uint32(0x82F63B78), Poly)
	assert.Equal(t, 1<<20, MaxInputSize)
	assert.Equal(t, 3, Channels)
}

func TestPackageLevelFunctions(t *testing.T) {
	assert.Equal(t, uint32(0xE3069283), Sum([]byte("123456789")))
	assert.Equal(t, uint32(0xE3069283), Checksum(0, []byte("123456789")))
	assert.True(t, EngineAvailable(ActiveEngine()))
}

func TestChecksumChaining(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	whole := Sum(data)

	for split := 0; split <= len(data); split++ {
		chained := Checksum(Checksum(0, data[:split]), data[split:])
		assert.Equal(t, whole, chained, "split at %d", split)
	}
}

func TestNewRejectsUnavailableEngine(t *testing.T) {
	_, err := New(WithEngine(Engine(99)))

	var unavailable *ErrEngineUnavailable
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, Engine(99), unavailable.Engine)

	if !EngineAvailable(EngineHardware) {
		_, err := New(WithEngine(EngineHardware))
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, EngineHardware, unavailable.Engine)
	}
}

func TestChecksumPanicsOnOversizedInput(t *testing.T) {
	var logBuf bytes.Buffer
	metrics := &BasicMetricsCollector{}

	s, err := New(
		WithLogger(NewLogger(slog.NewTextHandler(&logBuf, nil))),
		WithMetricsCollector(metrics),
	)
	require.NoError(t, err)

	data := make([]byte, MaxInputSize+1)

	defer func() {
		r := recover()
		require.NotNil(t, r, "oversized input must abort")

		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)

		var tooLarge *ErrInputTooLarge
		require.ErrorAs(t, err, &tooLarge)
		assert.Equal(t, MaxInputSize+1, tooLarge.Size)
		assert.Equal(t, MaxInputSize, tooLarge.Max)

		assert.Equal(t, int64(1), metrics.GetStats().FaultCount)
		assert.Contains(t, logBuf.String(), "checksum fault")
	}()

	s.Checksum(0, data)
}

func TestChecksumAtMaxInputSize(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_ = s.Checksum(0, make([]byte, MaxInputSize))
	})
}

func TestMetricsRecorded(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	s, err := New(WithMetricsCollector(metrics))
	require.NoError(t, err)

	for range 3 {
		s.Sum([]byte("hello, world"))
	}

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.ChecksumCount)
	assert.Equal(t, int64(36), stats.ChecksumBytes)
	assert.Equal(t, int64(0), stats.FaultCount)
}

func TestChecksumLogged(t *testing.T) {
	var logBuf bytes.Buffer

	s, err := New(WithLogger(NewLogger(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))))
	require.NoError(t, err)

	s.Sum([]byte("hello, world"))

	assert.Contains(t, logBuf.String(), "checksum completed")
	assert.Contains(t, logBuf.String(), "sum=0x6999a41f")
}

func TestTraceOutput(t *testing.T) {
	var traceBuf bytes.Buffer

	s, err := New(WithTraceWriter(&traceBuf))
	require.NoError(t, err)

	s.Sum([]byte("hello, world"))
	s.Checksum(0xDEADBEEF, []byte("abc"))
	require.NoError(t, s.Close())

	lines := bytes.Split(bytes.TrimRight(traceBuf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "sum=0x6999a41f")
	assert.Contains(t, string(lines[1]), "seed=0xdeadbeef")
	assert.Contains(t, string(lines[1]), "sum=0x85d9eace")
}

func TestTraceRecordsFault(t *testing.T) {
	var traceBuf bytes.Buffer

	s, err := New(WithTraceWriter(&traceBuf))
	require.NoError(t, err)

	func() {
		defer func() { _ = recover() }()
		s.Checksum(0, make([]byte, MaxInputSize+1))
	}()
	require.NoError(t, s.Close())

	assert.Contains(t, traceBuf.String(), "fault=")
	assert.Contains(t, traceBuf.String(), fmt.Sprintf("size=%d", MaxInputSize+1))
}

func TestTraceCompressed_LZ4(t *testing.T) {
	var traceBuf bytes.Buffer

	s, err := New(
		WithTraceWriter(&traceBuf),
		WithTraceCompression(TraceCompressionLZ4),
	)
	require.NoError(t, err)

	s.Sum([]byte("123456789"))
	require.NoError(t, s.Close())

	decompressed, err := io.ReadAll(lz4.NewReader(&traceBuf))
	require.NoError(t, err)
	assert.Contains(t, string(decompressed), "sum=0xe3069283")
}

func TestTraceCompressedRateLimited_ZSTD(t *testing.T) {
	var traceBuf bytes.Buffer

	s, err := New(
		WithTraceWriter(&traceBuf),
		WithTraceCompression(TraceCompressionZSTD),
		WithTraceRate(1),
	)
	require.NoError(t, err)

	for range 5 {
		s.Sum([]byte("123456789"))
	}
	require.NoError(t, s.Close())

	dec, err := zstd.NewReader(&traceBuf)
	require.NoError(t, err)
	defer dec.Close()

	decompressed, err := io.ReadAll(dec)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(decompressed), "\n"), "\n")
	assert.Len(t, lines, 1, "only the burst should pass the limiter")
	assert.Contains(t, lines[0], "sum=0xe3069283")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken writer")
}

// A failing trace writer must not disturb the checksum call: the result
// comes back as usual and the failure only shows up in the log.
func TestTraceWriteFailureDoesNotAbort(t *testing.T) {
	var logBuf bytes.Buffer

	s, err := New(
		WithTraceWriter(brokenWriter{}),
		WithLogger(NewLogger(slog.NewTextHandler(&logBuf, nil))),
	)
	require.NoError(t, err)

	var sum uint32
	assert.NotPanics(t, func() {
		sum = s.Checksum(0, []byte("123456789"))
	})

	assert.Equal(t, uint32(0xE3069283), sum)
	assert.Contains(t, logBuf.String(), "trace write failed")
	assert.Contains(t, logBuf.String(), "broken writer")
}

func TestChecksumRandomBuffersAgree(t *testing.T) {
	if !EngineAvailable(EngineHardware) {
		t.Skip("skipping: hardware CRC32 not available")
	}

	sw, err := New(WithEngine(EngineSoftware))
	require.NoError(t, err)

	hw, err := New(WithEngine(EngineHardware))
	require.NoError(t, err)

	rng := util.NewRNG(4711)
	for _, data := range rng.GenerateRandomBuffers(16, 1024) {
		assert.Equal(t, sw.Sum(data), hw.Sum(data))
	}
}

func BenchmarkSummerChecksum(b *testing.B) {
	s, err := New()
	if err != nil {
		b.Fatal(err)
	}

	rng := util.NewRNG(1)
	sizes := []int{64, 4096, MaxInputSize}

	for _, size := range sizes {
		data := rng.GenerateRandomBuffer(size)

		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for b.Loop() {
				_ = s.Checksum(0, data)
			}
		})
	}
}
