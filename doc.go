// Package trisum computes CRC-32 Castagnoli (CRC32C) checksums under
// triple modular redundancy.
//
// Every checksum runs on three independent channels and the majority
// value among the three results is returned. A transient fault in any
// single channel, such as a flipped table entry, is outvoted and
// masked; a fault the vote cannot mask aborts the call instead of
// returning a value that might be wrong.
//
// # Quick Start
//
// One-off checksums use the process-wide default:
//
//	sum := trisum.Sum([]byte("hello, world"))
//
// A configured Summer gives control over engine selection, parallel
// channels, logging, metrics, and tracing:
//
//	s, err := trisum.New(
//	    trisum.WithEngine(trisum.EngineSoftware),
//	    trisum.WithLogLevel(slog.LevelDebug),
//	)
//	if err != nil {
//	    panic(err)
//	}
//	sum := s.Checksum(0, data)
//
// # Engines
//
// Two engines cover every platform:
//
//   - EngineSoftware: byte-at-a-time table lookups against three
//     independently generated channel tables. Works everywhere.
//   - EngineHardware: the CPU CRC32 instruction (SSE4.2 on x86-64, the
//     CRC extension on ARM64), repeated once per channel.
//
// The best available engine is selected automatically at startup.
// Setting TRISUM_ENGINE=software or TRISUM_ENGINE=hardware overrides
// the selection; an override naming an unavailable engine falls back
// to auto-detection.
//
// # Fault Semantics
//
// A checksum that cannot produce a trustworthy result never returns
// one. The call panics with a typed error value:
//
//   - *ErrInputTooLarge: the input exceeds MaxInputSize. A usage error,
//     not a transient condition.
//   - *ErrNoMajority: all three channels disagreed. The error carries
//     the raw channel results for fault analysis.
//
// Both conditions mean any returned checksum would be misleading, so
// the contract is to halt rather than to hand back a guess.
//
// # Large Inputs
//
// Inputs are capped at MaxInputSize (1 MiB) per call to bound the
// worst-case execution time of the redundant channels. Longer data is
// checksummed by chaining calls through the seed:
//
//	sum := uint32(0)
//	for _, block := range blocks { // each block at most MaxInputSize
//	    sum = trisum.Checksum(sum, block)
//	}
//
// Chaining is exact: the result equals the checksum of the
// concatenated blocks.
//
// # Self Test
//
// SelfTest re-verifies the redundant lookup tables and checks every
// available engine against known answer vectors. Run it at startup of
// integrity-critical services:
//
//	if err := trisum.SelfTest(); err != nil {
//	    log.Fatal(err)
//	}
package trisum
